package profile

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"gonum.org/v1/gonum/spatial/r2"
)

// dxfFile assembles a minimal DXF document from group code/value pairs.
func dxfFile(body ...string) string {
	lines := append([]string{"0", "SECTION", "2", "ENTITIES"}, body...)
	lines = append(lines, "0", "ENDSEC", "0", "EOF")
	return strings.Join(lines, "\n") + "\n"
}

func lwSquare(layer string, closedFlag string) []string {
	return []string{
		"0", "LWPOLYLINE",
		"8", layer,
		"90", "4",
		"70", closedFlag,
		"10", "0.0", "20", "0.0",
		"10", "4.0", "20", "0.0",
		"10", "4.0", "20", "4.0",
		"10", "0.0", "20", "4.0",
	}
}

func polyline(layer string, pts ...[2]string) []string {
	body := []string{"0", "POLYLINE", "8", layer, "66", "1"}
	for _, p := range pts {
		body = append(body,
			"0", "VERTEX",
			"8", layer,
			"10", p[0], "20", p[1], "30", "0.0",
		)
	}
	return append(body, "0", "SEQEND")
}

func TestParseClosedLWPolyline(t *testing.T) {
	src := dxfFile(lwSquare("0", "1")...)
	def, err := Parse(strings.NewReader(src), nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(def.Curves) != 1 {
		t.Fatalf("got %d curves, want 1", len(def.Curves))
	}
	c := def.Curves[0]
	if !c.Closed {
		t.Error("curve should be closed via the closed flag")
	}
	want := []r2.Vec{{X: 0, Y: 0}, {X: 4, Y: 0}, {X: 4, Y: 4}, {X: 0, Y: 4}}
	if diff := cmp.Diff(want, c.Vertex); diff != "" {
		t.Errorf("vertices mismatch (-want +got):\n%s", diff)
	}
	if def.Anchor != nil {
		t.Errorf("unexpected anchor %v", *def.Anchor)
	}
}

func TestParseCoincidentEndpointsClose(t *testing.T) {
	src := dxfFile(polyline("0",
		[2]string{"0.0", "0.0"},
		[2]string{"2.0", "0.0"},
		[2]string{"2.0", "2.0"},
		[2]string{"0.0", "2.0"},
		[2]string{"0.0", "0.0"},
	)...)
	def, err := Parse(strings.NewReader(src), nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(def.Curves) != 1 {
		t.Fatalf("got %d curves, want 1", len(def.Curves))
	}
	c := def.Curves[0]
	if !c.Closed {
		t.Error("coincident endpoints should close the curve")
	}
	if len(c.Vertex) != 4 {
		t.Errorf("got %d vertices, want 4 (closing vertex dropped)", len(c.Vertex))
	}
}

func TestParseOpenPolylineStaysOpen(t *testing.T) {
	src := dxfFile(polyline("0",
		[2]string{"0.0", "0.0"},
		[2]string{"2.0", "0.0"},
		[2]string{"2.0", "2.0"},
	)...)
	def, err := Parse(strings.NewReader(src), nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(def.Curves) != 1 {
		t.Fatalf("got %d curves, want 1", len(def.Curves))
	}
	if def.Curves[0].Closed {
		t.Error("open polyline must not be marked closed")
	}
}

func TestParseWorkPointAnchor(t *testing.T) {
	body := lwSquare("0", "1")
	body = append(body, polyline(AnchorLayer, [2]string{"1.0", "3.0"})...)
	src := dxfFile(body...)
	def, err := Parse(strings.NewReader(src), nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(def.Curves) != 1 {
		t.Fatalf("got %d curves, want 1 (anchor entity is not geometry)", len(def.Curves))
	}
	if def.Anchor == nil {
		t.Fatal("anchor not picked up")
	}
	if want := (r2.Vec{X: 1, Y: 3}); *def.Anchor != want {
		t.Errorf("anchor %v, want %v", *def.Anchor, want)
	}
}

func TestParseSkipsUnsupportedEntities(t *testing.T) {
	body := []string{
		"0", "LINE",
		"8", "0",
		"10", "0.0", "20", "0.0",
		"11", "5.0", "21", "5.0",
	}
	body = append(body, lwSquare("0", "1")...)
	src := dxfFile(body...)
	def, err := Parse(strings.NewReader(src), nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(def.Curves) != 1 {
		t.Errorf("got %d curves, want 1 (LINE skipped)", len(def.Curves))
	}
}

func TestParseNoGeometry(t *testing.T) {
	src := dxfFile()
	if _, err := Parse(strings.NewReader(src), nil); err == nil {
		t.Error("expected error for drawing without geometry")
	}
}

func TestCurveBounds(t *testing.T) {
	c := Curve{Vertex: []r2.Vec{{X: -1, Y: 2}, {X: 3, Y: -4}, {X: 0, Y: 5}}}
	bb := c.Bounds()
	if bb.Min != (r2.Vec{X: -1, Y: -4}) || bb.Max != (r2.Vec{X: 3, Y: 5}) {
		t.Errorf("bounds %+v", bb)
	}
}
