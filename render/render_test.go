package render_test

import (
	"bytes"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/deadsy/sdfx/sdf"
	v3 "github.com/deadsy/sdfx/vec/v3"
	"github.com/fabkit/diecut"
	"github.com/fabkit/diecut/kernel"
	"github.com/fabkit/diecut/kernel/sdfkern"
	"github.com/fabkit/diecut/render"
	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"
)

// beam returns a 2 x 2 x 4 solid with its profile centered on the origin,
// extruded along +Z.
func beam(t testing.TB) kernel.Solid {
	t.Helper()
	k := sdfkern.New()
	reg, err := k.Polygon([]r2.Vec{
		{X: -1, Y: -1}, {X: 1, Y: -1}, {X: 1, Y: 1}, {X: -1, Y: 1},
	})
	if err != nil {
		t.Fatal(err)
	}
	s, err := k.Extrude(reg, kernel.AxisZ, 4)
	if err != nil {
		t.Fatal(err)
	}
	return s
}

func TestMesh(t *testing.T) {
	s := beam(t)
	model, err := render.Mesh(s, 32)
	if err != nil {
		t.Fatal(err)
	}
	if len(model) == 0 {
		t.Fatal("empty mesh")
	}

	// all vertices near the solid bounds
	const margin = 0.5
	bb := s.Bounds()
	var area float64
	for _, tri := range model {
		for _, v := range tri.V {
			if v.X < bb.Min.X-margin || v.X > bb.Max.X+margin ||
				v.Y < bb.Min.Y-margin || v.Y > bb.Max.Y+margin ||
				v.Z < bb.Min.Z-margin || v.Z > bb.Max.Z+margin {
				t.Fatalf("vertex %v outside bounds %+v", v, bb)
			}
		}
		e1 := r3.Sub(tri.V[1], tri.V[0])
		e2 := r3.Sub(tri.V[2], tri.V[0])
		area += r3.Norm(r3.Cross(e1, e2)) / 2
	}

	// 2x2x4 box surface area is 40; marching cubes gets close
	if math.Abs(area-40) > 40*0.15 {
		t.Errorf("surface area %g, want about 40", area)
	}
}

func TestMeshNilSolid(t *testing.T) {
	if _, err := render.Mesh(nil, 0); err == nil {
		t.Error("expected error for nil solid")
	}
}

// TestAgainstSdfxBox cross-checks the kernel's extrusion field against the
// independent sdfx box primitive at points where both fields are exact.
func TestAgainstSdfxBox(t *testing.T) {
	ours := beam(t)

	box, err := sdf.Box3D(v3.Vec{X: 2, Y: 2, Z: 4}, 0)
	if err != nil {
		t.Fatal(err)
	}
	theirs := sdf.Transform3D(box, sdf.Translate3d(v3.Vec{Z: 2}))

	for _, p := range []r3.Vec{
		{X: 0, Y: 0, Z: 2},       // deep inside
		{X: 0.5, Y: 0, Z: 0.5},   // inside near faces
		{X: 2, Y: 0, Z: 2},       // outside one face
		{X: 0, Y: 0, Z: 5},       // outside the top
		{X: -1.5, Y: 0, Z: 2},    // outside one face
		{X: 2, Y: 2, Z: 2},       // outside an edge, z in range
		{X: 0.9, Y: -0.9, Z: 3.9}, // inside near a corner
	} {
		got := ours.Evaluate(p)
		want := theirs.Evaluate(v3.Vec{X: p.X, Y: p.Y, Z: p.Z})
		if math.Abs(got-want) > 1e-9 {
			t.Errorf("at %v: kernel %g, sdfx %g", p, got, want)
		}
	}
}

func TestSTLRoundTrip(t *testing.T) {
	model := []render.Triangle3{
		{V: [3]r3.Vec{{}, {X: 1}, {Y: 1}}},
		{V: [3]r3.Vec{{}, {Y: 1}, {Z: 1}}},
		{V: [3]r3.Vec{{}, {Z: 1}, {X: 1}}},
		{V: [3]r3.Vec{{X: 1}, {Y: 1}, {Z: 1}}},
	}
	var buf bytes.Buffer
	if err := render.WriteSTL(&buf, model); err != nil {
		t.Fatal(err)
	}
	if want := 84 + 50*len(model); buf.Len() != want {
		t.Errorf("wrote %d bytes, want %d", buf.Len(), want)
	}

	got, err := render.ReadSTL(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != len(model) {
		t.Fatalf("read %d triangles, want %d", len(got), len(model))
	}
	for i := range model {
		for j := range model[i].V {
			if got[i].V[j] != model[i].V[j] {
				t.Errorf("triangle %d vertex %d: got %v, want %v",
					i, j, got[i].V[j], model[i].V[j])
			}
		}
	}
}

func TestWriteSTLEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := render.WriteSTL(&buf, nil); err == nil {
		t.Error("expected error for empty model")
	}
}

func TestReadSTLTruncated(t *testing.T) {
	var buf bytes.Buffer
	if err := render.WriteSTL(&buf, []render.Triangle3{
		{V: [3]r3.Vec{{}, {X: 1}, {Y: 1}}},
	}); err != nil {
		t.Fatal(err)
	}
	trunc := buf.Bytes()[:buf.Len()-10]
	if _, err := render.ReadSTL(bytes.NewReader(trunc)); err == nil {
		t.Error("expected error for truncated stream")
	}
}

func TestSTLStoreCommit(t *testing.T) {
	dir := t.TempDir()
	store := &render.STLStore{Dir: dir, Name: "beam", Cells: 32}
	parts := []diecut.Part{{Solid: beam(t)}, {Solid: beam(t)}}
	if err := store.Commit(parts); err != nil {
		t.Fatal(err)
	}
	for _, name := range []string{"beam_0.stl", "beam_1.stl"} {
		fi, err := os.Stat(filepath.Join(dir, name))
		if err != nil {
			t.Fatal(err)
		}
		if fi.Size() <= 84 {
			t.Errorf("%s: %d bytes, want more than a bare header", name, fi.Size())
		}
	}
}
