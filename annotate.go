package diecut

import (
	"fmt"

	"github.com/fabkit/diecut/internal/d2"
	"github.com/fabkit/diecut/profile"
	"github.com/yofu/dxf"
	"github.com/yofu/dxf/color"
	"github.com/yofu/dxf/entity"
	"gonum.org/v1/gonum/spatial/r3"
)

// AnnotationKind distinguishes the two angular annotations of a cut end.
type AnnotationKind int

const (
	// MiterAnnotation is the angle within the width/depth plane.
	MiterAnnotation AnnotationKind = iota
	// TiltAnnotation is the angle out of that plane, toward the axis.
	TiltAnnotation
)

func (k AnnotationKind) String() string {
	if k == MiterAnnotation {
		return "miter"
	}
	return "tilt"
}

// Annotation is a cosmetic angular dimension for operator verification.
// It has no effect on solid geometry.
type Annotation struct {
	End   End
	Kind  AnnotationKind
	Angle float64
	At    r3.Vec
}

// annotate emits miter and tilt annotations for each non-square end,
// anchored at the center of that end face. Bad angle values are dropped
// with a warning, never an error.
func (e *Engine) annotate(n normalized, req Request) ([]Annotation, []Warning) {
	bb := d2.Box(n.regions[0].Bounds())
	for _, reg := range n.regions[1:] {
		bb = bb.Extend(d2.Box(reg.Bounds()))
	}
	center := n.axis.Lift(bb.Center())
	a, _, _ := n.axis.Frame()

	var anns []Annotation
	var warns []Warning
	for _, end := range []End{LeftEnd, RightEnd} {
		spec := req.LeftCut
		at := center
		if end == RightEnd {
			spec = req.RightCut
			at = r3.Add(center, r3.Scale(req.Length, a))
		}
		spec = spec.orSquare()
		if spec.Square() {
			continue
		}
		for _, v := range []struct {
			kind  AnnotationKind
			angle float64
		}{
			{MiterAnnotation, spec.Miter},
			{TiltAnnotation, spec.Tilt},
		} {
			kind, angle := v.kind, v.angle
			if angle <= 0 || angle >= 180 {
				err := fmt.Errorf("%s end %s angle %g out of range", end, kind, angle)
				e.Log.Printf("annotate: %v", err)
				warns = append(warns, AnnotationWarning{Err: err})
				continue
			}
			anns = append(anns, Annotation{End: end, Kind: kind, Angle: angle, At: at})
		}
	}
	return anns, warns
}

// WriteAnnotationDXF writes a verification drawing: the profile outlines
// on a PROFILE layer and one tick per annotation on a layer named after
// the end, kind and angle. Purely for human inspection.
func WriteAnnotationDXF(path string, def *profile.Definition, anns []Annotation) error {
	d := dxf.NewDrawing()

	d.AddLayer("PROFILE", color.Red, dxf.DefaultLineType, true)
	d.ChangeLayer("PROFILE")
	for _, c := range def.Curves {
		// repeat the first vertex so the outline reads closed
		lwp := entity.NewLwPolyline(len(c.Vertex) + 1)
		for i, pt := range c.Vertex {
			lwp.Vertices[i] = []float64{pt.X, pt.Y}
		}
		lwp.Vertices[len(c.Vertex)] = []float64{c.Vertex[0].X, c.Vertex[0].Y}
		d.AddEntity(lwp)
	}

	for _, ann := range anns {
		layer := fmt.Sprintf("CUT_%s_%s_%.1f", ann.End, ann.Kind, ann.Angle)
		d.AddLayer(layer, color.Red, dxf.DefaultLineType, true)
		d.ChangeLayer(layer)
		// a small cross marking the annotation anchor in the axis/depth plane
		const tick = 1.0
		x, y := ann.At.X, ann.At.Y
		for _, arm := range [][2][2]float64{
			{{x - tick, y}, {x + tick, y}},
			{{x, y - tick}, {x, y + tick}},
		} {
			lwp := entity.NewLwPolyline(2)
			lwp.Vertices[0] = []float64{arm[0][0], arm[0][1]}
			lwp.Vertices[1] = []float64{arm[1][0], arm[1][1]}
			d.AddEntity(lwp)
		}
	}
	return d.SaveAs(path)
}
