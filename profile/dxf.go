package profile

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/rpaloschi/dxf-go/document"
	"github.com/rpaloschi/dxf-go/entities"
	"gonum.org/v1/gonum/spatial/r2"
)

// closeTol is the coincidence tolerance for treating an open polyline's
// first and last vertices as the same point.
const closeTol = 1e-6

// Load reads a profile definition from a DXF file on disk.
func Load(path string, logger *log.Logger) (*Definition, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open profile: %w", err)
	}
	defer f.Close()
	def, err := Parse(f, logger)
	if err != nil {
		return nil, fmt.Errorf("profile %s: %w", path, err)
	}
	return def, nil
}

// Parse reads a profile definition from DXF data. Polylines and
// lightweight polylines become profile curves; an entity on the
// AnchorLayer contributes its first vertex as the work point instead.
// Entities of other types are skipped with a log line, never an error.
func Parse(r io.Reader, logger *log.Logger) (*Definition, error) {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	doc, err := document.DxfDocumentFromStream(r)
	if err != nil {
		return nil, fmt.Errorf("parse dxf: %w", err)
	}

	def := Definition{}
	for _, entity := range doc.Entities.Entities {
		switch e := entity.(type) {
		case *entities.Polyline:
			var vertex []r2.Vec
			for _, v := range e.Vertices {
				vertex = append(vertex, r2.Vec{X: v.Location.X, Y: v.Location.Y})
			}
			def.add(vertex, false, e.LayerName)
		case *entities.LWPolyline:
			var vertex []r2.Vec
			for _, v := range e.Points {
				vertex = append(vertex, r2.Vec{X: v.Point.X, Y: v.Point.Y})
			}
			def.add(vertex, e.Closed, e.LayerName)
		default:
			logger.Printf("profile: skipping unsupported entity %T", entity)
		}
	}
	if len(def.Curves) == 0 && def.Anchor == nil {
		return nil, fmt.Errorf("no profile geometry in drawing")
	}
	return &def, nil
}

func (d *Definition) add(vertex []r2.Vec, closedFlag bool, layer string) {
	if len(vertex) == 0 {
		return
	}
	if layer == AnchorLayer {
		if d.Anchor == nil {
			a := vertex[0]
			d.Anchor = &a
		}
		return
	}
	closed := closedFlag
	if n := len(vertex); !closed && n >= 3 {
		first, last := vertex[0], vertex[n-1]
		if coincident(first, last) {
			vertex = vertex[:n-1]
			closed = true
		}
	}
	d.Curves = append(d.Curves, Curve{Vertex: vertex, Closed: closed})
}

func coincident(a, b r2.Vec) bool {
	return r2.Norm(r2.Sub(a, b)) <= closeTol
}
