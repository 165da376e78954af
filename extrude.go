package diecut

import "fmt"

// overcut never returns zero; see the Engine.Overcut doc.
func (e *Engine) overcut() float64 {
	if e.Overcut > 0 {
		return e.Overcut
	}
	return DefaultOvercut
}

// extrude sweeps every normalized region along the extrusion axis by the
// nominal length plus the overcut. A region that fails to extrude is
// logged and skipped; the request only fails when nothing survives.
func (e *Engine) extrude(n normalized, req Request) ([]Part, []Warning, error) {
	total := req.Length + e.overcut()

	var parts []Part
	var warns []Warning
	for i, reg := range n.regions {
		solid, err := e.Kernel.Extrude(reg, n.axis, total)
		if err != nil {
			e.Log.Printf("extrude: region %d skipped: %v", i, err)
			warns = append(warns, PartialExtrusionWarning{Region: i, Err: err})
			continue
		}
		p := Part{Solid: solid}
		if n.anchor != nil {
			a := n.axis.Lift(*n.anchor)
			p.Anchor = &a
		}
		parts = append(parts, p)
	}
	if len(parts) == 0 {
		return nil, warns, fmt.Errorf("%w: all %d regions failed", ErrPartialExtrusion, len(n.regions))
	}
	return parts, warns, nil
}
