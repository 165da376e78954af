package diecut

import (
	"fmt"
	"sort"

	"github.com/fabkit/diecut/internal/d2"
	"github.com/fabkit/diecut/kernel"
	"github.com/fabkit/diecut/profile"
)

// resolve turns the raw curve set into disjoint regions with holes
// subtracted. Pre-built regions on the definition are reused as-is.
func (e *Engine) resolve(def *profile.Definition) ([]kernel.Region, []Warning, error) {
	if len(def.Regions) > 0 {
		return append([]kernel.Region{}, def.Regions...), nil, nil
	}
	if len(def.Curves) == 0 {
		return nil, nil, fmt.Errorf("%w: no curves", ErrInvalidProfile)
	}

	regions := make([]kernel.Region, 0, len(def.Curves))
	for i, c := range def.Curves {
		if !c.Closed {
			return nil, nil, fmt.Errorf("%w: curve %d is not closed", ErrInvalidProfile, i)
		}
		reg, err := e.Kernel.Polygon(c.Vertex)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: curve %d: %v", ErrInvalidProfile, i, err)
		}
		regions = append(regions, reg)
	}
	nested, warns := e.nest(regions)
	return nested, warns, nil
}

// nest sorts candidate regions by descending area and subtracts each
// region whose extents lie fully inside an already accepted, larger one.
// A candidate that fails to subtract is kept independent with a warning.
// Extents containment is a bounding-box approximation, not a true
// point-in-polygon test; nested shapes sharing a box with similar-size
// siblings can be misclassified.
func (e *Engine) nest(regions []kernel.Region) ([]kernel.Region, []Warning) {
	sort.SliceStable(regions, func(i, j int) bool {
		return regions[i].Area() > regions[j].Area()
	})

	var accepted []kernel.Region
	var warns []Warning
	for c, cand := range regions {
		hole := false
		for i, container := range accepted {
			if !d2.Box(container.Bounds()).ContainsBox(d2.Box(cand.Bounds())) {
				continue
			}
			sub, err := e.Kernel.Subtract(container, cand)
			if err != nil {
				e.Log.Printf("resolve: region %d kept despite nesting: %v", c, err)
				warns = append(warns, NestingWarning{Region: c, Err: err})
				break
			}
			accepted[i] = sub
			hole = true
			break
		}
		if !hole {
			accepted = append(accepted, cand)
		}
	}
	return accepted, warns
}
