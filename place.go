package diecut

import (
	"fmt"

	"github.com/fabkit/diecut/kernel"
)

// place applies the caller's final rigid transform to every part and
// commits the batch to the store. An identity transform is a pass-through.
func (e *Engine) place(parts []Part, t kernel.Transform) ([]Part, error) {
	if !t.IsIdentity() {
		for i := range parts {
			parts[i].Solid = e.Kernel.Place(parts[i].Solid, t)
			if parts[i].Anchor != nil {
				a := t.Apply(*parts[i].Anchor)
				parts[i].Anchor = &a
			}
		}
	}
	if err := e.Store.Commit(parts); err != nil {
		return nil, fmt.Errorf("commit parts: %w", err)
	}
	return parts, nil
}
