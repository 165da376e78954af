package render

import (
	"fmt"
	"io"
	"log"
	"path/filepath"

	"github.com/fabkit/diecut"
)

// STLStore persists committed parts as binary STL files, one file per
// part, named <Name>_<index>.stl under Dir.
type STLStore struct {
	Dir   string
	Name  string // base file name, "part" when empty
	Cells int    // marching cubes resolution, DefaultCells when <= 0
	Log   *log.Logger
}

var _ diecut.Store = (*STLStore)(nil)

// Commit tessellates and writes every part. The batch fails on the first
// part that cannot be meshed or written.
func (st *STLStore) Commit(parts []diecut.Part) error {
	logger := st.Log
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	name := st.Name
	if name == "" {
		name = "part"
	}
	for i, p := range parts {
		model, err := Mesh(p.Solid, st.Cells)
		if err != nil {
			return fmt.Errorf("mesh part %d: %w", i, err)
		}
		path := filepath.Join(st.Dir, fmt.Sprintf("%s_%d.stl", name, i))
		if err := CreateSTL(path, model); err != nil {
			return fmt.Errorf("write part %d: %w", i, err)
		}
		logger.Printf("render: wrote %s (%d triangles)", path, len(model))
	}
	return nil
}
