package diecut

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidProfile means the source profile cannot produce any closed
	// region: unclosed curves, too few vertices, or zero-area geometry.
	ErrInvalidProfile = errors.New("invalid profile")

	// ErrPartialExtrusion means every region failed to extrude. Individual
	// region failures are downgraded to warnings as long as at least one
	// solid survives.
	ErrPartialExtrusion = errors.New("no region extruded")
)

// Warning is a non-fatal defect accumulated while processing a request.
// The pipeline never aborts siblings over one bad item; it records a
// warning and moves on.
type Warning interface {
	error
	warning()
}

// PartialExtrusionWarning reports a region that was skipped because it
// failed to extrude.
type PartialExtrusionWarning struct {
	Region int
	Err    error
}

func (w PartialExtrusionWarning) Error() string {
	return fmt.Sprintf("region %d skipped: %v", w.Region, w.Err)
}

func (w PartialExtrusionWarning) Unwrap() error { return w.Err }
func (PartialExtrusionWarning) warning()        {}

// NestingWarning reports a region that looked like a hole but could not
// be subtracted from its container; it is kept as an independent region.
type NestingWarning struct {
	Region int
	Err    error
}

func (w NestingWarning) Error() string {
	return fmt.Sprintf("region %d kept despite nesting: %v", w.Region, w.Err)
}

func (w NestingWarning) Unwrap() error { return w.Err }
func (NestingWarning) warning()        {}

// CutWarning reports a solid that failed to slice at one end and keeps
// its pre-cut geometry.
type CutWarning struct {
	Solid int
	End   End
	Err   error
}

func (w CutWarning) Error() string {
	return fmt.Sprintf("%s cut failed on solid %d: %v", w.End, w.Solid, w.Err)
}

func (w CutWarning) Unwrap() error { return w.Err }
func (CutWarning) warning()        {}

// AnnotationWarning reports a swallowed annotator error.
type AnnotationWarning struct {
	Err error
}

func (w AnnotationWarning) Error() string {
	return fmt.Sprintf("annotation dropped: %v", w.Err)
}

func (w AnnotationWarning) Unwrap() error { return w.Err }
func (AnnotationWarning) warning()        {}
