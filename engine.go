// Package diecut turns a 2-D cross-section profile, a length and up to
// four end-cut angles into cut, mitered 3-D solids of extruded stock.
//
// The pipeline is Loader -> Resolver -> Normalizer -> Extruder -> End-Cut
// -> Annotator -> Placement. Every stage is a pure transformation of its
// inputs except placement, which commits the finished parts to a Store.
// Geometry primitives come from a kernel.Kernel passed in explicitly, so
// concurrent requests never share state.
package diecut

import (
	"fmt"
	"io"
	"log"

	"github.com/fabkit/diecut/kernel"
	"github.com/fabkit/diecut/profile"
	"gonum.org/v1/gonum/spatial/r3"
)

// DefaultOvercut is the extra extrusion length beyond the nominal right
// end. It guarantees a clean face once the right cut plane passes through;
// the right end is always sliced, square or not, which is what trims the
// overcut back off.
const DefaultOvercut = 0.1

// SideRight is the default, unmirrored handedness side.
const SideRight = "R"

// CutSpec holds the miter and tilt angles for one end, in degrees.
// 90 means square. The zero value is treated as square.
type CutSpec struct {
	Miter float64
	Tilt  float64
}

// Square reports whether the spec requests no cut.
func (c CutSpec) Square() bool {
	c = c.orSquare()
	return c.Miter == 90 && c.Tilt == 90
}

func (c CutSpec) orSquare() CutSpec {
	if c == (CutSpec{}) {
		return CutSpec{Miter: 90, Tilt: 90}
	}
	return c
}

// End identifies one end of the extruded stock.
type End int

const (
	LeftEnd End = iota
	RightEnd
)

func (e End) String() string {
	if e == LeftEnd {
		return "left"
	}
	return "right"
}

// Part is one finished solid plus its work point, if the profile had one.
// The anchor is transformed consistently with every operation applied to
// the solid.
type Part struct {
	Solid  kernel.Solid
	Anchor *r3.Vec
}

// Request are the parameters of one fabrication. Either Profile or
// ProfilePath must be set; Length must be positive. Everything else has a
// usable zero value: square cuts, not handed, identity placement.
type Request struct {
	Profile     *profile.Definition
	ProfilePath string

	Length   float64
	LeftCut  CutSpec
	RightCut CutSpec

	Handed     bool
	HandedSide string // "L" or "R"; mirrored when != SideRight

	FinalTransform      kernel.Transform
	PreserveOrientation bool
	AddAnnotations      bool
}

func (r Request) axis() kernel.Axis {
	if r.PreserveOrientation {
		return kernel.AxisZ
	}
	return kernel.AxisX
}

func (r Request) mirrored() bool {
	return r.Handed && r.HandedSide != SideRight
}

// Result is the outcome of a fabrication request. Width and Height are
// the profile bounding extents before reorientation. Warnings collect
// per-item defects that did not abort the request.
type Result struct {
	Parts       []Part
	Width       float64
	Height      float64
	Annotations []Annotation
	Warnings    []Warning
}

// Store receives finished parts at the end of the pipeline.
type Store interface {
	Commit(parts []Part) error
}

// DiscardStore drops committed parts. Useful default and test double.
type DiscardStore struct{}

func (DiscardStore) Commit([]Part) error { return nil }

// Engine runs fabrication requests against a geometry kernel and a store.
type Engine struct {
	Kernel kernel.Kernel
	Store  Store
	Log    *log.Logger

	// Overcut is the extra extrusion length past the nominal right end.
	// It cannot be disabled: the right-end cut expects waste material to
	// trim, so the zero value selects DefaultOvercut.
	Overcut float64
}

// New returns an engine with the default overcut. A nil store discards
// parts; a nil logger silences the engine.
func New(k kernel.Kernel, store Store, logger *log.Logger) *Engine {
	if store == nil {
		store = DiscardStore{}
	}
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Engine{Kernel: k, Store: store, Log: logger, Overcut: DefaultOvercut}
}

// CreateFabricatedPart runs the full pipeline for one request.
//
// Fatal errors mean no usable output: an unreadable or invalid profile, a
// non-positive length, or every region failing to extrude. Anything less
// is reported through Result.Warnings and processing continues with the
// healthy subset.
func (e *Engine) CreateFabricatedPart(req Request) (*Result, error) {
	if req.Length <= 0 {
		return nil, fmt.Errorf("length %g: must be positive", req.Length)
	}
	def := req.Profile
	if def == nil {
		if req.ProfilePath == "" {
			return nil, fmt.Errorf("%w: no profile source", ErrInvalidProfile)
		}
		var err error
		def, err = profile.Load(req.ProfilePath, e.Log)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidProfile, err)
		}
	}

	res := &Result{}
	regions, warns, err := e.resolve(def)
	res.Warnings = append(res.Warnings, warns...)
	if err != nil {
		return nil, err
	}
	norm, err := e.normalize(regions, def.Anchor, req)
	if err != nil {
		return nil, err
	}
	res.Width, res.Height = norm.width, norm.height

	parts, warns, err := e.extrude(norm, req)
	res.Warnings = append(res.Warnings, warns...)
	if err != nil {
		return nil, err
	}

	res.Warnings = append(res.Warnings, e.cutEnds(parts, norm, req)...)

	if req.AddAnnotations {
		var aw []Warning
		res.Annotations, aw = e.annotate(norm, req)
		res.Warnings = append(res.Warnings, aw...)
	}

	res.Parts, err = e.place(parts, req.FinalTransform)
	if err != nil {
		return nil, err
	}
	return res, nil
}
