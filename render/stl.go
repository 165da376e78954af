package render

import (
	"bufio"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/chewxy/math32"
	"gonum.org/v1/gonum/spatial/r3"
)

// stlHeader is the binary STL file header.
type stlHeader struct {
	_     [80]uint8
	Count uint32
}

// stlTriangle is the 50-byte on-disk triangle record.
type stlTriangle struct {
	Normal  [3]float32
	Vertex1 [3]float32
	Vertex2 [3]float32
	Vertex3 [3]float32
	_       uint16 // attribute byte count, always zero
}

const stlTriangleSize = 50

// CreateSTL writes the model to a binary STL file.
func CreateSTL(path string, model []Triangle3) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	w := bufio.NewWriter(f)
	if err := WriteSTL(w, model); err != nil {
		return err
	}
	return w.Flush()
}

// WriteSTL writes model triangles to w in binary STL format.
func WriteSTL(w io.Writer, model []Triangle3) error {
	if len(model) == 0 {
		return errors.New("empty triangle slice")
	}
	header := stlHeader{Count: uint32(len(model))}
	if err := binary.Write(w, binary.LittleEndian, &header); err != nil {
		return err
	}
	var b [stlTriangleSize]byte
	for _, tri := range model {
		d := stlTriangle{
			Normal:  f32From3(tri.Normal()),
			Vertex1: f32From3(tri.V[0]),
			Vertex2: f32From3(tri.V[1]),
			Vertex3: f32From3(tri.V[2]),
		}
		d.put(b[:])
		if _, err := w.Write(b[:]); err != nil {
			return err
		}
	}
	return nil
}

// ReadSTL reads a binary STL stream back into triangles, validating each
// record. A stored normal that disagrees with the one calculated from the
// vertices is reported through errNormalMismatch after the whole model is
// read; all other defects abort the read.
func ReadSTL(r io.Reader) (model []Triangle3, readErr error) {
	var header stlHeader
	if err := binary.Read(r, binary.LittleEndian, &header); err != nil {
		return nil, fmt.Errorf("read STL header: %w", err)
	}
	if header.Count == 0 {
		return nil, errors.New("STL header indicates 0 triangles")
	}
	var (
		buf [stlTriangleSize]byte
		d   stlTriangle
	)
	for i := 0; i < int(header.Count); i++ {
		if _, err := io.ReadFull(r, buf[:]); err != nil {
			return nil, fmt.Errorf("triangle %d/%d: %w", i+1, header.Count, err)
		}
		d.get(buf[:])
		if err := d.validate(); err != nil {
			if !errors.Is(err, errNormalMismatch) {
				return nil, fmt.Errorf("triangle %d/%d: %w", i+1, header.Count, err)
			}
			readErr = err
		}
		model = append(model, d.triangle())
	}
	return model, readErr
}

// errNormalMismatch may be a false alarm on high resolution models where
// tiny triangles lose precision in float32.
var errNormalMismatch = errors.New("stored normal disagrees with calculated normal")

func (d stlTriangle) validate() error {
	const vertexTol = 1e-12
	const normTol = 5e-2
	if bad3F32(d.Normal) {
		return errors.New("inf/NaN triangle normal")
	}
	if bad3F32(d.Vertex1) || bad3F32(d.Vertex2) || bad3F32(d.Vertex3) {
		return errors.New("inf/NaN triangle vertex")
	}
	if equalWithin3F32(d.Vertex1, d.Vertex2, vertexTol) ||
		equalWithin3F32(d.Vertex2, d.Vertex3, vertexTol) ||
		equalWithin3F32(d.Vertex3, d.Vertex1, vertexTol) {
		return errors.New("degenerate triangle")
	}
	want := f32From3(d.triangle().Normal())
	neg := [3]float32{-want[0], -want[1], -want[2]}
	if !equalWithin3F32(want, d.Normal, normTol) && !equalWithin3F32(neg, d.Normal, normTol) {
		return errNormalMismatch
	}
	return nil
}

func (d stlTriangle) put(b []byte) {
	put3F32(b, d.Normal)
	put3F32(b[12:], d.Vertex1)
	put3F32(b[24:], d.Vertex2)
	put3F32(b[36:], d.Vertex3)
	binary.LittleEndian.PutUint16(b[48:], 0)
}

func (d *stlTriangle) get(b []byte) {
	get3F32(b, &d.Normal)
	get3F32(b[12:], &d.Vertex1)
	get3F32(b[24:], &d.Vertex2)
	get3F32(b[36:], &d.Vertex3)
}

func (d stlTriangle) triangle() Triangle3 {
	return Triangle3{V: [3]r3.Vec{
		r3From3F32(d.Vertex1),
		r3From3F32(d.Vertex2),
		r3From3F32(d.Vertex3),
	}}
}

func put3F32(b []byte, f [3]float32) {
	_ = b[11] // early bounds check
	binary.LittleEndian.PutUint32(b, math.Float32bits(f[0]))
	binary.LittleEndian.PutUint32(b[4:], math.Float32bits(f[1]))
	binary.LittleEndian.PutUint32(b[8:], math.Float32bits(f[2]))
}

func get3F32(b []byte, f *[3]float32) {
	_ = b[11] // early bounds check
	f[0] = math.Float32frombits(binary.LittleEndian.Uint32(b))
	f[1] = math.Float32frombits(binary.LittleEndian.Uint32(b[4:]))
	f[2] = math.Float32frombits(binary.LittleEndian.Uint32(b[8:]))
}

func f32From3(v r3.Vec) [3]float32 {
	return [3]float32{float32(v.X), float32(v.Y), float32(v.Z)}
}

func r3From3F32(f [3]float32) r3.Vec {
	return r3.Vec{X: float64(f[0]), Y: float64(f[1]), Z: float64(f[2])}
}

func bad3F32(f [3]float32) bool {
	return math32.IsNaN(f[0]) || math32.IsInf(f[0], 0) ||
		math32.IsNaN(f[1]) || math32.IsInf(f[1], 0) ||
		math32.IsNaN(f[2]) || math32.IsInf(f[2], 0)
}

func equalWithin3F32(a, b [3]float32, tol float32) bool {
	return math32.Abs(a[0]-b[0]) <= tol &&
		math32.Abs(a[1]-b[1]) <= tol &&
		math32.Abs(a[2]-b[2]) <= tol
}
