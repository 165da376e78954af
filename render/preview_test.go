package render_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/fabkit/diecut/render"
	"github.com/fogleman/fauxgl"
	"github.com/nfnt/resize"
	"gonum.org/v1/plot/cmpimg"
)

// imgDelta is the normalized image comparison tolerance; 0 requires a
// perfect match.
const imgDelta = 0.01

// TestPreviewImage renders a meshed beam to PNG and compares it against
// the golden image. A missing golden image is regenerated and the test
// skipped, so refreshing the expectation is just deleting the file.
func TestPreviewImage(t *testing.T) {
	const golden = "testdata/defactoBeam.png"

	dir := t.TempDir()
	stlPath := filepath.Join(dir, "beam.stl")
	model, err := render.Mesh(beam(t), 64)
	if err != nil {
		t.Fatal(err)
	}
	if err := render.CreateSTL(stlPath, model); err != nil {
		t.Fatal(err)
	}

	pngPath := filepath.Join(dir, "beam.png")
	if err := renderPNG(stlPath, pngPath); err != nil {
		t.Fatal(err)
	}

	if _, err := os.Stat(golden); os.IsNotExist(err) {
		if err := os.MkdirAll(filepath.Dir(golden), 0o755); err != nil {
			t.Fatal(err)
		}
		got, err := os.ReadFile(pngPath)
		if err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(golden, got, 0o644); err != nil {
			t.Fatal(err)
		}
		t.Skipf("golden image %s regenerated", golden)
	}

	b1, err := os.ReadFile(pngPath)
	if err != nil {
		t.Fatal(err)
	}
	b2, err := os.ReadFile(golden)
	if err != nil {
		t.Fatal(err)
	}
	equal, err := cmpimg.EqualApprox("png", b1, b2, imgDelta)
	if err != nil {
		t.Fatal(err)
	}
	if !equal {
		t.Error("rendered preview does not match the golden image")
	}
}

func renderPNG(stlName, pngName string) error {
	mesh, err := fauxgl.LoadSTL(stlName)
	if err != nil {
		return err
	}
	const (
		width, height = 640, 360
		scale         = 2 // supersampling
		fovy          = 30
		near, far     = 1, 10
	)
	var (
		eye    = fauxgl.V(3, 1.5, 2)
		center = fauxgl.V(0, 0, 0)
		up     = fauxgl.V(0, 0, 1)
		light  = fauxgl.V(-0.75, 1, 0.25).Normalize()
	)
	mesh.BiUnitCube()
	context := fauxgl.NewContext(width*scale, height*scale)
	context.ClearColorBufferWith(fauxgl.HexColor("#FFF8E3"))
	aspect := float64(width) / float64(height)
	matrix := fauxgl.LookAt(eye, center, up).Perspective(fovy, aspect, near, far)
	shader := fauxgl.NewPhongShader(matrix, light, eye)
	shader.ObjectColor = fauxgl.HexColor("#468966")
	context.Shader = shader
	context.DrawMesh(mesh)
	image := resize.Resize(width, height, context.Image(), resize.Bilinear)
	return fauxgl.SavePNG(pngName, image)
}
