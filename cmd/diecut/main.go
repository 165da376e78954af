// Command diecut fabricates a cut, mitered length of extruded stock from
// a DXF die profile and writes one binary STL per resulting solid.
//
// Example:
//
//	diecut -profile die.dxf -length 60 -left-miter 45 -out parts
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/fabkit/diecut"
	"github.com/fabkit/diecut/kernel/sdfkern"
	"github.com/fabkit/diecut/profile"
	"github.com/fabkit/diecut/render"
)

func main() {
	var (
		profilePath = flag.String("profile", "", "DXF die profile (required)")
		length      = flag.Float64("length", 0, "nominal stock length (required)")
		leftMiter   = flag.Float64("left-miter", 90, "left end miter angle, degrees")
		leftTilt    = flag.Float64("left-tilt", 90, "left end tilt angle, degrees")
		rightMiter  = flag.Float64("right-miter", 90, "right end miter angle, degrees")
		rightTilt   = flag.Float64("right-tilt", 90, "right end tilt angle, degrees")
		handedSide  = flag.String("handed", "", "handedness side, L or R (default not handed)")
		preserve    = flag.Bool("preserve-orientation", false, "extrude along Z, keeping the profile as drawn")
		outDir      = flag.String("out", ".", "output directory for STL files")
		name        = flag.String("name", "part", "base name for output files")
		cells       = flag.Int("cells", render.DefaultCells, "marching cubes resolution")
		annotateDXF = flag.String("annotate", "", "also write a cut-angle verification DXF to this path")
	)
	flag.Parse()

	logger := log.New(os.Stderr, "diecut: ", 0)
	if *profilePath == "" || *length <= 0 {
		flag.Usage()
		os.Exit(2)
	}

	def, err := profile.Load(*profilePath, logger)
	if err != nil {
		logger.Fatal(err)
	}

	store := &render.STLStore{Dir: *outDir, Name: *name, Cells: *cells, Log: logger}
	engine := diecut.New(sdfkern.New(), store, logger)

	req := diecut.Request{
		Profile:             def,
		Length:              *length,
		LeftCut:             diecut.CutSpec{Miter: *leftMiter, Tilt: *leftTilt},
		RightCut:            diecut.CutSpec{Miter: *rightMiter, Tilt: *rightTilt},
		Handed:              *handedSide != "",
		HandedSide:          *handedSide,
		PreserveOrientation: *preserve,
		AddAnnotations:      *annotateDXF != "",
	}
	res, err := engine.CreateFabricatedPart(req)
	if err != nil {
		logger.Fatal(err)
	}

	for _, w := range res.Warnings {
		logger.Printf("warning: %v", w)
	}
	fmt.Printf("profile %g x %g, %d part(s) written to %s\n",
		res.Width, res.Height, len(res.Parts), *outDir)

	if *annotateDXF != "" {
		if err := diecut.WriteAnnotationDXF(*annotateDXF, def, res.Annotations); err != nil {
			logger.Printf("warning: annotation dxf: %v", err)
		}
	}
}
