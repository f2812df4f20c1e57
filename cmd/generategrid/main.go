// Command generategrid drives one advancing-front meshing run from a JSON
// boundary description, mirroring the generateGrid CLI surface of §6: mesh
// sizing strategy (edge/angle/ConstDel criteria, accelerated or not), a
// progress display cadence, single-subdomain runs, and an exit code per
// failure class of §7.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"github.com/dirkfeuchter/advfront/advancing"
	"github.com/dirkfeuchter/advfront/boundary"
	"github.com/dirkfeuchter/advfront/frontmodel"
	"github.com/dirkfeuchter/advfront/meshio"
	"github.com/dirkfeuchter/advfront/meshlog"
	"github.com/dirkfeuchter/advfront/meshparam"
	"github.com/dirkfeuchter/advfront/quadtree"
)

// Exit codes per §7's error-kind taxonomy.
const (
	exitOK = iota
	exitPrecondition
	exitArenaExhausted
	exitGeometryFailed
	exitUserInterrupt
	exitUsage
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	fs := flag.NewFlagSet("generategrid", flag.ContinueOnError)

	input := fs.String("input", "", "path to a JSON boundary description (boundary.Input); required")
	criterion := fs.String("edge|angle|Edge|Angle|ConstDel", "edge",
		"base selection criterion: edge/Edge rank by successor-edge length, "+
			"angle/Angle by interior angle; lowercase runs unaccelerated, "+
			"uppercase runs with the quadtree/AVL accelerator; ConstDel runs "+
			"accelerated edge selection biased toward Delaunay-like elements")
	equilateral := fs.Bool("equilateral", false, "bias apex height toward equilateral triangles")
	hGlobal := fs.Float64("h", meshparam.DefaultHGlobal, "global target mesh size")
	searchConst := fs.Float64("searchconst", meshparam.DefaultSearchConst, "search-radius multiplier of local mesh size")
	singleMode := fs.Int("SingleMode", 0, "restrict generation to one subdomain id (0 = all)")
	display := fs.Int("display", 0, "log progress every N emitted triangles (0 = silent)")
	maxNodes := fs.Int("maxnodes", 0, "abort with an out-of-memory exit code once this many nodes exist and meshing is unfinished (0 = unbounded)")
	maxTriangles := fs.Int("maxelements", 0, "abort with an out-of-memory exit code once this many triangles exist and meshing is unfinished (0 = unbounded)")

	// animate/update/step/plotfront/printelem belong to the original
	// NeXTStep-era UI shell (§1 Non-goals); accepted and ignored so existing
	// invocations still parse, with no visual effect.
	fs.Bool("animate", false, "accepted for compatibility; this build has no animated display")
	fs.Bool("update", false, "accepted for compatibility; this build has no animated display")
	fs.Bool("step", false, "accepted for compatibility; this build has no single-step mode")
	fs.Bool("plotfront", false, "accepted for compatibility; this build has no plotting surface")
	printElem := fs.Bool("printelem", false, "print each emitted triangle's node ids to stderr")

	if err := fs.Parse(args); err != nil {
		return exitUsage
	}
	if *input == "" {
		fmt.Fprintln(os.Stderr, "generategrid: -input is required")
		return exitUsage
	}

	logger := meshlog.New(meshlog.LevelInfo, os.Stderr)

	mesh, err := loadMesh(*input)
	if err != nil {
		logger.Infof("generategrid: load boundary: %v", err)
		return exitPrecondition
	}

	strat, err := parseCriterion(*criterion)
	if err != nil {
		logger.Infof("generategrid: %v", err)
		return exitUsage
	}
	strat.Equilateral = *equilateral

	params := meshparam.NewParams(
		meshparam.WithHGlobal(*hGlobal),
		meshparam.WithSearchConst(*searchConst),
	)

	box := boundingBox(mesh)

	interrupted := make(chan os.Signal, 1)
	signal.Notify(interrupted, os.Interrupt)
	defer signal.Stop(interrupted)

	opts := advancing.Options{
		Params:          params,
		Strategy:        strat,
		SingleSubdomain: *singleMode,
		MaxNodes:        *maxNodes,
		MaxTriangles:    *maxTriangles,
		DisplayEvery:    *display,
		Logger:          logger,
		Interrupt: func() bool {
			select {
			case <-interrupted:
				return true
			default:
				return false
			}
		},
	}

	result, err := advancing.GenerateGrid(mesh, box, opts)
	if err != nil {
		logger.Infof("generategrid: %v", err)
		switch {
		case result != nil && result.Interrupted:
			return exitUserInterrupt
		case isErr(err, advancing.ErrPrecondition):
			return exitPrecondition
		case isErr(err, advancing.ErrArenaExhausted):
			return exitArenaExhausted
		default:
			return exitGeometryFailed
		}
	}

	logger.Infof("generategrid: :gg:nNode=%d :gg:nElem=%d", result.NumNodes, result.NumTriangles)
	if *printElem {
		for _, tri := range mesh.Triangles() {
			fmt.Fprintf(os.Stderr, "element %d: nodes %v\n", tri.ID, tri.Nodes)
		}
	}

	if g, err := meshio.ExportGraph(mesh); err == nil {
		if islands, err := meshio.CountIslands(g); err == nil && islands > 1 {
			logger.Infof("generategrid: mesh skeleton has %d disconnected components", islands)
		}
	}

	return exitOK
}

func isErr(err, target error) bool {
	for err != nil {
		if err == target {
			return true
		}
		u, ok := err.(interface{ Unwrap() error })
		if !ok {
			return false
		}
		err = u.Unwrap()
	}
	return false
}

// boundaryFile is the on-disk JSON shape accepted by -input; it mirrors
// boundary.Input field-for-field since no serialization format for the
// mesher's boundary description is specified by the original shell (§6:
// "persisted state: none in the core").
type boundaryFile struct {
	Points     []boundary.Point     `json:"points"`
	Subdomains []boundary.Subdomain `json:"subdomains"`
}

func loadMesh(path string) (*frontmodel.Mesh, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	var bf boundaryFile
	if err := json.Unmarshal(raw, &bf); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	mesh := frontmodel.NewMesh()
	input := boundary.Input{Points: bf.Points, Subdomains: bf.Subdomains}
	if _, err := boundary.Assemble(mesh, input); err != nil {
		return nil, fmt.Errorf("assemble boundary: %w", err)
	}
	return mesh, nil
}

// boundingBox pads the mesh's current node extent on every side by half the
// sum of its width and height (1 when that is zero) and squares it off,
// giving the quadtree root room for the apex points the advancing front
// will propose.
func boundingBox(mesh *frontmodel.Mesh) quadtree.Box {
	n := mesh.NumNodes()
	if n == 0 {
		return quadtree.Box{SrcX: -1, SrcY: -1, Width: 2}
	}
	first := mesh.Node(0)
	minX, maxX := first.X, first.X
	minY, maxY := first.Y, first.Y
	for i := 1; i < n; i++ {
		nd := mesh.Node(frontmodel.NodeID(i))
		if nd.X < minX {
			minX = nd.X
		}
		if nd.X > maxX {
			maxX = nd.X
		}
		if nd.Y < minY {
			minY = nd.Y
		}
		if nd.Y > maxY {
			maxY = nd.Y
		}
	}
	pad := (maxX - minX + maxY - minY) / 2
	if pad <= 0 {
		pad = 1
	}
	width := (maxX - minX) + 2*pad
	if h := (maxY - minY) + 2*pad; h > width {
		width = h
	}
	return quadtree.Box{SrcX: minX - pad, SrcY: minY - pad, Width: width}
}

func parseCriterion(flagValue string) (meshparam.Strategy, error) {
	switch flagValue {
	case "edge":
		return meshparam.NewStrategy(meshparam.WithCriterion(meshparam.CriterionEdge), meshparam.WithAccelerated(false)), nil
	case "Edge":
		return meshparam.NewStrategy(meshparam.WithCriterion(meshparam.CriterionEdge), meshparam.WithAccelerated(true)), nil
	case "angle":
		return meshparam.NewStrategy(meshparam.WithCriterion(meshparam.CriterionAngle), meshparam.WithAccelerated(false)), nil
	case "Angle":
		return meshparam.NewStrategy(meshparam.WithCriterion(meshparam.CriterionAngle), meshparam.WithAccelerated(true)), nil
	case "ConstDel":
		return meshparam.NewStrategy(
			meshparam.WithCriterion(meshparam.CriterionEdge),
			meshparam.WithAccelerated(true),
			meshparam.WithConstDel(true),
		), nil
	default:
		return meshparam.Strategy{}, fmt.Errorf("unknown criterion %q: want one of edge, angle, Edge, Angle, ConstDel", flagValue)
	}
}
