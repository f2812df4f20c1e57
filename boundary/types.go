package boundary

import "errors"

// Sentinel errors for boundary assembly.
var (
	// ErrNoContinuation indicates a chain's current endpoint has no unused
	// side starting there, so it cannot be closed (§4.7).
	ErrNoContinuation = errors.New("boundary: side chain has no continuation")

	// ErrEmptySubdomain indicates a subdomain was given zero sides.
	ErrEmptySubdomain = errors.New("boundary: subdomain has no sides")

	// ErrPointIndexRange indicates a side referenced a point index outside
	// [0, len(Points)).
	ErrPointIndexRange = errors.New("boundary: side references an out-of-range point index")
)

// Side is one oriented boundary edge, indexing Input.Points: the edge runs
// from Points[I] to Points[J].
type Side struct {
	I, J int
}

// Subdomain is one subdomain's oriented side list.
type Subdomain struct {
	ID    int
	Sides []Side
}

// Input is the full boundary description: a flat point list shared across
// all subdomains, plus each subdomain's oriented sides (§4.7).
type Input struct {
	Points     []Point
	Subdomains []Subdomain
}

// Point is a boundary vertex coordinate.
type Point struct {
	X, Y float64
}
