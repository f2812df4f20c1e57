package geom

import "math"

// Calibrated epsilons, one per predicate rather than one ambient constant
// reused everywhere (§9 design note). Each is named at its point of use.
const (
	// Epsilon is the orientation-sign threshold: a cross product with
	// |cross| <= Epsilon is treated as collinear rather than strictly
	// positive/negative (was SMALL_C in the original, fixed at 1e-12 here
	// since orientation is the most numerically sensitive predicate).
	Epsilon = 1e-12

	// ParallelEpsilon is the determinant threshold below which two
	// segments are treated as parallel (non-intersecting) rather than
	// solved for a (possibly huge, ill-conditioned) intersection point.
	ParallelEpsilon = 1e-10

	// CoincidenceEpsilon is the squared-distance threshold below which two
	// points are treated as the same location.
	CoincidenceEpsilon = 1e-9

	// IntersectLambda1Slack is the upper bound accepted for λ1 (the
	// parameter along the triangle-height axis) in SegmentIntersectAccept.
	// The original implementation used 1.15 with no recorded derivation
	// (§9 open question); kept verbatim and flagged here for calibration.
	// TODO(calibration): derive or replace the 1.15 slack once a
	// documented justification is available.
	IntersectLambda1Slack = 1.15
)

// Point is a 2D coordinate. It intentionally carries no identity: callers
// (frontmodel, quadtree, advancing) resolve Point values from their own
// node/FC storage.
type Point struct {
	X, Y float64
}

// Sub returns p - q.
func (p Point) Sub(q Point) Point { return Point{p.X - q.X, p.Y - q.Y} }

// Add returns p + q.
func (p Point) Add(q Point) Point { return Point{p.X + q.X, p.Y + q.Y} }

// Scale returns p scaled by s.
func (p Point) Scale(s float64) Point { return Point{p.X * s, p.Y * s} }

// Dot returns the dot product of p and q.
func (p Point) Dot(q Point) float64 { return p.X*q.X + p.Y*q.Y }

// Cross returns the 2D scalar cross product p.X*q.Y - p.Y*q.X.
func (p Point) Cross(q Point) float64 { return p.X*q.Y - p.Y*q.X }

// Len returns the Euclidean length of p treated as a vector.
func (p Point) Len() float64 { return math.Hypot(p.X, p.Y) }

// DistSq returns the squared distance between p and q.
func DistSq(p, q Point) float64 {
	dx, dy := p.X-q.X, p.Y-q.Y
	return dx*dx + dy*dy
}

// Orientation returns +1 if (a,b,c) turns counter-clockwise (mathematically
// positive), -1 if clockwise, 0 if collinear within Epsilon (§4.4).
func Orientation(a, b, c Point) int {
	cross := b.Sub(a).Cross(c.Sub(a))
	switch {
	case cross > Epsilon:
		return 1
	case cross < -Epsilon:
		return -1
	default:
		return 0
	}
}

// PointInCircle reports whether p lies within radius of a circle centered
// at center with squared radius r2, avoiding a sqrt (§4.4).
func PointInCircle(p, center Point, r2 float64) bool {
	return DistSq(p, center) <= r2
}

// PointInTriangle reports whether p lies strictly inside the triangle
// (v0,v1,v2) after inflating each edge outward by epsi along its outward
// normal (§4.2, §4.4). The inflated triangle, not the nominal one, is the
// actual acceptance region — this is what lets the advancing front accept
// near-boundary candidates that floating point noise would otherwise
// reject.
//
// epsi <= 0 degenerates to the exact (non-inflated) triangle test.
func PointInTriangle(p, v0, v1, v2 Point, epsi float64) bool {
	verts := [3]Point{v0, v1, v2}

	// Orientation sign of the nominal triangle; used to pick which side is
	// "outward" for each edge without assuming a fixed winding order.
	sign := Orientation(v0, v1, v2)
	if sign == 0 {
		return false // degenerate triangle, no interior
	}

	for i := 0; i < 3; i++ {
		a := verts[i]
		b := verts[(i+1)%3]
		d := b.Sub(a) // edge direction a -> b

		var shifted Point
		if epsi <= 0 {
			shifted = a
		} else {
			dx, dy := d.X, d.Y
			length := d.Len()
			if length < Epsilon {
				return false // degenerate edge
			}
			var outward Point
			switch {
			case math.Abs(dx) < Epsilon:
				// Near-vertical edge: outward normal is purely horizontal,
				// handled directly to sidestep dividing by a ~0 run.
				side := 1.0
				if (sign > 0) != (dy > 0) {
					side = -1.0
				}
				outward = Point{X: side, Y: 0}
			case math.Abs(dy) < Epsilon:
				// Near-horizontal edge: outward normal is purely vertical.
				side := -1.0
				if (sign > 0) != (dx > 0) {
					side = 1.0
				}
				outward = Point{X: 0, Y: side}
			default:
				// General edge: rotate the edge direction +/-90 degrees.
				// For a CCW (sign>0) polygon the interior is to the left of
				// each directed edge, so outward is the right-hand normal.
				if sign > 0 {
					outward = Point{X: dy, Y: -dx}
				} else {
					outward = Point{X: -dy, Y: dx}
				}
			}
			unit := outward.Scale(1.0 / outward.Len())
			shifted = a.Add(unit.Scale(epsi))
		}

		cross := d.Cross(p.Sub(shifted))
		if sign > 0 && cross < -Epsilon {
			return false
		}
		if sign < 0 && cross > Epsilon {
			return false
		}
	}
	return true
}

// SegmentIntersect solves the 2x2 parameter system for the intersection of
// segment (p1,p2) and segment (p3,p4): p1 + lambda1*(p2-p1) == p3 +
// lambda2*(p4-p3). ok is false when the segments are parallel
// (|det| < ParallelEpsilon); lambda1/lambda2 are meaningless in that case.
func SegmentIntersect(p1, p2, p3, p4 Point) (lambda1, lambda2 float64, ok bool) {
	d1 := p2.Sub(p1)
	d2 := p4.Sub(p3)

	det := d2.X*d1.Y - d1.X*d2.Y
	if math.Abs(det) < ParallelEpsilon {
		return 0, 0, false
	}

	rhsX := p3.X - p1.X
	rhsY := p3.Y - p1.Y

	lambda1 = (-rhsX*d2.Y + d2.X*rhsY) / det
	lambda2 = (d1.X*rhsY - d1.Y*rhsX) / det
	return lambda1, lambda2, true
}

// SegmentIntersectAccept reports whether a lambda pair returned by
// SegmentIntersect falls within the advancing-front heuristic's accepted
// range: 0 <= lambda2 <= 1 on the candidate edge, and
// 0 <= lambda1 <= IntersectLambda1Slack on the triangle-height axis (§4.4).
func SegmentIntersectAccept(lambda1, lambda2 float64) bool {
	return lambda2 >= 0 && lambda2 <= 1 && lambda1 >= 0 && lambda1 <= IntersectLambda1Slack
}

// IsLeftOfFC decides whether p lies to the left of the front at fc, using
// the two edges incident to fc (incoming pred->fc, outgoing fc->succ) as
// independent decision vectors (§4.4). When both agree, that side is
// returned. When they disagree (fc is a sharp or reflex corner), the edge
// whose direction is closer to perpendicular to the fc->p direction is
// more numerically reliable and wins the tie.
func IsLeftOfFC(pred, fc, succ, p Point) bool {
	incoming := fc.Sub(pred)
	outgoing := succ.Sub(fc)
	toP := p.Sub(fc)

	sideIn := incoming.Cross(toP) > 0
	sideOut := outgoing.Cross(toP) > 0
	if sideIn == sideOut {
		return sideIn
	}

	cosAngle := func(v Point) float64 {
		vl, tl := v.Len(), toP.Len()
		if vl < Epsilon || tl < Epsilon {
			return 1 // degenerate: treat as "not perpendicular"
		}
		return math.Abs(v.Dot(toP) / (vl * tl))
	}

	if cosAngle(incoming) <= cosAngle(outgoing) {
		return sideIn
	}
	return sideOut
}

// Circumcircle computes the center and squared radius of the circle
// through a, b, c by intersecting two perpendicular bisectors (§4.4). ok is
// false when the three points are collinear (no finite circumcircle).
func Circumcircle(a, b, c Point) (center Point, r2 float64, ok bool) {
	d := 2 * (a.X*(b.Y-c.Y) + b.X*(c.Y-a.Y) + c.X*(a.Y-b.Y))
	if math.Abs(d) < Epsilon {
		return Point{}, 0, false
	}

	aLen2 := a.X*a.X + a.Y*a.Y
	bLen2 := b.X*b.X + b.Y*b.Y
	cLen2 := c.X*c.X + c.Y*c.Y

	ux := (aLen2*(b.Y-c.Y) + bLen2*(c.Y-a.Y) + cLen2*(a.Y-b.Y)) / d
	uy := (aLen2*(c.X-b.X) + bLen2*(a.X-c.X) + cLen2*(b.X-a.X)) / d

	center = Point{X: ux, Y: uy}
	r2 = DistSq(center, a)
	return center, r2, true
}
