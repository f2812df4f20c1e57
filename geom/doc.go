// Package geom implements the robust 2D geometric predicates the
// advancing-front loop depends on: orientation, epsilon-inflated
// point-in-triangle, point-in-circle, segment-segment intersection,
// left-of-edge classification, and circumcircle construction (§4.4).
//
// Each predicate publishes its own calibrated epsilon rather than sharing
// one ambient constant across unrelated comparisons (§9 design note on
// SMALL_C/SMALL_D/SMALLCOORD/SMALLDOUBLE): Epsilon (orientation sign),
// ParallelEpsilon (segment-intersection degeneracy), and
// CoincidenceEpsilon (point/point identity) are each named and documented
// at their point of use.
package geom
