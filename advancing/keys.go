package advancing

import (
	"math"

	"github.com/dirkfeuchter/advfront/frontmodel"
	"github.com/dirkfeuchter/advfront/geom"
	"github.com/dirkfeuchter/advfront/meshparam"
)

// key computes fc's ranking key under criterion: squared length of the edge
// fc->succ(fc) for CriterionEdge, or the encoded interior angle at fc for
// CriterionAngle (§4.3).
func (l *loop) key(fc frontmodel.FCID, criterion meshparam.Criterion) float64 {
	switch criterion {
	case meshparam.CriterionAngle:
		return l.angleKey(fc)
	default:
		return l.edgeKey(fc)
	}
}

func (l *loop) edgeKey(fc frontmodel.FCID) float64 {
	ax, ay := l.mesh.Coords(fc)
	bx, by := l.mesh.Coords(l.mesh.Succ(fc))
	return geom.DistSq(geom.Point{X: ax, Y: ay}, geom.Point{X: bx, Y: by})
}

// angleKey encodes the interior angle at fc (measured sweeping from the
// succ-direction vector to the pred-direction vector through the polygon's
// interior, respecting fc's FL orientation) as:
//
//	angle <= pi: key = -cos(angle)
//	angle >  pi: key = 2 + cos(angle)
//
// (§4.3's "encoded interior angle", GLOSSARY); -cos(angle) is the cosine of
// the turn between the incoming and outgoing edge directions. The key rises
// monotonically from -1 (zero interior angle) through 1 (straight) to 3
// (full turn), so the sharpest corner is the AVL minimum and reflex corners
// rank after every convex one.
func (l *loop) angleKey(fc frontmodel.FCID) float64 {
	c := l.mesh.FC(fc)
	fx, fy := l.mesh.Coords(fc)
	px, py := l.mesh.Coords(c.Pred)
	sx, sy := l.mesh.Coords(c.Succ)

	v1 := geom.Point{X: px - fx, Y: py - fy} // fc -> pred
	v2 := geom.Point{X: sx - fx, Y: sy - fy} // fc -> succ

	ang1 := math.Atan2(v1.Y, v1.X)
	ang2 := math.Atan2(v2.Y, v2.X)

	fl := l.mesh.FL(c.FL)
	var interior float64
	if fl.Orientation == frontmodel.MathNegative {
		interior = ang2 - ang1
	} else {
		interior = ang1 - ang2
	}
	interior = math.Mod(interior, 2*math.Pi)
	if interior < 0 {
		interior += 2 * math.Pi
	}

	if interior <= math.Pi {
		return -math.Cos(interior)
	}
	return 2 + math.Cos(interior)
}
