package frontmodel

import (
	"math"

	"github.com/dirkfeuchter/advfront/geom"
)

// DetermineOrientation computes the discrete turning-angle sum around fl's
// cyclic FC list and sets fl.Orientation accordingly (§4.1):
//
//	Σ sign(cross(e_i, e_{i+1})) * arccos(clamp(cos(e_i, e_{i+1}), -1, 1))
//
// A positive sum is MathPositive, a negative sum MathNegative. Fails with
// ErrShortFrontList when fl has fewer than three FCs.
func (m *Mesh) DetermineOrientation(fl FLID) error {
	f := &m.fls[fl]
	if !f.alive {
		return ErrUnknownFL
	}
	if f.Count < 3 {
		return ErrShortFrontList
	}

	var sum float64
	err := m.ForEach(fl, func(cur FCID) bool {
		prev := m.fcs[cur].Pred
		next := m.fcs[cur].Succ

		px, py := m.Coords(prev)
		cx, cy := m.Coords(cur)
		nx, ny := m.Coords(next)

		e1 := geom.Point{X: cx - px, Y: cy - py}
		e2 := geom.Point{X: nx - cx, Y: ny - cy}

		l1, l2 := e1.Len(), e2.Len()
		if l1 < geom.Epsilon || l2 < geom.Epsilon {
			return true // skip degenerate (coincident) vertex, keep iterating
		}

		cross := e1.Cross(e2)
		cosTheta := e1.Dot(e2) / (l1 * l2)
		if cosTheta > 1 {
			cosTheta = 1
		} else if cosTheta < -1 {
			cosTheta = -1
		}

		sign := 1.0
		if cross < 0 {
			sign = -1.0
		} else if cross == 0 {
			sign = 0.0
		}
		sum += sign * math.Acos(cosTheta)
		return true
	})
	if err != nil {
		return err
	}

	if sum >= 0 {
		f.Orientation = MathPositive
	} else {
		f.Orientation = MathNegative
	}
	return nil
}
