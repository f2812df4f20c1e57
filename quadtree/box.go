package quadtree

import "github.com/dirkfeuchter/advfront/geom"

// Box is an axis-aligned square [SrcX, SrcX+Width] x [SrcY, SrcY+Width],
// matching the original's src+width square bounding-box convention (§3).
type Box struct {
	SrcX, SrcY, Width float64
}

// Contains reports whether p lies within box, inclusive of the boundary.
func (b Box) Contains(p geom.Point) bool {
	return p.X >= b.SrcX && p.X <= b.SrcX+b.Width &&
		p.Y >= b.SrcY && p.Y <= b.SrcY+b.Width
}

// Overlaps reports whether b and other share any area, inclusive of
// touching edges.
func (b Box) Overlaps(other Box) bool {
	if b.SrcX > other.SrcX+other.Width || other.SrcX > b.SrcX+b.Width {
		return false
	}
	if b.SrcY > other.SrcY+other.Width || other.SrcY > b.SrcY+b.Width {
		return false
	}
	return true
}

// Quadrant indices follow the convention of §3: 0=SW, 1=SE, 2=NE, 3=NW.
const (
	QuadSW = 0
	QuadSE = 1
	QuadNE = 2
	QuadNW = 3
)

// quadrantBox returns the sub-box of b for quadrant q.
func quadrantBox(b Box, q int) Box {
	half := b.Width / 2
	switch q {
	case QuadSW:
		return Box{SrcX: b.SrcX, SrcY: b.SrcY, Width: half}
	case QuadSE:
		return Box{SrcX: b.SrcX + half, SrcY: b.SrcY, Width: half}
	case QuadNE:
		return Box{SrcX: b.SrcX + half, SrcY: b.SrcY + half, Width: half}
	default:
		return Box{SrcX: b.SrcX, SrcY: b.SrcY + half, Width: half}
	}
}

// quadrantOf returns which quadrant of b contains p, and that quadrant's
// sub-box.
func quadrantOf(b Box, p geom.Point) (int, Box) {
	midX := b.SrcX + b.Width/2
	midY := b.SrcY + b.Width/2

	var q int
	switch {
	case p.X < midX && p.Y < midY:
		q = QuadSW
	case p.X >= midX && p.Y < midY:
		q = QuadSE
	case p.X >= midX && p.Y >= midY:
		q = QuadNE
	default:
		q = QuadNW
	}
	return q, quadrantBox(b, q)
}
