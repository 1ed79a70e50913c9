package line

import (
	"image"
)

// Dir is a set of compass connections out of a cell.
// Bit order matches the overmap road mask: N | S<<1 | E<<2 | W<<3
type Dir uint8

const (
	North Dir = 1 << iota
	South
	East
	West
)

// Has returns if all of d2 are set in d
func (d Dir) Has(d2 Dir) bool {
	return d&d2 == d2
}

// Marker is told which connections each cell along a traced line needs.
// Cells may be marked more than once; marks are cumulative.
// Y grows southwards.
type Marker interface {
	Mark(x int, y int, d Dir)
}

// Trace walks from a to b marking every cell the line passes through with
// the connections to its neighbours on the line, so that consecutive cells
// are always 4-connected.
//
// The line steps along its major axis from the lower end, keeping the minor
// coordinate as a float that starts in the middle of the first cell. When
// the minor coordinate crosses into a new row (or column) a corner cell is
// inserted at the new major position on the old minor position, so
// diagonal steps become an L-shape.
func Trace(m Marker, a, b image.Point) {
	if a == b {
		return
	}

	dx, dy := abs(a.X-b.X), abs(a.Y-b.Y)

	switch {

	// wider than high (or exactly diagonal)
	case dx >= dy:
		if a.X > b.X {
			a, b = b, a
		}

		fy := 0.5 + float64(a.Y)
		prev := a.Y
		step := float64(b.Y-a.Y) / float64(b.X-a.X)

		m.Mark(a.X, a.Y, East)
		for x := a.X + 1; x < b.X; x++ {
			fy += step
			y := int(fy)
			switch {
			case prev == y:
				m.Mark(x, y, East|West)
			case prev < y:
				m.Mark(x, y-1, West|South)
				m.Mark(x, y, East|North)
			default:
				m.Mark(x, y+1, West|North)
				m.Mark(x, y, East|South)
			}
			prev = y
		}

		switch {
		case prev == b.Y:
			m.Mark(b.X, b.Y, West)
		case prev < b.Y:
			m.Mark(b.X, b.Y-1, West|South)
			m.Mark(b.X, b.Y, North)
		default:
			m.Mark(b.X, b.Y+1, West|North)
			m.Mark(b.X, b.Y, South)
		}

	// higher than wide
	default:
		if a.Y > b.Y {
			a, b = b, a
		}

		fx := 0.5 + float64(a.X)
		prev := a.X
		step := float64(b.X-a.X) / float64(b.Y-a.Y)

		m.Mark(a.X, a.Y, South)
		for y := a.Y + 1; y < b.Y; y++ {
			fx += step
			x := int(fx)
			switch {
			case prev == x:
				m.Mark(x, y, North|South)
			case prev < x:
				m.Mark(x-1, y, North|East)
				m.Mark(x, y, South|West)
			default:
				m.Mark(x+1, y, North|West)
				m.Mark(x, y, South|East)
			}
			prev = x
		}

		switch {
		case prev == b.X:
			m.Mark(b.X, b.Y, North)
		case prev < b.X:
			m.Mark(b.X-1, b.Y, North|East)
			m.Mark(b.X, b.Y, West)
		default:
			m.Mark(b.X+1, b.Y, North|West)
			m.Mark(b.X, b.Y, East)
		}
	}
}

func abs(a int) int {
	if a < 0 {
		return -a
	}
	return a
}
