package core

// Direction is one of the eight compass moves on a character grid.
// The first four values form the orthogonal subset used by walkers.
type Direction uint8

const (
	DirUp Direction = iota
	DirRight
	DirDown
	DirLeft
	DirUpLeft
	DirUpRight
	DirDownLeft
	DirDownRight
)

// AllDirections lists every direction in declaration order.
var AllDirections = [...]Direction{
	DirUp, DirRight, DirDown, DirLeft,
	DirUpLeft, DirUpRight, DirDownLeft, DirDownRight,
}

// Orthogonal lists the four walker headings in clockwise order starting at Up.
var Orthogonal = [...]Direction{DirUp, DirRight, DirDown, DirLeft}

// String returns the string representation of a direction.
func (d Direction) String() string {
	switch d {
	case DirUp:
		return "Up"
	case DirRight:
		return "Right"
	case DirDown:
		return "Down"
	case DirLeft:
		return "Left"
	case DirUpLeft:
		return "UpLeft"
	case DirUpRight:
		return "UpRight"
	case DirDownLeft:
		return "DownLeft"
	case DirDownRight:
		return "DownRight"
	default:
		return "Unknown"
	}
}

// Vector returns the (dx, dy) unit offset for one step in this direction.
// Up decreases Y, Down increases Y (screen coordinates).
func (d Direction) Vector() (dx, dy int) {
	switch d {
	case DirUp:
		return 0, -1
	case DirRight:
		return 1, 0
	case DirDown:
		return 0, 1
	case DirLeft:
		return -1, 0
	case DirUpLeft:
		return -1, -1
	case DirUpRight:
		return 1, -1
	case DirDownLeft:
		return -1, 1
	case DirDownRight:
		return 1, 1
	default:
		return 0, 0
	}
}

// Delta returns the signed linear offset of one step in a flattened grid
// whose rows are stride bytes apart.
func (d Direction) Delta(stride int) int {
	dx, dy := d.Vector()
	return dx + dy*stride
}

// Clockwise returns the direction rotated a quarter turn to the right.
func (d Direction) Clockwise() Direction {
	switch d {
	case DirUp:
		return DirRight
	case DirRight:
		return DirDown
	case DirDown:
		return DirLeft
	case DirLeft:
		return DirUp
	case DirUpLeft:
		return DirUpRight
	case DirUpRight:
		return DirDownRight
	case DirDownRight:
		return DirDownLeft
	case DirDownLeft:
		return DirUpLeft
	default:
		return d
	}
}

// Opposite returns the opposite direction.
func (d Direction) Opposite() Direction {
	return d.Clockwise().Clockwise()
}

// HeadingFor maps a guard glyph to its facing direction.
func HeadingFor(b byte) (Direction, bool) {
	switch b {
	case '^':
		return DirUp, true
	case '>':
		return DirRight, true
	case 'v':
		return DirDown, true
	case '<':
		return DirLeft, true
	}
	return 0, false
}

// Glyph returns the guard glyph for an orthogonal direction, or '?' otherwise.
func (d Direction) Glyph() rune {
	switch d {
	case DirUp:
		return '^'
	case DirRight:
		return '>'
	case DirDown:
		return 'v'
	case DirLeft:
		return '<'
	default:
		return '?'
	}
}
