package annotation

// Point is a position in image pixels relative to the image's top-left corner.
type Point struct{ X, Y int }

// Pt is shorthand for Point{x, y}.
func Pt(x, y int) Point { return Point{X: x, Y: y} }

// Size is the extent of the annotation surface.
type Size struct{ Width, Height int }

// Region is a labeled rectangle used both to seed fixed boxes and to report
// finalized ones. Right/Bottom may be smaller than Left/Top in seed input.
type Region struct {
	Left   int    `json:"left"`
	Top    int    `json:"top"`
	Right  int    `json:"right"`
	Bottom int    `json:"bottom"`
	Label  string `json:"label,omitempty"`
}

// Rect is a normalized rectangle: Width and Height are never negative.
type Rect struct {
	Left, Top     int
	Width, Height int
}

func (r Rect) Right() int  { return r.Left + r.Width }
func (r Rect) Bottom() int { return r.Top + r.Height }
func (r Rect) Area() int   { return r.Width * r.Height }

// Contains reports whether p lies inside r, edges included.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.Left && p.X <= r.Right() && p.Y >= r.Top && p.Y <= r.Bottom()
}

// Inflate grows r by n pixels on every side.
func (r Rect) Inflate(n int) Rect {
	return Rect{Left: r.Left - n, Top: r.Top - n, Width: r.Width + 2*n, Height: r.Height + 2*n}
}

// Corner returns the position of corner c.
func (r Rect) Corner(c Corner) Point {
	switch c {
	case CornerTopRight:
		return Point{r.Right(), r.Top}
	case CornerBottomLeft:
		return Point{r.Left, r.Bottom()}
	case CornerBottomRight:
		return Point{r.Right(), r.Bottom()}
	default:
		return Point{r.Left, r.Top}
	}
}

// rectFrom normalizes two diagonal corners.
func rectFrom(a, b Point) Rect {
	return Rect{
		Left:   min(a.X, b.X),
		Top:    min(a.Y, b.Y),
		Width:  abs(b.X - a.X),
		Height: abs(b.Y - a.Y),
	}
}

// Corner identifies one of the four resize handles.
type Corner int

const (
	CornerTopLeft Corner = iota
	CornerTopRight
	CornerBottomLeft
	CornerBottomRight
)

// Corners lists all corners in handle paint order.
var Corners = [...]Corner{CornerTopLeft, CornerTopRight, CornerBottomLeft, CornerBottomRight}

// Opposite returns the diagonally opposite corner.
func (c Corner) Opposite() Corner {
	switch c {
	case CornerTopLeft:
		return CornerBottomRight
	case CornerTopRight:
		return CornerBottomLeft
	case CornerBottomLeft:
		return CornerTopRight
	default:
		return CornerTopLeft
	}
}

func (c Corner) String() string {
	switch c {
	case CornerTopLeft:
		return "top-left"
	case CornerTopRight:
		return "top-right"
	case CornerBottomLeft:
		return "bottom-left"
	case CornerBottomRight:
		return "bottom-right"
	default:
		return "unknown"
	}
}

// Gesture enumerates the mutually exclusive interaction modes of a Box.
type Gesture int

const (
	GestureNone Gesture = iota
	GestureDraw
	GestureResize
	GestureDrag
)

func (g Gesture) String() string {
	switch g {
	case GestureNone:
		return "idle"
	case GestureDraw:
		return "drawing"
	case GestureResize:
		return "resizing"
	case GestureDrag:
		return "dragging"
	default:
		return "unknown"
	}
}

// Part identifies which affordance of a box a point hits.
type Part int

const (
	PartNone Part = iota
	PartBody
	PartLabel
	PartRemove
	PartHandle
)

func (p Part) String() string {
	switch p {
	case PartBody:
		return "body"
	case PartLabel:
		return "label"
	case PartRemove:
		return "remove"
	case PartHandle:
		return "handle"
	default:
		return "none"
	}
}

// Target is the result of a hit test.
type Target struct {
	Box    BoxID
	Part   Part
	Corner Corner
}

// Control classifies page-level click targets outside the image surface.
type Control int

const (
	ControlNone Control = iota
	ControlLabel        // label radio, its caption or the free-text entry
)

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
