package annotation

// DefaultLabel is shown on a box until a label is applied.
const DefaultLabel = "?"

// BoxID identifies a box inside a Session arena. Zero is never assigned.
type BoxID uint64

// IntentKind enumerates side effects a Box asks its owner to perform.
type IntentKind int

const (
	IntentNone IntentKind = iota
	IntentSelected
	IntentRemoved
	IntentGeometryChanged
)

func (k IntentKind) String() string {
	switch k {
	case IntentSelected:
		return "selected"
	case IntentRemoved:
		return "removed"
	case IntentGeometryChanged:
		return "geometry-changed"
	default:
		return "none"
	}
}

// Intent is returned by Box operations that affect the collection. The Box
// never reaches back into its owner; the Session interprets intents.
type Intent struct {
	Kind IntentKind
	Box  BoxID
}

// Box is one rectangular annotation. Its rendered rectangle is always derived
// from the anchor and free corners.
type Box struct {
	id         BoxID
	anchor     Point
	free       Point
	label      string
	selected   bool
	modifiable bool
	finished   bool
	removed    bool
	z          int

	gesture    Gesture
	dragOffset Point
}

// NewBox returns a modifiable box with both corners at (x, y), ready to be drawn.
func NewBox(id BoxID, x, y int) *Box {
	return &Box{
		id:         id,
		anchor:     Point{x, y},
		free:       Point{x, y},
		label:      DefaultLabel,
		modifiable: true,
		gesture:    GestureDraw,
	}
}

func (b *Box) ID() BoxID { return b.id }

// SetAnchor sets the fixed corner of a draw or resize gesture.
func (b *Box) SetAnchor(x, y int) { b.anchor = Point{x, y} }

// SetFree moves the corner that follows the pointer.
func (b *Box) SetFree(x, y int) Intent {
	b.free = Point{x, y}
	return Intent{Kind: IntentGeometryChanged, Box: b.id}
}

func (b *Box) Anchor() Point { return b.anchor }
func (b *Box) Free() Point   { return b.free }

// Rect returns the normalized rendered rectangle.
func (b *Box) Rect() Rect { return rectFrom(b.anchor, b.free) }

// Area is used for stacking only.
func (b *Box) Area() int { return b.Rect().Area() }

// Region reduces the box to its reportable form.
func (b *Box) Region() Region {
	r := b.Rect()
	return Region{Left: r.Left, Top: r.Top, Right: r.Right(), Bottom: r.Bottom(), Label: b.label}
}

// ClampDelta limits (dx, dy) so that the box stays within bounds on each axis.
// The upper bound is applied first, so a box larger than bounds pins to 0.
func (b *Box) ClampDelta(dx, dy int, bounds Size) (int, int) {
	r := b.Rect()
	dx = min(dx, bounds.Width-r.Left-r.Width)
	dx = max(dx, -r.Left)
	dy = min(dy, bounds.Height-r.Top-r.Height)
	dy = max(dy, -r.Top)
	return dx, dy
}

// Translate shifts both corners by the clamped delta and returns the delta applied.
func (b *Box) Translate(dx, dy int, bounds Size) (Point, Intent) {
	dx, dy = b.ClampDelta(dx, dy, bounds)
	if dx == 0 && dy == 0 {
		return Point{}, Intent{}
	}
	b.anchor.X += dx
	b.anchor.Y += dy
	b.free.X += dx
	b.free.Y += dy
	return Point{dx, dy}, Intent{Kind: IntentGeometryChanged, Box: b.id}
}

// FinishDrawing ends the initial draw gesture. It reports true only the first
// time so the owner appends the box exactly once.
func (b *Box) FinishDrawing() bool {
	if b.finished {
		return false
	}
	b.finished = true
	if b.gesture == GestureDraw {
		b.gesture = GestureNone
	}
	return true
}

func (b *Box) Finished() bool { return b.finished }

// SetLabel applies text unless it is empty. It reports whether the label changed.
func (b *Box) SetLabel(text string) bool {
	if text == "" || text == b.label {
		return false
	}
	b.label = text
	return true
}

func (b *Box) Label() string { return b.label }

// Select marks the box selected and asks the owner to deselect siblings and
// sync the label picker.
func (b *Box) Select() Intent {
	b.selected = true
	return Intent{Kind: IntentSelected, Box: b.id}
}

// Deselect clears local selection state only. It produces no intent.
func (b *Box) Deselect() { b.selected = false }

func (b *Box) Selected() bool { return b.selected }

// Remove marks the box removed. Non-modifiable boxes refuse.
func (b *Box) Remove() (Intent, bool) {
	if !b.modifiable || b.removed {
		return Intent{}, false
	}
	b.removed = true
	b.selected = false
	b.gesture = GestureNone
	return Intent{Kind: IntentRemoved, Box: b.id}, true
}

func (b *Box) Removed() bool { return b.removed }

// SetModifiable gates drag, resize and remove. Turning it off aborts a
// gesture in progress.
func (b *Box) SetModifiable(v bool) {
	b.modifiable = v
	if !v && b.gesture != GestureDraw {
		b.gesture = GestureNone
	}
}

func (b *Box) Modifiable() bool { return b.modifiable }

func (b *Box) Z() int { return b.z }

func (b *Box) Gesture() Gesture { return b.gesture }

// BeginResize starts a resize from handle c: the opposite corner becomes the anchor.
func (b *Box) BeginResize(c Corner) bool {
	if !b.modifiable || !b.finished || b.gesture != GestureNone {
		return false
	}
	r := b.Rect()
	b.anchor = r.Corner(c.Opposite())
	b.free = r.Corner(c)
	b.gesture = GestureResize
	return true
}

// BeginDrag starts a whole-box move. The pointer offset from the top-left
// corner is kept for the duration of the drag.
func (b *Box) BeginDrag(p Point) bool {
	if !b.modifiable || !b.finished || b.gesture != GestureNone {
		return false
	}
	r := b.Rect()
	b.dragOffset = Point{p.X - r.Left, p.Y - r.Top}
	b.gesture = GestureDrag
	return true
}

// Move feeds a pointer position to the active gesture. Positions received
// while idle are dropped.
func (b *Box) Move(p Point, bounds Size) Intent {
	switch b.gesture {
	case GestureDraw, GestureResize:
		return b.SetFree(clamp(p.X, 0, bounds.Width), clamp(p.Y, 0, bounds.Height))
	case GestureDrag:
		r := b.Rect()
		dx := p.X - b.dragOffset.X - r.Left
		dy := p.Y - b.dragOffset.Y - r.Top
		_, in := b.Translate(dx, dy, bounds)
		return in
	default:
		return Intent{}
	}
}

// EndGesture leaves resize or drag mode. Geometry is already live, so there
// is nothing to commit.
func (b *Box) EndGesture() Gesture {
	g := b.gesture
	if g == GestureResize || g == GestureDrag {
		b.gesture = GestureNone
		b.dragOffset = Point{}
	}
	return g
}
