package annotation

import "unicode/utf8"

// Layout holds the pixel metrics of box affordances. The renderer and the hit
// tester share it so what is drawn is what is clickable.
type Layout struct {
	HandleSize   int // square side of a corner handle, centred on the corner
	RemoveSize   int
	RemoveOffset Point // top-left of the remove control relative to the box's top-left
	LabelInset   int   // label tag offset from the box's top-left
	LabelPadding int
	LabelBorder  int
	CharWidth    int // monospace advance
	LineHeight   int
	HoverSlop    int // hover area extends this far beyond the box outline
}

// DefaultLayout mirrors a 10px monospace label font.
func DefaultLayout() Layout {
	return Layout{
		HandleSize:   16,
		RemoveSize:   14,
		RemoveOffset: Point{X: -16, Y: 5},
		LabelInset:   2,
		LabelPadding: 5,
		LabelBorder:  1,
		CharWidth:    6,
		LineHeight:   12,
		HoverSlop:    12,
	}
}

// LabelRect is the label tag of a box with rectangle r.
func (l Layout) LabelRect(r Rect, label string) Rect {
	n := utf8.RuneCountInString(label)
	if n == 0 {
		n = 1
	}
	frame := 2 * (l.LabelPadding + l.LabelBorder)
	return Rect{
		Left:   r.Left + l.LabelInset,
		Top:    r.Top + l.LabelInset,
		Width:  n*l.CharWidth + frame,
		Height: l.LineHeight + frame,
	}
}

// RemoveRect is the remove control of a box with rectangle r.
func (l Layout) RemoveRect(r Rect) Rect {
	return Rect{
		Left:   r.Left + l.RemoveOffset.X,
		Top:    r.Top + l.RemoveOffset.Y,
		Width:  l.RemoveSize,
		Height: l.RemoveSize,
	}
}

// HandleRect is the resize handle at corner c of a box with rectangle r.
func (l Layout) HandleRect(r Rect, c Corner) Rect {
	p := r.Corner(c)
	half := l.HandleSize / 2
	return Rect{Left: p.X - half, Top: p.Y - half, Width: l.HandleSize, Height: l.HandleSize}
}

// HoverRect is the area in which the pointer counts as over the box.
func (l Layout) HoverRect(r Rect) Rect { return r.Inflate(l.HoverSlop) }

// hit tests a single box. Affordances are checked before the label, the
// label before the body. Remove and handles only exist on modifiable boxes.
func (l Layout) hit(b *Box, p Point) (Part, Corner) {
	r := b.Rect()
	if b.modifiable {
		if l.RemoveRect(r).Contains(p) {
			return PartRemove, 0
		}
		for _, c := range Corners {
			if l.HandleRect(r, c).Contains(p) {
				return PartHandle, c
			}
		}
	}
	if l.LabelRect(r, b.label).Contains(p) {
		return PartLabel, 0
	}
	if r.Contains(p) {
		return PartBody, 0
	}
	return PartNone, 0
}
