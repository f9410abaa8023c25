package presenter

import (
	"image"
	"testing"

	"github.com/soocke/box-annotator/domain/annotation"
)

type mockSession struct {
	downs, moves, ups []annotation.Point
	pagePress         int
	pageClicks        []annotation.Control
	labels            []annotation.OptionID
	commits           map[annotation.OptionID]string
	listener          annotation.Listener
	boxes             []annotation.BoxState
	options           []annotation.Option
	checked           annotation.OptionID
	hovered           annotation.BoxID
}

func (m *mockSession) PointerDown(p annotation.Point) { m.downs = append(m.downs, p) }
func (m *mockSession) PointerMove(p annotation.Point) { m.moves = append(m.moves, p) }
func (m *mockSession) PointerUp(p annotation.Point)   { m.ups = append(m.ups, p) }
func (m *mockSession) PagePress()                     { m.pagePress++ }
func (m *mockSession) PageClick(c annotation.Control) { m.pageClicks = append(m.pageClicks, c) }
func (m *mockSession) SelectLabel(id annotation.OptionID) {
	m.labels = append(m.labels, id)
}
func (m *mockSession) CommitFreeText(id annotation.OptionID, text string) {
	if m.commits == nil {
		m.commits = map[annotation.OptionID]string{}
	}
	m.commits[id] = text
}
func (m *mockSession) Boxes() []annotation.BoxState { return m.boxes }
func (m *mockSession) Labels() []annotation.Option  { return m.options }
func (m *mockSession) Checked() (annotation.Option, bool) {
	for _, o := range m.options {
		if o.ID == m.checked {
			return o, true
		}
	}
	return annotation.Option{}, false
}
func (m *mockSession) Hovered() annotation.BoxID         { return m.hovered }
func (m *mockSession) AddListener(l annotation.Listener) { m.listener = l }

func (m *mockSession) emit(kind annotation.ChangeKind) {
	m.listener(annotation.Change{Kind: kind})
}

var _ AnnotationSession = (*mockSession)(nil)

type mockRenderer struct {
	calls       int
	lastBoxes   []annotation.BoxState
	lastHovered annotation.BoxID
}

func (r *mockRenderer) Render(boxes []annotation.BoxState, hovered annotation.BoxID) image.Image {
	r.calls++
	r.lastBoxes, r.lastHovered = boxes, hovered
	return image.NewRGBA(image.Rect(0, 0, 4, 4))
}

type mockCanvas struct{ images int }

func (c *mockCanvas) SetCanvasImage(img image.Image) {
	if img != nil {
		c.images++
	}
}

type mockLabelView struct {
	calls   int
	opts    []annotation.Option
	checked annotation.OptionID
}

func (v *mockLabelView) SetLabelOptions(opts []annotation.Option, checked annotation.OptionID) {
	v.calls++
	v.opts, v.checked = opts, checked
}

func newMockedPresenter() (*AnnotationPresenter, *mockSession, *mockRenderer, *mockCanvas, *mockLabelView) {
	s := &mockSession{options: []annotation.Option{{ID: 1, Value: "Foo"}, {ID: 2, Value: "Bar"}}}
	r := &mockRenderer{}
	c := &mockCanvas{}
	l := &mockLabelView{}
	return NewAnnotationPresenter(s, r, c, l, nil), s, r, c, l
}

func TestAnnotationPresenter_RoutesInput(t *testing.T) {
	p, s, _, _, _ := newMockedPresenter()
	p.PointerDown(1, 2)
	p.PointerMove(3, 4)
	p.PointerUp(5, 6)
	p.PagePress()
	p.PageClick(true)
	p.PageClick(false)
	p.LabelChosen(2)
	p.FreeTextCommitted(3, "Baz")

	if len(s.downs) != 1 || s.downs[0] != annotation.Pt(1, 2) {
		t.Fatalf("down not routed: %v", s.downs)
	}
	if len(s.moves) != 1 || s.moves[0] != annotation.Pt(3, 4) {
		t.Fatalf("move not routed: %v", s.moves)
	}
	if len(s.ups) != 1 || s.ups[0] != annotation.Pt(5, 6) {
		t.Fatalf("up not routed: %v", s.ups)
	}
	if s.pagePress != 1 || len(s.pageClicks) != 2 || s.pageClicks[0] != annotation.ControlLabel || s.pageClicks[1] != annotation.ControlNone {
		t.Fatalf("page input not routed: press=%d clicks=%v", s.pagePress, s.pageClicks)
	}
	if len(s.labels) != 1 || s.labels[0] != 2 || s.commits[3] != "Baz" {
		t.Fatalf("label input not routed: labels=%v commits=%v", s.labels, s.commits)
	}
}

func TestAnnotationPresenter_RepaintsOnlyWhenDirty(t *testing.T) {
	p, s, r, c, l := newMockedPresenter()
	p.Flush()
	if r.calls != 0 || l.calls != 0 {
		t.Fatalf("clean flush repainted: render=%d labels=%d", r.calls, l.calls)
	}

	s.emit(annotation.ChangeGeometry)
	s.hovered = 9
	p.Flush()
	if r.calls != 1 || c.images != 1 || r.lastHovered != 9 || l.calls != 0 {
		t.Fatalf("geometry change: render=%d images=%d hovered=%d labels=%d", r.calls, c.images, r.lastHovered, l.calls)
	}

	s.checked = 2
	s.emit(annotation.ChangeLabelSet)
	p.Flush()
	if r.calls != 1 || l.calls != 1 || l.checked != 2 || len(l.opts) != 2 {
		t.Fatalf("labelset change: render=%d labels=%d checked=%d opts=%d", r.calls, l.calls, l.checked, len(l.opts))
	}

	s.emit(annotation.ChangeEnded)
	p.Flush()
	if r.calls != 1 || l.calls != 1 {
		t.Fatalf("ended must not repaint: render=%d labels=%d", r.calls, l.calls)
	}
	if p.Renders() != 1 {
		t.Fatalf("expected 1 render, got %d", p.Renders())
	}
}

func TestAnnotationPresenter_MotionIsCoalesced(t *testing.T) {
	p, s, r, _, _ := newMockedPresenter()
	for i := 0; i < 10; i++ {
		p.PointerMove(i, i)
		s.emit(annotation.ChangeGeometry)
	}
	if r.calls != 0 {
		t.Fatalf("motion must not repaint synchronously, got %d", r.calls)
	}
	p.Flush()
	if r.calls != 1 {
		t.Fatalf("expected one coalesced repaint, got %d", r.calls)
	}
}

func TestAnnotationPresenter_Refresh(t *testing.T) {
	p, _, r, _, l := newMockedPresenter()
	p.Refresh()
	if r.calls != 1 || l.calls != 1 {
		t.Fatalf("refresh: render=%d labels=%d", r.calls, l.calls)
	}
}

func TestAnnotationPresenter_WithSession(t *testing.T) {
	sess := annotation.NewSession(nil, annotation.Options{
		Bounds:     annotation.Size{Width: 200, Height: 200},
		Labels:     []string{"Foo", "Bar"},
		MinBoxSize: 2,
	})
	sess.Begin(nil)
	r := &mockRenderer{}
	c := &mockCanvas{}
	l := &mockLabelView{}
	p := NewAnnotationPresenter(sess, r, c, l, nil)

	p.LabelChosen(1)
	p.PointerDown(10, 10)
	p.PointerMove(60, 60)
	p.PointerUp(60, 60)

	if len(r.lastBoxes) != 1 || r.lastBoxes[0].Label != "Foo" || !r.lastBoxes[0].Selected {
		t.Fatalf("expected one selected Foo box, got %+v", r.lastBoxes)
	}
	if l.checked != 1 {
		t.Fatalf("label view should show Foo checked, got %d", l.checked)
	}
}

func TestAnnotationPresenter_NilSafe(t *testing.T) {
	var p *AnnotationPresenter
	p.PointerDown(0, 0)
	p.PointerMove(0, 0)
	p.PointerUp(0, 0)
	p.PagePress()
	p.PageClick(false)
	p.LabelChosen(1)
	p.FreeTextCommitted(1, "x")
	p.Flush()
	p.Refresh()
	if p.Renders() != 0 {
		t.Fatalf("nil presenter rendered")
	}
}
