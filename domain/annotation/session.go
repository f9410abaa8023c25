package annotation

import (
	"log/slog"
)

// ChangeKind enumerates notifications emitted by a Session.
type ChangeKind int

const (
	ChangeAdded ChangeKind = iota + 1
	ChangeRemoved
	ChangeGeometry
	ChangeSelection
	ChangeLabel
	ChangeLabelSet
	ChangeHover
	ChangeEnded
)

func (k ChangeKind) String() string {
	switch k {
	case ChangeAdded:
		return "added"
	case ChangeRemoved:
		return "removed"
	case ChangeGeometry:
		return "geometry"
	case ChangeSelection:
		return "selection"
	case ChangeLabel:
		return "label"
	case ChangeLabelSet:
		return "labelset"
	case ChangeHover:
		return "hover"
	case ChangeEnded:
		return "ended"
	default:
		return "unknown"
	}
}

// Change describes one state change. Box is zero for collection-wide changes.
type Change struct {
	Kind  ChangeKind
	Box   BoxID
	Label string
}

// Listener is called synchronously after each change.
type Listener func(Change)

// BoxState is a read-only snapshot of a box for rendering and tests.
type BoxState struct {
	ID         BoxID
	Rect       Rect
	Label      string
	Selected   bool
	Modifiable bool
	Finished   bool
	Z          int
	Gesture    Gesture
}

// Stats summarizes the collection.
type Stats struct {
	Boxes       int
	Fixed       int
	Selected    BoxID
	ActiveLabel string
}

// Options configures a Session.
type Options struct {
	Bounds     Size
	Labels     []string
	Layout     Layout
	MinBoxSize int
}

// Session owns the box arena, routes pointer input, keeps the active label in
// sync with the selected box and recomputes stacking after geometry changes.
// It is not safe for concurrent use; all calls come from the UI thread.
type Session struct {
	logger *slog.Logger
	bounds Size
	layout Layout
	minBox int

	boxes  map[BoxID]*Box
	order  []BoxID // collection order
	paint  []*Box  // z ascending
	nextID BoxID

	labels      *LabelSet
	activeLabel string

	drawing       *Box  // not a collection member until finished
	active        BoxID // box owning a resize or drag gesture
	pressed       Target
	hover         BoxID
	deselectArmed bool

	listeners []Listener
	ended     bool
}

// NewSession constructs an empty session. Call Begin to seed it.
func NewSession(logger *slog.Logger, opts Options) *Session {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	layout := opts.Layout
	if layout == (Layout{}) {
		layout = DefaultLayout()
	}
	minBox := opts.MinBoxSize
	if minBox < 0 {
		minBox = 0
	}
	return &Session{
		logger: logger,
		bounds: opts.Bounds,
		layout: layout,
		minBox: minBox,
		boxes:  make(map[BoxID]*Box),
		labels: NewLabelSet(opts.Labels),
	}
}

// AddListener registers l for all subsequent changes.
func (s *Session) AddListener(l Listener) {
	if s == nil || l == nil || s.ended {
		return
	}
	s.listeners = append(s.listeners, l)
}

func (s *Session) emit(c Change) {
	for _, l := range s.listeners {
		l(c)
	}
}

// Begin synthesizes a fixed, pre-finalized box for each seed region.
// Malformed regions are accepted; geometry is normalized.
func (s *Session) Begin(seeds []Region) {
	if s == nil || s.ended {
		return
	}
	for _, r := range seeds {
		s.nextID++
		b := NewBox(s.nextID, r.Left, r.Top)
		b.SetFree(r.Right, r.Bottom)
		b.FinishDrawing()
		label := r.Label
		if label == "" {
			label = DefaultLabel
		}
		b.SetLabel(label)
		b.SetModifiable(false)
		s.append(b)
	}
	s.restack()
	s.logger.Info("annotation session started",
		slog.Int("seeds", len(seeds)),
		slog.Int("width", s.bounds.Width),
		slog.Int("height", s.bounds.Height))
}

func (s *Session) append(b *Box) {
	s.boxes[b.id] = b
	s.order = append(s.order, b.id)
	s.emit(Change{Kind: ChangeAdded, Box: b.id, Label: b.label})
}

func (s *Session) restack() {
	list := make([]*Box, 0, len(s.order))
	for _, id := range s.order {
		list = append(list, s.boxes[id])
	}
	s.paint = Restack(list)
}

// HitTest returns the top-most collection box part under p.
func (s *Session) HitTest(p Point) Target {
	for i := len(s.paint) - 1; i >= 0; i-- {
		b := s.paint[i]
		if part, c := s.layout.hit(b, p); part != PartNone {
			return Target{Box: b.id, Part: part, Corner: c}
		}
	}
	return Target{}
}

// PointerDown handles a press on the image surface. Presses on a handle start
// a resize, presses on a label start a drag, anything else starts a new box.
func (s *Session) PointerDown(p Point) {
	if s == nil || s.ended || s.drawing != nil || s.active != 0 {
		return
	}
	t := s.HitTest(p)
	s.pressed = t
	switch t.Part {
	case PartHandle:
		if b := s.boxes[t.Box]; b.BeginResize(t.Corner) {
			s.active = b.id
			s.logger.Debug("resize started", "box", b.id, "corner", t.Corner.String())
		}
		return
	case PartLabel:
		if b := s.boxes[t.Box]; b.BeginDrag(p) {
			s.active = b.id
			s.logger.Debug("drag started", "box", b.id)
		}
		return
	case PartRemove:
		return
	}
	s.deselectArmed = true
	s.nextID++
	s.drawing = NewBox(s.nextID, clamp(p.X, 0, s.bounds.Width), clamp(p.Y, 0, s.bounds.Height))
	s.emit(Change{Kind: ChangeGeometry, Box: s.drawing.id})
}

// PointerMove feeds the pointer to the box being drawn or to the active
// gesture. While idle it only tracks hover.
func (s *Session) PointerMove(p Point) {
	if s == nil || s.ended {
		return
	}
	if s.drawing != nil {
		if in := s.drawing.Move(p, s.bounds); in.Kind != IntentNone {
			s.emit(Change{Kind: ChangeGeometry, Box: s.drawing.id})
		}
		return
	}
	if s.active != 0 {
		if b, ok := s.boxes[s.active]; ok {
			s.apply(b.Move(p, s.bounds))
		}
		return
	}
	s.updateHover(p)
}

// PointerUp ends the gesture in progress and resolves clicks on box controls.
func (s *Session) PointerUp(p Point) {
	if s == nil || s.ended {
		return
	}
	pressed := s.pressed
	s.pressed = Target{}

	if b := s.drawing; b != nil {
		s.drawing = nil
		b.Move(p, s.bounds)
		r := b.Rect()
		if r.Width < s.minBox || r.Height < s.minBox {
			s.logger.Debug("draw discarded", "width", r.Width, "height", r.Height)
			s.emit(Change{Kind: ChangeGeometry, Box: b.id})
			s.documentClick(ControlNone)
			return
		}
		s.finishDraw(b)
		return
	}

	if s.active != 0 {
		b, ok := s.boxes[s.active]
		s.active = 0
		if ok && b.EndGesture() == GestureDrag {
			s.apply(b.Select())
		}
		s.updateHover(p)
		return
	}

	switch pressed.Part {
	case PartLabel:
		if t := s.HitTest(p); t.Box == pressed.Box && t.Part == PartLabel {
			s.Select(t.Box)
		}
	case PartRemove:
		if t := s.HitTest(p); t == pressed {
			s.Remove(t.Box)
			s.documentClick(ControlNone)
		}
	}
}

func (s *Session) finishDraw(b *Box) {
	if !b.FinishDrawing() {
		return
	}
	b.SetLabel(s.activeLabel)
	s.append(b)
	s.restack()
	s.apply(b.Select())
	s.deselectArmed = false
	s.logger.Debug("box added", "box", b.id, "label", b.label, "z", b.z)
}

// PagePress records a press outside the image surface.
func (s *Session) PagePress() {
	if s == nil || s.ended {
		return
	}
	s.deselectArmed = true
}

// PageClick handles a click outside the image surface. Clicks on label
// controls leave the selection alone.
func (s *Session) PageClick(c Control) {
	if s == nil || s.ended {
		return
	}
	s.documentClick(c)
}

func (s *Session) documentClick(c Control) {
	if c == ControlLabel || !s.deselectArmed {
		return
	}
	s.DeselectAll()
}

func (s *Session) apply(in Intent) {
	b, ok := s.boxes[in.Box]
	switch in.Kind {
	case IntentSelected:
		if !ok {
			return
		}
		for _, id := range s.order {
			if id != b.id {
				s.boxes[id].Deselect()
			}
		}
		s.labels.Check(b.label)
		s.emit(Change{Kind: ChangeSelection, Box: b.id, Label: b.label})
		s.emit(Change{Kind: ChangeLabelSet})
		s.logger.Debug("box selected", "box", b.id, "label", b.label)
	case IntentRemoved:
		delete(s.boxes, in.Box)
		for i, id := range s.order {
			if id == in.Box {
				s.order = append(s.order[:i], s.order[i+1:]...)
				break
			}
		}
		if s.hover == in.Box {
			s.hover = 0
		}
		if s.active == in.Box {
			s.active = 0
		}
		s.restack()
		s.emit(Change{Kind: ChangeRemoved, Box: in.Box})
		s.logger.Debug("box removed", "box", in.Box)
	case IntentGeometryChanged:
		s.restack()
		s.emit(Change{Kind: ChangeGeometry, Box: in.Box})
	}
}

// Select selects box id and deselects every other box.
func (s *Session) Select(id BoxID) bool {
	if s == nil || s.ended {
		return false
	}
	b, ok := s.boxes[id]
	if !ok {
		return false
	}
	s.apply(b.Select())
	return true
}

// Remove deletes a modifiable box from the collection.
func (s *Session) Remove(id BoxID) bool {
	if s == nil || s.ended {
		return false
	}
	b, ok := s.boxes[id]
	if !ok {
		return false
	}
	in, ok := b.Remove()
	if !ok {
		return false
	}
	s.apply(in)
	return true
}

// DeselectAll clears selection on every box without touching the label picker.
func (s *Session) DeselectAll() {
	if s == nil {
		return
	}
	changed := false
	for _, id := range s.order {
		b := s.boxes[id]
		if b.selected {
			b.Deselect()
			changed = true
		}
	}
	if changed {
		s.emit(Change{Kind: ChangeSelection})
	}
}

// SelectLabel makes option id the active label and relabels the selected box.
func (s *Session) SelectLabel(id OptionID) {
	if s == nil || s.ended {
		return
	}
	opt, ok := s.labels.Option(id)
	if !ok {
		return
	}
	s.labels.SetChecked(id)
	s.activeLabel = opt.Value
	for _, bid := range s.order {
		b := s.boxes[bid]
		if b.selected && b.SetLabel(opt.Value) {
			s.emit(Change{Kind: ChangeLabel, Box: b.id, Label: b.label})
		}
	}
	s.emit(Change{Kind: ChangeLabelSet})
}

// CommitFreeText stores text in free-text option id, renames every box that
// carried the option's previous value and appends a new blank option the
// first time the option is committed.
func (s *Session) CommitFreeText(id OptionID, text string) {
	if s == nil || s.ended {
		return
	}
	opt, ok := s.labels.Option(id)
	if !ok || !opt.FreeText {
		return
	}
	old, added, _ := s.labels.Commit(id, text)
	renamed := 0
	if old != text {
		for _, bid := range s.order {
			b := s.boxes[bid]
			if b.label == old && b.SetLabel(text) {
				renamed++
				s.emit(Change{Kind: ChangeLabel, Box: b.id, Label: b.label})
			}
		}
	}
	if checked, ok := s.labels.Checked(); ok && checked.ID == id {
		s.activeLabel = text
	}
	s.emit(Change{Kind: ChangeLabelSet})
	s.logger.Debug("label committed", "old", old, "new", text, "renamed", renamed, "added", int(added))
}

func (s *Session) updateHover(p Point) {
	var id BoxID
	for i := len(s.paint) - 1; i >= 0; i-- {
		b := s.paint[i]
		if part, _ := s.layout.hit(b, p); part != PartNone || s.layout.HoverRect(b.Rect()).Contains(p) {
			id = b.id
			break
		}
	}
	if id != s.hover {
		s.hover = id
		s.emit(Change{Kind: ChangeHover, Box: id})
	}
}

// Hovered returns the box under the pointer, or zero.
func (s *Session) Hovered() BoxID {
	if s == nil {
		return 0
	}
	return s.hover
}

// Drawing reports whether a new box is being drawn.
func (s *Session) Drawing() bool { return s != nil && s.drawing != nil }

// Bounds returns the surface size.
func (s *Session) Bounds() Size { return s.bounds }

// Layout returns the affordance metrics used for hit testing.
func (s *Session) Layout() Layout { return s.layout }

func state(b *Box) BoxState {
	return BoxState{
		ID:         b.id,
		Rect:       b.Rect(),
		Label:      b.label,
		Selected:   b.selected,
		Modifiable: b.modifiable,
		Finished:   b.finished,
		Z:          b.z,
		Gesture:    b.gesture,
	}
}

// Boxes returns snapshots in paint order. A box being drawn comes last.
func (s *Session) Boxes() []BoxState {
	if s == nil {
		return nil
	}
	out := make([]BoxState, 0, len(s.paint)+1)
	for _, b := range s.paint {
		out = append(out, state(b))
	}
	if s.drawing != nil {
		st := state(s.drawing)
		st.Z = len(s.paint)
		out = append(out, st)
	}
	return out
}

// Box returns the snapshot of a collection member.
func (s *Session) Box(id BoxID) (BoxState, bool) {
	if s == nil {
		return BoxState{}, false
	}
	b, ok := s.boxes[id]
	if !ok {
		return BoxState{}, false
	}
	return state(b), true
}

// Selected returns the selected box, if any.
func (s *Session) Selected() (BoxState, bool) {
	if s == nil {
		return BoxState{}, false
	}
	for _, id := range s.order {
		if b := s.boxes[id]; b.selected {
			return state(b), true
		}
	}
	return BoxState{}, false
}

// Labels returns the label options in display order.
func (s *Session) Labels() []Option { return s.labels.Options() }

// Checked returns the checked label option.
func (s *Session) Checked() (Option, bool) { return s.labels.Checked() }

// ActiveLabel is applied to the next drawn box.
func (s *Session) ActiveLabel() string { return s.activeLabel }

// Stats summarizes the collection.
func (s *Session) Stats() Stats {
	if s == nil {
		return Stats{}
	}
	st := Stats{Boxes: len(s.order), ActiveLabel: s.activeLabel}
	for _, id := range s.order {
		b := s.boxes[id]
		if !b.modifiable {
			st.Fixed++
		}
		if b.selected {
			st.Selected = id
		}
	}
	return st
}

// Results returns the modifiable boxes in collection order.
func (s *Session) Results() []Region {
	if s == nil {
		return nil
	}
	out := make([]Region, 0, len(s.order))
	for _, id := range s.order {
		if b := s.boxes[id]; b.modifiable && b.finished {
			out = append(out, b.Region())
		}
	}
	return out
}

// Ended reports whether End has been called.
func (s *Session) Ended() bool { return s != nil && s.ended }

// End aborts any gesture, detaches listeners and returns the modifiable boxes.
// Later input is ignored.
func (s *Session) End() []Region {
	if s == nil {
		return nil
	}
	if s.ended {
		return s.Results()
	}
	if s.active != 0 {
		if b, ok := s.boxes[s.active]; ok {
			b.EndGesture()
		}
	}
	s.drawing = nil
	s.active = 0
	s.pressed = Target{}
	out := s.Results()
	s.emit(Change{Kind: ChangeEnded})
	s.listeners = nil
	s.ended = true
	s.logger.Info("annotation session ended", slog.Int("boxes", len(s.order)), slog.Int("results", len(out)))
	return out
}
