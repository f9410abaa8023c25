package presenter

import (
	"image"
	"log/slog"

	"github.com/soocke/box-annotator/domain/annotation"
)

// AnnotationSession is the part of the annotation engine driven by the presenter.
type AnnotationSession interface {
	PointerDown(annotation.Point)
	PointerMove(annotation.Point)
	PointerUp(annotation.Point)
	PagePress()
	PageClick(annotation.Control)
	SelectLabel(annotation.OptionID)
	CommitFreeText(annotation.OptionID, string)
	Boxes() []annotation.BoxState
	Labels() []annotation.Option
	Checked() (annotation.Option, bool)
	Hovered() annotation.BoxID
	AddListener(annotation.Listener)
}

var _ AnnotationSession = (*annotation.Session)(nil)

// BoxRenderer paints the session state over the image.
type BoxRenderer interface {
	Render(boxes []annotation.BoxState, hovered annotation.BoxID) image.Image
}

// CanvasView shows the annotated image.
type CanvasView interface {
	SetCanvasImage(img image.Image)
}

// LabelView shows the label picker.
type LabelView interface {
	SetLabelOptions(opts []annotation.Option, checked annotation.OptionID)
}

// AnnotationPresenter forwards canvas and label input to the session and
// repaints the views when the session reports changes. Pointer motion only
// marks the canvas dirty; Flush (driven by the update loop) repaints it.
// Presses, releases and label input repaint immediately.
type AnnotationPresenter struct {
	session  AnnotationSession
	renderer BoxRenderer
	canvas   CanvasView
	labels   LabelView
	logger   *slog.Logger

	canvasDirty bool
	labelsDirty bool
	renders     int
}

// NewAnnotationPresenter subscribes to session changes.
func NewAnnotationPresenter(session AnnotationSession, renderer BoxRenderer, canvas CanvasView, labels LabelView, logger *slog.Logger) *AnnotationPresenter {
	p := &AnnotationPresenter{session: session, renderer: renderer, canvas: canvas, labels: labels, logger: logger}
	if session != nil {
		session.AddListener(p.onChange)
	}
	return p
}

func (p *AnnotationPresenter) onChange(c annotation.Change) {
	switch c.Kind {
	case annotation.ChangeLabelSet:
		p.labelsDirty = true
	case annotation.ChangeEnded:
	default:
		p.canvasDirty = true
	}
}

// Refresh repaints both views regardless of pending changes.
func (p *AnnotationPresenter) Refresh() {
	if p == nil {
		return
	}
	p.canvasDirty, p.labelsDirty = true, true
	p.Flush()
}

// Flush repaints whatever changed since the last flush.
func (p *AnnotationPresenter) Flush() {
	if p == nil || p.session == nil {
		return
	}
	if p.canvasDirty && p.renderer != nil && p.canvas != nil {
		p.canvasDirty = false
		p.canvas.SetCanvasImage(p.renderer.Render(p.session.Boxes(), p.session.Hovered()))
		p.renders++
	}
	if p.labelsDirty && p.labels != nil {
		p.labelsDirty = false
		var checked annotation.OptionID
		if opt, ok := p.session.Checked(); ok {
			checked = opt.ID
		}
		p.labels.SetLabelOptions(p.session.Labels(), checked)
	}
}

// Renders reports how many canvas repaints were pushed to the view.
func (p *AnnotationPresenter) Renders() int {
	if p == nil {
		return 0
	}
	return p.renders
}

// PointerDown handles a button press on the canvas at image coordinates.
func (p *AnnotationPresenter) PointerDown(x, y int) {
	if p == nil || p.session == nil {
		return
	}
	p.session.PointerDown(annotation.Pt(x, y))
	p.Flush()
}

// PointerMove handles motion over the canvas.
func (p *AnnotationPresenter) PointerMove(x, y int) {
	if p == nil || p.session == nil {
		return
	}
	p.session.PointerMove(annotation.Pt(x, y))
}

// PointerUp handles a button release on the canvas.
func (p *AnnotationPresenter) PointerUp(x, y int) {
	if p == nil || p.session == nil {
		return
	}
	p.session.PointerUp(annotation.Pt(x, y))
	p.Flush()
}

// PagePress handles a press anywhere outside the canvas.
func (p *AnnotationPresenter) PagePress() {
	if p == nil || p.session == nil {
		return
	}
	p.session.PagePress()
}

// PageClick handles a click outside the canvas. onLabel is true when the
// click landed on a label control.
func (p *AnnotationPresenter) PageClick(onLabel bool) {
	if p == nil || p.session == nil {
		return
	}
	c := annotation.ControlNone
	if onLabel {
		c = annotation.ControlLabel
	}
	p.session.PageClick(c)
	p.Flush()
}

// LabelChosen handles a label radio change.
func (p *AnnotationPresenter) LabelChosen(id annotation.OptionID) {
	if p == nil || p.session == nil {
		return
	}
	p.session.SelectLabel(id)
	p.Flush()
}

// FreeTextCommitted handles a commit of a free-text label entry.
func (p *AnnotationPresenter) FreeTextCommitted(id annotation.OptionID, text string) {
	if p == nil || p.session == nil {
		return
	}
	p.session.CommitFreeText(id, text)
	if p.logger != nil {
		p.logger.Debug("free-text label committed", "option", int(id), "text", text)
	}
	p.Flush()
}
