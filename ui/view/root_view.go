package view

import (
	"image"
	"log/slog"
	"time"

	"github.com/soocke/box-annotator/domain/annotation"
	"github.com/soocke/box-annotator/ui/theme"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"
)

// Handler is the input surface of the annotation presenter.
type Handler interface {
	PointerHandler
	LabelHandler
	PagePress()
	PageClick(onLabel bool)
}

// RootView composes the top-level application layout and wires UI callbacks.
// It owns the subviews and exposes them to presenters through UI.
type RootView struct {
	logger *slog.Logger

	// Subviews
	Canvas  AnnotationCanvas
	Labels  LabelPanel
	Preview RegionPreview
	Session SessionStats

	// Widgets
	PromptLabel *TLabelWidget
	DoneButton  *TButtonWidget

	handler Handler
	// Set by widget bindings during a press; the toplevel binding runs after
	// them and consumes the flags.
	canvasPressed bool
	labelPressed  bool
}

// UI abstracts the subset of view operations needed by presenters, enabling decoupling
// from the concrete RootView implementation.
type UI interface {
	SetCanvasImage(img image.Image)
	SetLabelOptions(opts []annotation.Option, checked annotation.OptionID)
	UpdatePreview(img image.Image)
	ResetPreview()
	SetSession(elapsed time.Duration, boxes, fixed int, label string)
}

var _ UI = (*RootView)(nil)

func NewRootView(logger *slog.Logger) *RootView {
	return &RootView{logger: logger}
}

// Layout describes what Build places on screen.
type Layout struct {
	Prompt        string
	Initial       image.Image // first canvas frame
	PreviewWidth  int
	PreviewHeight int
}

// Build constructs the layout. The prompt spans the top row, the canvas sits
// below it and the side panel holds labels, preview, stats and the Done button.
// onDone is invoked when the user finishes the trial.
func (rv *RootView) Build(l Layout, h Handler, onDone func()) {
	if rv == nil {
		return
	}
	rv.handler = h

	if l.Prompt != "" {
		rv.PromptLabel = TLabel(Txt(l.Prompt), Anchor("w"), Justify("left"), Style(theme.StylePromptLabel))
		Grid(rv.PromptLabel, Row(0), Column(0), Columnspan(2), Sticky("we"), Padx("0.4m"), Pady("0.3m"))
	}

	canvasFrame := Frame(Borderwidth(1), Relief("sunken"))
	Grid(canvasFrame, Row(1), Column(0), Sticky("nw"), Padx("0.4m"), Pady("0.4m"))
	rv.Canvas = NewAnnotationCanvas(canvasFrame, 0, 0, l.Initial, canvasInput{rv})

	side := Frame()
	Grid(side, Row(1), Column(1), Sticky("ne"), Padx("0.3m"), Pady("0.3m"))
	rv.Labels = NewLabelPanel(side, 0, h, func() { rv.labelPressed = true })
	rv.Preview = NewRegionPreview(side, 1, l.PreviewWidth, l.PreviewHeight)
	rv.Session = NewSessionStats(side, 2)
	rv.DoneButton = TButton(Txt("Done"), Style(theme.StyleDoneButton), Command(onDone))
	Grid(rv.DoneButton, In(side), Row(5), Column(0), Sticky("we"), Padx("0.2m"), Pady("0.6m"))

	Bind(App, "<ButtonPress-1>", Command(rv.pagePress))
	Bind(App, "<ButtonRelease-1>", Command(rv.pageRelease))
}

// canvasInput marks canvas presses so the toplevel binding can skip them.
type canvasInput struct{ rv *RootView }

func (c canvasInput) PointerDown(x, y int) {
	c.rv.canvasPressed = true
	if c.rv.handler != nil {
		c.rv.handler.PointerDown(x, y)
	}
}

func (c canvasInput) PointerMove(x, y int) {
	if c.rv.handler != nil {
		c.rv.handler.PointerMove(x, y)
	}
}

func (c canvasInput) PointerUp(x, y int) {
	if c.rv.handler != nil {
		c.rv.handler.PointerUp(x, y)
	}
}

func (rv *RootView) pagePress() {
	if rv.canvasPressed || rv.handler == nil {
		return
	}
	rv.handler.PagePress()
}

func (rv *RootView) pageRelease() {
	if rv.canvasPressed {
		rv.canvasPressed = false
		return
	}
	onLabel := rv.labelPressed
	rv.labelPressed = false
	if rv.handler != nil {
		rv.handler.PageClick(onLabel)
	}
}

// SetCanvasImage proxies to the canvas view.
func (rv *RootView) SetCanvasImage(img image.Image) {
	if rv != nil && rv.Canvas != nil {
		rv.Canvas.SetCanvasImage(img)
	}
}

// SetLabelOptions proxies to the label panel.
func (rv *RootView) SetLabelOptions(opts []annotation.Option, checked annotation.OptionID) {
	if rv != nil && rv.Labels != nil {
		rv.Labels.SetLabelOptions(opts, checked)
	}
}

// UpdatePreview proxies to the region preview.
func (rv *RootView) UpdatePreview(img image.Image) {
	if rv != nil && rv.Preview != nil {
		rv.Preview.UpdatePreview(img)
	}
}

// ResetPreview clears the region preview.
func (rv *RootView) ResetPreview() {
	if rv != nil && rv.Preview != nil {
		rv.Preview.ResetPreview()
	}
}

// SetSession updates the status labels.
func (rv *RootView) SetSession(elapsed time.Duration, boxes, fixed int, label string) {
	if rv == nil || rv.Session == nil {
		return
	}
	rv.Session.SetSession(elapsed, boxes, fixed, label)
}
