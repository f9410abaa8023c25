package view

import (
	"image"

	"github.com/soocke/box-annotator/ui/images"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"
)

// PointerHandler receives pointer input in image coordinates.
type PointerHandler interface {
	PointerDown(x, y int)
	PointerMove(x, y int)
	PointerUp(x, y int)
}

// AnnotationCanvas shows the rendered image and forwards mouse input.
type AnnotationCanvas interface {
	SetCanvasImage(img image.Image)
}

type annotationCanvas struct {
	label *LabelWidget
	photo *Img
}

// NewAnnotationCanvas creates an image label at (row, col) of parent. The
// label has no border or padding so event coordinates equal image pixels.
func NewAnnotationCanvas(parent *FrameWidget, row, col int, initial image.Image, h PointerHandler) AnnotationCanvas {
	c := &annotationCanvas{}
	c.photo = NewPhoto(Data(images.EncodePNG(initial)))
	c.label = Label(Image(c.photo), Borderwidth(0), Padx(0), Pady(0), Highlightthickness(0), Anchor("nw"), Cursor("crosshair"))
	Grid(c.label, In(parent), Row(row), Column(col), Sticky("nw"))
	if h != nil {
		Bind(c.label, "<ButtonPress-1>", Command(func(e *Event) { h.PointerDown(e.X, e.Y) }))
		Bind(c.label, "<Motion>", Command(func(e *Event) { h.PointerMove(e.X, e.Y) }))
		Bind(c.label, "<ButtonRelease-1>", Command(func(e *Event) { h.PointerUp(e.X, e.Y) }))
	}
	return c
}

// SetCanvasImage swaps the displayed photo, releasing the previous one.
func (c *annotationCanvas) SetCanvasImage(img image.Image) {
	if c == nil || c.label == nil || img == nil {
		return
	}
	photo := NewPhoto(Data(images.EncodePNG(img)))
	c.label.Configure(Image(photo))
	if c.photo != nil {
		c.photo.Delete()
	}
	c.photo = photo
}
