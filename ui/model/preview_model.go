package model

import (
	"image"

	"github.com/soocke/box-annotator/domain/annotation"
)

// PreviewModel holds the region currently shown in the preview pane. Zero value
// means nothing is previewed and is usable.
// No synchronization needed: updates occur on the UI thread tick.
type PreviewModel struct {
	box  annotation.BoxID
	rect image.Rectangle
}

func NewPreviewModel() *PreviewModel { return &PreviewModel{} }

// Set records the previewed box and its rectangle and reports whether either
// differs from the current value. Empty rectangles clear the model.
func (m *PreviewModel) Set(box annotation.BoxID, r image.Rectangle) bool {
	if m == nil {
		return false
	}
	r = r.Canon()
	if box == 0 || r.Empty() {
		return m.Clear()
	}
	if m.box == box && m.rect == r {
		return false
	}
	m.box, m.rect = box, r
	return true
}

// Clear forgets the previewed region and reports whether anything was shown.
func (m *PreviewModel) Clear() bool {
	if m == nil || m.box == 0 {
		return false
	}
	m.box, m.rect = 0, image.Rectangle{}
	return true
}

// Current returns the previewed box (zero when none) and its rectangle.
func (m *PreviewModel) Current() (annotation.BoxID, image.Rectangle) {
	if m == nil {
		return 0, image.Rectangle{}
	}
	return m.box, m.rect
}
