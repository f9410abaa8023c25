package view

import (
	"image"

	"github.com/soocke/box-annotator/ui/images"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"
)

// RegionPreview shows an enlarged crop of the selected box.
type RegionPreview interface {
	UpdatePreview(img image.Image)
	ResetPreview()
}

type regionPreview struct {
	label       *LabelWidget
	photo       *Img // disposed before each replacement
	placeholder []byte
}

// NewRegionPreview creates the preview label at row of parent.
func NewRegionPreview(parent *FrameWidget, row, w, h int) RegionPreview {
	v := &regionPreview{placeholder: images.EncodePNG(image.NewRGBA(image.Rect(0, 0, w, h)))}
	v.photo = NewPhoto(Data(v.placeholder))
	v.label = Label(Image(v.photo), Borderwidth(1), Relief("sunken"))
	Grid(v.label, In(parent), Row(row), Column(0), Sticky("we"), Padx("0.4m"), Pady("0.4m"))
	return v
}

func (v *regionPreview) UpdatePreview(img image.Image) {
	if v == nil || v.label == nil || img == nil {
		return
	}
	v.show(images.EncodePNG(img))
}

func (v *regionPreview) ResetPreview() {
	if v == nil || v.label == nil {
		return
	}
	v.show(v.placeholder)
}

func (v *regionPreview) show(png []byte) {
	photo := NewPhoto(Data(png))
	v.label.Configure(Image(photo))
	if v.photo != nil {
		v.photo.Delete()
	}
	v.photo = photo
}
