package render

import (
	"fmt"
	"image"
	"image/color"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"

	"github.com/soocke/box-annotator/domain/annotation"
)

// Style holds the colors and font size used to paint boxes.
type Style struct {
	Stroke         color.Color
	LabelFill      color.Color
	LabelText      color.Color
	SelectedBorder color.Color
	Handle         color.Color
	RemoveFill     color.Color
	RemoveMark     color.Color
	FontSize       float64
	LabelRadius    float64
}

// DefaultStyle is a green outline with white label tags.
func DefaultStyle() Style {
	return Style{
		Stroke:         color.RGBA{0, 128, 0, 255},
		LabelFill:      color.White,
		LabelText:      color.Black,
		SelectedBorder: color.RGBA{0, 128, 0, 255},
		Handle:         color.NRGBA{0, 128, 0, 128},
		RemoveFill:     color.White,
		RemoveMark:     color.RGBA{200, 30, 30, 255},
		FontSize:       10,
		LabelRadius:    3,
	}
}

// Renderer paints annotation boxes over a base image.
type Renderer struct {
	base   image.Image
	layout annotation.Layout
	style  Style
	face   font.Face
}

// NewRenderer prepares a renderer for base. The label font is Go Mono.
func NewRenderer(base image.Image, layout annotation.Layout, style Style) (*Renderer, error) {
	if base == nil {
		return nil, fmt.Errorf("render: nil base image")
	}
	ttf, err := truetype.Parse(gomono.TTF)
	if err != nil {
		return nil, fmt.Errorf("render: parse font: %w", err)
	}
	face := truetype.NewFace(ttf, &truetype.Options{
		Size:    style.FontSize,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	return &Renderer{base: base, layout: layout, style: style, face: face}, nil
}

// Size returns the surface size, which equals the base image size.
func (r *Renderer) Size() annotation.Size {
	b := r.base.Bounds()
	return annotation.Size{Width: b.Dx(), Height: b.Dy()}
}

// Base returns the unannotated image.
func (r *Renderer) Base() image.Image { return r.base }

// Render paints boxes in the given order. Hover affordances are drawn for
// hovered when it is a finished, modifiable box.
func (r *Renderer) Render(boxes []annotation.BoxState, hovered annotation.BoxID) image.Image {
	dc := gg.NewContextForImage(r.base)
	dc.SetFontFace(r.face)
	for _, b := range boxes {
		r.drawBox(dc, b)
		if b.Finished && b.Modifiable && b.ID == hovered && hovered != 0 {
			r.drawAffordances(dc, b)
		}
	}
	return dc.Image()
}

// SaveSnapshot writes the annotated image without hover affordances.
func (r *Renderer) SaveSnapshot(path string, boxes []annotation.BoxState) error {
	dc := gg.NewContextForImage(r.Render(boxes, 0))
	if err := dc.SavePNG(path); err != nil {
		return fmt.Errorf("save snapshot: %w", err)
	}
	return nil
}

func (r *Renderer) drawBox(dc *gg.Context, b annotation.BoxState) {
	rc := b.Rect
	dc.SetLineWidth(1)
	dc.SetColor(r.style.Stroke)
	dc.DrawRectangle(float64(rc.Left)+0.5, float64(rc.Top)+0.5, float64(rc.Width), float64(rc.Height))
	dc.Stroke()
	if !b.Finished {
		return
	}

	tag := r.layout.LabelRect(rc, b.Label)
	x, y := float64(tag.Left), float64(tag.Top)
	w, h := float64(tag.Width), float64(tag.Height)
	dc.SetColor(r.style.LabelFill)
	dc.DrawRoundedRectangle(x, y, w, h, r.style.LabelRadius)
	dc.Fill()
	if b.Selected {
		dc.SetColor(r.style.SelectedBorder)
		dc.SetLineWidth(float64(r.layout.LabelBorder))
		dc.DrawRoundedRectangle(x+0.5, y+0.5, w-1, h-1, r.style.LabelRadius)
		dc.Stroke()
	}
	inset := float64(r.layout.LabelBorder + r.layout.LabelPadding)
	dc.SetColor(r.style.LabelText)
	dc.DrawStringAnchored(b.Label, x+inset, y+h/2, 0, 0.35)
}

func (r *Renderer) drawAffordances(dc *gg.Context, b annotation.BoxState) {
	dc.SetColor(r.style.Handle)
	for _, c := range annotation.Corners {
		h := r.layout.HandleRect(b.Rect, c)
		dc.DrawRectangle(float64(h.Left), float64(h.Top), float64(h.Width), float64(h.Height))
		dc.Fill()
	}

	rm := r.layout.RemoveRect(b.Rect)
	x, y := float64(rm.Left), float64(rm.Top)
	w, h := float64(rm.Width), float64(rm.Height)
	dc.SetColor(r.style.RemoveFill)
	dc.DrawRectangle(x, y, w, h)
	dc.Fill()
	dc.SetColor(r.style.RemoveMark)
	dc.SetLineWidth(1.5)
	dc.DrawRectangle(x+0.5, y+0.5, w-1, h-1)
	dc.Stroke()
	dc.DrawLine(x+3, y+3, x+w-3, y+h-3)
	dc.DrawLine(x+w-3, y+3, x+3, y+h-3)
	dc.Stroke()
}
