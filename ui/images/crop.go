package images

import (
	"errors"
	"image"

	"github.com/disintegration/imaging"
)

// CropRegion cuts r, grown by pad pixels on each side, out of src.
// The rectangle is clamped to the source bounds and is at least 1x1.
// It returns the crop and the rectangle actually used, relative to src.
func CropRegion(src image.Image, r image.Rectangle, pad int) (*image.NRGBA, image.Rectangle, error) {
	if src == nil {
		return nil, image.Rectangle{}, errors.New("nil image")
	}
	b := src.Bounds()
	if b.Empty() {
		return nil, image.Rectangle{}, errors.New("empty image")
	}
	if pad < 0 {
		pad = 0
	}
	r = r.Canon().Inset(-pad)
	x0 := clampInt(r.Min.X, b.Min.X, b.Max.X-1)
	y0 := clampInt(r.Min.Y, b.Min.Y, b.Max.Y-1)
	x1 := clampInt(r.Max.X, x0+1, b.Max.X)
	y1 := clampInt(r.Max.Y, y0+1, b.Max.Y)
	rect := image.Rect(x0, y0, x1, y1)
	return imaging.Crop(src, rect), rect, nil
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
