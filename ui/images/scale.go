package images

import (
	"bytes"
	"image"
	"image/png"

	"github.com/disintegration/imaging"
)

// EncodePNG encodes an image to PNG bytes. Errors are ignored and may return an empty slice.
func EncodePNG(img image.Image) []byte {
	if img == nil {
		return nil
	}
	var buf bytes.Buffer
	_ = png.Encode(&buf, img)
	return buf.Bytes()
}

// ScaleToFit scales src so that it fits within maxW x maxH preserving aspect
// ratio. Sources that already fit are enlarged only when grow is set.
func ScaleToFit(src image.Image, maxW, maxH int, grow bool) image.Image {
	if src == nil {
		return nil
	}
	if maxW < 1 {
		maxW = 1
	}
	if maxH < 1 {
		maxH = 1
	}
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	if w <= 0 || h <= 0 {
		return src
	}
	if w <= maxW && h <= maxH {
		if !grow {
			return src
		}
		// imaging.Fit never enlarges, so scale the limiting side explicitly.
		if w*maxH >= h*maxW {
			return imaging.Resize(src, maxW, 0, imaging.NearestNeighbor)
		}
		return imaging.Resize(src, 0, maxH, imaging.NearestNeighbor)
	}
	return imaging.Fit(src, maxW, maxH, imaging.Lanczos)
}
