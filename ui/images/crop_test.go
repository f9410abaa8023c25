package images

import (
	"image"
	"image/color"
	"testing"
)

func TestCropRegion_KeepsRectInside(t *testing.T) {
	frame := image.NewRGBA(image.Rect(0, 0, 100, 100))
	crop, rect, err := CropRegion(frame, image.Rect(30, 30, 70, 70), 0)
	if err != nil || crop == nil {
		t.Fatalf("expected crop, got err=%v", err)
	}
	if rect != image.Rect(30, 30, 70, 70) {
		t.Fatalf("unexpected rect %v", rect)
	}
	if crop.Bounds().Dx() != 40 || crop.Bounds().Dy() != 40 {
		t.Fatalf("expected 40x40, got %dx%d", crop.Bounds().Dx(), crop.Bounds().Dy())
	}
}

func TestCropRegion_PadClampsNearEdge(t *testing.T) {
	frame := image.NewRGBA(image.Rect(0, 0, 20, 20))
	_, rect, err := CropRegion(frame, image.Rect(2, 2, 12, 12), 5)
	if err != nil {
		t.Fatalf("crop error: %v", err)
	}
	if rect.Min.X != 0 || rect.Min.Y != 0 {
		t.Fatalf("expected clamp to 0,0 got %v", rect.Min)
	}
	if rect.Max.X != 17 || rect.Max.Y != 17 {
		t.Fatalf("expected padded max 17,17 got %v", rect.Max)
	}
}

func TestCropRegion_LargerThanFrame(t *testing.T) {
	frame := image.NewRGBA(image.Rect(0, 0, 30, 30))
	crop, rect, _ := CropRegion(frame, image.Rect(-10, -10, 50, 50), 0)
	if crop == nil {
		t.Fatalf("nil crop")
	}
	if rect != frame.Bounds() {
		t.Fatalf("rect beyond frame: %v", rect)
	}
}

func TestCropRegion_DegenerateIsOnePixel(t *testing.T) {
	frame := image.NewRGBA(image.Rect(0, 0, 10, 10))
	crop, rect, _ := CropRegion(frame, image.Rect(4, 4, 4, 4), 0)
	if crop == nil {
		t.Fatalf("nil crop")
	}
	if rect.Dx() != 1 || rect.Dy() != 1 {
		t.Fatalf("expected 1x1 got %dx%d", rect.Dx(), rect.Dy())
	}
	_, rect, _ = CropRegion(frame, image.Rect(50, 50, 60, 60), 0)
	if rect.Dx() != 1 || rect.Dy() != 1 || !rect.In(frame.Bounds()) {
		t.Fatalf("outside rect should clamp to a pixel inside the frame, got %v", rect)
	}
}

func TestCropRegion_CopiesPixels(t *testing.T) {
	frame := image.NewRGBA(image.Rect(0, 0, 10, 10))
	red := color.RGBA{R: 255, A: 255}
	frame.Set(5, 6, red)
	crop, _, _ := CropRegion(frame, image.Rect(5, 6, 8, 8), 0)
	if got := crop.NRGBAAt(0, 0); got.R != 255 || got.A != 255 {
		t.Fatalf("expected red at crop origin, got %v", got)
	}
}

func TestCropRegion_NilImage(t *testing.T) {
	if _, _, err := CropRegion(nil, image.Rect(0, 0, 1, 1), 0); err == nil {
		t.Fatalf("expected error for nil image")
	}
}
