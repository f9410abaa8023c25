// Package capture grabs the screen so the current display can be annotated
// instead of an image file.
package capture

import (
	"errors"
	"fmt"
	"image"

	"github.com/vova616/screenshot"
)

// ErrEmptyRect is returned when the requested area has no pixels.
var ErrEmptyRect = errors.New("capture: empty rectangle")

// Grab returns a capture of the primary screen.
func Grab() (*image.RGBA, error) {
	img, err := screenshot.CaptureScreen()
	if err != nil {
		return nil, fmt.Errorf("capture: screen: %w", err)
	}
	return img, nil
}

// GrabRect captures r clipped to the screen bounds.
func GrabRect(r image.Rectangle) (*image.RGBA, error) {
	r = r.Canon()
	if r.Empty() {
		return nil, ErrEmptyRect
	}
	screen, err := screenshot.ScreenRect()
	if err != nil {
		return nil, fmt.Errorf("capture: screen rect: %w", err)
	}
	clipped := r.Intersect(screen)
	if clipped.Empty() {
		return nil, fmt.Errorf("%w: %v outside %v", ErrEmptyRect, r, screen)
	}
	img, err := screenshot.CaptureRect(clipped)
	if err != nil {
		return nil, fmt.Errorf("capture: rect %v: %w", clipped, err)
	}
	return img, nil
}
