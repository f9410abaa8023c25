package render

import (
	"image"
	"image/color"
	"image/draw"
	"os"
	"path/filepath"
	"testing"

	"github.com/soocke/box-annotator/domain/annotation"
)

func blackBase(w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), &image.Uniform{C: color.Black}, image.Point{}, draw.Src)
	return img
}

func newTestRenderer(t *testing.T) *Renderer {
	t.Helper()
	r, err := NewRenderer(blackBase(100, 80), annotation.DefaultLayout(), DefaultStyle())
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}
	return r
}

func rgbaAt(img image.Image, x, y int) (r, g, b uint8) {
	cr, cg, cb, _ := img.At(x, y).RGBA()
	return uint8(cr >> 8), uint8(cg >> 8), uint8(cb >> 8)
}

var testBox = annotation.BoxState{
	ID:         1,
	Rect:       annotation.Rect{Left: 10, Top: 10, Width: 40, Height: 30},
	Label:      "Foo",
	Finished:   true,
	Modifiable: true,
}

func TestRender_OutlineAndLabelTag(t *testing.T) {
	r := newTestRenderer(t)
	out := r.Render([]annotation.BoxState{testBox}, 0)
	if out.Bounds() != image.Rect(0, 0, 100, 80) {
		t.Fatalf("unexpected bounds %v", out.Bounds())
	}
	if cr, cg, _ := rgbaAt(out, 10, 38); cg < 100 || cr > 50 {
		t.Fatalf("expected green outline at left edge, got r=%d g=%d", cr, cg)
	}
	tag := annotation.DefaultLayout().LabelRect(testBox.Rect, testBox.Label)
	if cr, cg, cb := rgbaAt(out, tag.Left+2, tag.Top+tag.Height/2); cr < 200 || cg < 200 || cb < 200 {
		t.Fatalf("expected white label padding, got %d,%d,%d", cr, cg, cb)
	}
	if cr, cg, cb := rgbaAt(out, 80, 70); cr != 0 || cg != 0 || cb != 0 {
		t.Fatalf("pixels outside boxes must keep the base color, got %d,%d,%d", cr, cg, cb)
	}
}

func TestRender_AffordancesOnlyWhenHovered(t *testing.T) {
	r := newTestRenderer(t)
	// outside the box, inside the bottom-right handle
	hx, hy := 55, 45
	idle := r.Render([]annotation.BoxState{testBox}, 0)
	if cr, cg, cb := rgbaAt(idle, hx, hy); cr != 0 || cg != 0 || cb != 0 {
		t.Fatalf("handle drawn without hover: %d,%d,%d", cr, cg, cb)
	}
	hover := r.Render([]annotation.BoxState{testBox}, testBox.ID)
	if _, cg, _ := rgbaAt(hover, hx, hy); cg == 0 {
		t.Fatalf("expected handle fill when hovered")
	}

	fixed := testBox
	fixed.Modifiable = false
	out := r.Render([]annotation.BoxState{fixed}, fixed.ID)
	if cr, cg, cb := rgbaAt(out, hx, hy); cr != 0 || cg != 0 || cb != 0 {
		t.Fatalf("fixed boxes have no handles, got %d,%d,%d", cr, cg, cb)
	}
}

func TestRender_DrawingBoxHasNoLabel(t *testing.T) {
	r := newTestRenderer(t)
	drawing := testBox
	drawing.Finished = false
	out := r.Render([]annotation.BoxState{drawing}, 0)
	tag := annotation.DefaultLayout().LabelRect(drawing.Rect, drawing.Label)
	if cr, cg, cb := rgbaAt(out, tag.Left+2, tag.Top+tag.Height/2); cr != 0 || cg != 0 || cb != 0 {
		t.Fatalf("unfinished box must not show a label tag, got %d,%d,%d", cr, cg, cb)
	}
}

func TestRender_DoesNotMutateBase(t *testing.T) {
	base := blackBase(30, 30)
	r, err := NewRenderer(base, annotation.DefaultLayout(), DefaultStyle())
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}
	r.Render([]annotation.BoxState{{ID: 1, Rect: annotation.Rect{Left: 1, Top: 1, Width: 20, Height: 20}, Finished: true, Label: "?"}}, 1)
	if c := base.RGBAAt(1, 5); c.G != 0 {
		t.Fatalf("base image was modified: %v", c)
	}
	if r.Size() != (annotation.Size{Width: 30, Height: 30}) {
		t.Fatalf("unexpected size %v", r.Size())
	}
}

func TestSaveSnapshot(t *testing.T) {
	r := newTestRenderer(t)
	path := filepath.Join(t.TempDir(), "snap.png")
	if err := r.SaveSnapshot(path, []annotation.BoxState{testBox}); err != nil {
		t.Fatalf("save: %v", err)
	}
	if fi, err := os.Stat(path); err != nil || fi.Size() == 0 {
		t.Fatalf("snapshot missing: fi=%v err=%v", fi, err)
	}
	if err := r.SaveSnapshot(filepath.Join(t.TempDir(), "no", "snap.png"), nil); err == nil {
		t.Fatalf("expected error for missing directory")
	}
}

func TestNewRenderer_NilBase(t *testing.T) {
	if _, err := NewRenderer(nil, annotation.DefaultLayout(), DefaultStyle()); err == nil {
		t.Fatalf("expected error")
	}
}
