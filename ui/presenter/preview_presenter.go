package presenter

import (
	"errors"
	"image"
	"log/slog"
	"sync"
	"time"

	"github.com/soocke/box-annotator/domain/annotation"
	"github.com/soocke/box-annotator/ui/images"
	"github.com/soocke/box-annotator/ui/model"
)

// SelectionSource returns the currently selected box.
type SelectionSource interface {
	Selected() (annotation.BoxState, bool)
}

// PreviewView describes the UI surface updated by the presenter.
type PreviewView interface {
	UpdatePreview(img image.Image)
	ResetPreview()
}

type previewTask struct {
	sequence uint64
	box      annotation.BoxID
	rect     image.Rectangle
	img      image.Image
}

type previewResult struct {
	sequence uint64
	box      annotation.BoxID
	img      image.Image
	err      error
	duration time.Duration
}

// PreviewPresenter shows an enlarged crop of the selected region. Cropping and
// scaling run on a worker goroutine; results are applied on Tick.
type PreviewPresenter struct {
	Source SelectionSource
	View   PreviewView
	Image  image.Image
	Model  *model.PreviewModel
	logger *slog.Logger

	maxW, maxH int
	pad        int

	workerOnce sync.Once
	closeOnce  sync.Once
	workCh     chan previewTask
	resultCh   chan previewResult
	sequence   uint64
}

// NewPreviewPresenter constructs a preview presenter for img.
func NewPreviewPresenter(source SelectionSource, view PreviewView, img image.Image, m *model.PreviewModel, maxW, maxH int, logger *slog.Logger) *PreviewPresenter {
	if m == nil {
		m = model.NewPreviewModel()
	}
	return &PreviewPresenter{
		Source:   source,
		View:     view,
		Image:    img,
		Model:    m,
		logger:   logger,
		maxW:     maxW,
		maxH:     maxH,
		pad:      4,
		workCh:   make(chan previewTask, 1),
		resultCh: make(chan previewResult, 1),
	}
}

// Tick applies finished crops and schedules a new one when the selection moved.
func (p *PreviewPresenter) Tick() {
	if p == nil || p.Source == nil || p.View == nil || p.Image == nil {
		return
	}

	p.ensureWorker()

	for {
		select {
		case res := <-p.resultCh:
			p.handleResult(res)
		default:
			goto drained
		}
	}

drained:
	sel, ok := p.Source.Selected()
	if !ok {
		if p.Model.Clear() {
			p.sequence++
			p.View.ResetPreview()
		}
		return
	}
	r := sel.Rect
	rect := image.Rect(r.Left, r.Top, r.Right(), r.Bottom())
	if !p.Model.Set(sel.ID, rect) {
		return
	}
	p.sequence++
	p.dispatchTask(previewTask{sequence: p.sequence, box: sel.ID, rect: rect, img: p.Image})
}

func (p *PreviewPresenter) ensureWorker() {
	p.workerOnce.Do(func() {
		go p.runWorker()
	})
}

func (p *PreviewPresenter) runWorker() {
	for task := range p.workCh {
		res := p.executeTask(task)
		select {
		case p.resultCh <- res:
		default:
			select {
			case <-p.resultCh:
			default:
			}
			select {
			case p.resultCh <- res:
			default:
			}
		}
	}
}

func (p *PreviewPresenter) dispatchTask(task previewTask) {
	select {
	case p.workCh <- task:
	default:
		select {
		case <-p.workCh:
		default:
		}
		select {
		case p.workCh <- task:
		default:
		}
	}
}

func (p *PreviewPresenter) executeTask(task previewTask) previewResult {
	res := previewResult{sequence: task.sequence, box: task.box}
	if task.img == nil {
		res.err = errors.New("nil image")
		return res
	}
	start := time.Now()
	crop, _, err := images.CropRegion(task.img, task.rect, p.pad)
	if err != nil {
		res.err = err
		return res
	}
	res.img = images.ScaleToFit(crop, p.maxW, p.maxH, true)
	res.duration = time.Since(start)
	return res
}

func (p *PreviewPresenter) handleResult(res previewResult) {
	if res.err != nil {
		if p.logger != nil {
			p.logger.Error("preview", "error", res.err)
		}
		return
	}
	if res.sequence != p.sequence {
		return // stale
	}
	if p.logger != nil {
		p.logger.Debug("preview ready", "box", res.box, "duration", res.duration)
	}
	p.View.UpdatePreview(res.img)
}

// Close stops the worker goroutine. Further Ticks are ignored.
func (p *PreviewPresenter) Close() {
	if p == nil {
		return
	}
	p.closeOnce.Do(func() {
		p.workerOnce.Do(func() {})
		close(p.workCh)
		p.Image = nil
	})
}
