package app

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"

	"github.com/soocke/box-annotator/debug"
	"github.com/soocke/box-annotator/domain/region"
	"github.com/soocke/box-annotator/ui/theme"
	"github.com/soocke/box-annotator/ui/view"
)

const (
	tick = 33 * time.Millisecond
)

// Annotator drives the Tk window for one annotation trial.
type Annotator struct {
	c       *AppContainer
	title   string
	afterID string

	finished  bool
	err       error
	stopDebug context.CancelFunc
}

func NewAnnotator(title string, c *AppContainer) *Annotator {
	return &Annotator{c: c, title: title}
}

// Start lays out the window, begins the session and blocks until the window
// closes. It returns the error of writing the trial results, if any.
func (a *Annotator) Start() error {
	c := a.c
	cfg := c.Config

	App.WmTitle(a.title)
	WmProtocol(App, "WM_DELETE_WINDOW", a.finish)
	WmGeometry(App, fmt.Sprintf("%dx%d+100+100", cfg.WindowWidth, cfg.WindowHeight))
	theme.InitStyles()

	if cfg.Debug {
		ctx, cancel := context.WithCancel(context.Background())
		a.stopDebug = cancel
		debug.StartGoroutineLogger(ctx, 5*time.Second, c.Logger)
		debug.StartMemLogger(ctx, 5*time.Second, c.Logger)
	}

	c.RootView.Build(view.Layout{
		Prompt:        cfg.Prompt,
		Initial:       c.Image,
		PreviewWidth:  cfg.PreviewWidth,
		PreviewHeight: cfg.PreviewHeight,
	}, c.Annotation, a.finish)

	c.Session.Begin(c.Seeds)
	c.Annotation.Refresh()
	c.Loop.Schedule = a.scheduleUpdate
	a.scheduleUpdate()

	App.Wait()
	return a.err
}

func (a *Annotator) scheduleUpdate() {
	if a.finished {
		return
	}
	// TclAfter keeps the loop on Tk's event thread.
	a.afterID = TclAfter(tick, func() { a.c.Loop.Tick() })
}

// finish ends the session, writes the results and closes the window. It runs
// once, from the Done button or the window manager close.
func (a *Annotator) finish() {
	if a.finished {
		return
	}
	a.finished = true
	if a.afterID != "" {
		TclAfterCancel(a.afterID)
	}
	c := a.c
	ended := time.Now()
	regions := c.Session.End()
	c.SessionPresenter.Tick(ended)
	started := c.SessionModel.StartedAt()
	if started.IsZero() {
		started = ended
	}
	trial := region.NewTrial(c.ImageName, c.Config.Prompt, started, ended, regions)
	a.err = a.writeResults(trial)

	if path := c.Config.Snapshot; path != "" {
		if err := c.Renderer.SaveSnapshot(path, c.Session.Boxes()); err != nil {
			c.Logger.Error("snapshot failed", "path", path, "error", err)
		} else {
			c.Logger.Info("snapshot saved", "path", path)
		}
	}

	c.PreviewPresenter.Close()
	if a.stopDebug != nil {
		a.stopDebug()
	}
	Destroy(App)
}

// writeResults saves the trial to the configured path. Without a path, or when
// saving fails, the trial is written to stdout so it is never lost.
func (a *Annotator) writeResults(trial region.Trial) error {
	logger := a.c.Logger
	path := a.c.Config.Results
	if path == "" {
		return trial.Write(os.Stdout)
	}
	if err := trial.Save(path); err != nil {
		logger.Error("results save failed", "path", path, "error", err)
		if werr := trial.Write(os.Stdout); werr != nil {
			logger.Error("results dump failed", "error", werr)
		}
		return err
	}
	logger.Info("results saved", "path", path, slog.Int("regions", len(trial.Regions)), slog.Int64("rt", trial.RT))
	return nil
}
