package app

import (
	"fmt"
	"image"
	"log/slog"

	"github.com/disintegration/imaging"

	"github.com/soocke/box-annotator/assets"
	"github.com/soocke/box-annotator/config"
	"github.com/soocke/box-annotator/domain/annotation"
	"github.com/soocke/box-annotator/domain/capture"
	"github.com/soocke/box-annotator/domain/region"
	"github.com/soocke/box-annotator/ui/images"
	"github.com/soocke/box-annotator/ui/model"
	"github.com/soocke/box-annotator/ui/presenter"
	"github.com/soocke/box-annotator/ui/render"
	"github.com/soocke/box-annotator/ui/view"
)

// Image source names recorded in the trial when no file path is used.
const (
	SourceScreenshot  = "screenshot"
	SourcePlaceholder = "placeholder"
)

// AppContainer assembles the session, renderer, models, presenters and the root view.
type AppContainer struct {
	Config *config.Config
	Logger *slog.Logger

	Image     image.Image
	ImageName string
	Seeds     []annotation.Region

	Session  *annotation.Session
	Renderer *render.Renderer

	SessionModel *model.SessionModel
	PreviewModel *model.PreviewModel

	RootView *view.RootView
	UI       view.UI

	// Presenters
	Annotation       *presenter.AnnotationPresenter
	SessionPresenter *presenter.SessionPresenter
	PreviewPresenter *presenter.PreviewPresenter
	Loop             *presenter.Loop
}

// BuildContainer loads the image and seed regions and constructs all
// components. The view is created here but laid out by Annotator.Start, since Tk
// widgets only exist once the window does.
func BuildContainer(cfg *config.Config, logger *slog.Logger) (*AppContainer, error) {
	c := &AppContainer{Config: cfg, Logger: logger}

	img, name, err := loadImage(cfg, logger)
	if err != nil {
		return nil, err
	}
	c.Image, c.ImageName = img, name

	seeds, err := region.LoadSeeds(cfg.Regions)
	if err != nil {
		return nil, err
	}
	c.Seeds = seeds

	b := img.Bounds()
	c.Session = annotation.NewSession(logger, annotation.Options{
		Bounds:     annotation.Size{Width: b.Dx(), Height: b.Dy()},
		Labels:     cfg.Labels,
		MinBoxSize: cfg.MinBoxSize,
	})
	c.Renderer, err = render.NewRenderer(img, c.Session.Layout(), render.DefaultStyle())
	if err != nil {
		return nil, err
	}

	c.SessionModel = model.NewSessionModel()
	c.PreviewModel = model.NewPreviewModel()

	// View
	c.RootView = view.NewRootView(logger)
	c.UI = c.RootView

	// RootView proxies are nil-safe until Build creates the subviews.
	c.Annotation = presenter.NewAnnotationPresenter(c.Session, c.Renderer, c.UI, c.UI, logger)
	c.SessionPresenter = presenter.NewSessionPresenter(c.SessionModel, c.Session, c.UI)
	c.PreviewPresenter = presenter.NewPreviewPresenter(c.Session, c.UI, img, c.PreviewModel, cfg.PreviewWidth, cfg.PreviewHeight, logger)
	// Schedule is filled in by Annotator.Start.
	c.Loop = presenter.NewLoop(c.Annotation, c.SessionPresenter, c.PreviewPresenter, nil)
	return c, nil
}

// loadImage resolves the image to annotate: a screen capture, the configured
// file, or the embedded placeholder. The result always has its origin at 0,0.
func loadImage(cfg *config.Config, logger *slog.Logger) (image.Image, string, error) {
	var (
		img  image.Image
		name string
		err  error
	)
	switch {
	case cfg.Screenshot:
		img, err = capture.Grab()
		name = SourceScreenshot
	case cfg.Image != "":
		img, err = images.Load(cfg.Image)
		name = cfg.Image
	default:
		img, err = assets.PlaceholderImage()
		name = SourcePlaceholder
	}
	if err != nil {
		return nil, "", fmt.Errorf("load image %q: %w", name, err)
	}
	if b := img.Bounds(); b.Min != (image.Point{}) {
		img = imaging.Clone(img)
	}
	logger.Info("image loaded", "source", name, "width", img.Bounds().Dx(), "height", img.Bounds().Dy())
	return img, name, nil
}
