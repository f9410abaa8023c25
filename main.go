package main

import (
	"flag"
	"log/slog"
	"os"

	"github.com/soocke/box-annotator/app"
	"github.com/soocke/box-annotator/config"
)

func main() {
	var (
		cfgPath    = flag.String("config", "annotator.json", "path to the JSON config file")
		imagePath  = flag.String("image", "", "image to annotate")
		regions    = flag.String("regions", "", "JSON file with fixed seed regions")
		results    = flag.String("results", "", "where to write the trial JSON (default stdout)")
		snapshot   = flag.String("snapshot", "", "optional PNG of the annotated image")
		prompt     = flag.String("prompt", "", "text shown above the image")
		screenshot = flag.Bool("screenshot", false, "annotate a capture of the screen")
		debugMode  = flag.Bool("debug", false, "debug logging and runtime stats")
	)
	flag.Parse()

	// Defaults, then file, then environment, then flags.
	cfg, err := config.Load(*cfgPath)
	boot := NewLogger(slog.LevelInfo)
	if err != nil {
		boot.Warn("config load failed, using defaults", "path", *cfgPath, "error", err)
	}
	if err := cfg.ApplyEnv(); err != nil {
		boot.Warn("environment overrides failed", "error", err)
	}
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "image":
			cfg.Image = *imagePath
		case "regions":
			cfg.Regions = *regions
		case "results":
			cfg.Results = *results
		case "snapshot":
			cfg.Snapshot = *snapshot
		case "prompt":
			cfg.Prompt = *prompt
		case "screenshot":
			cfg.Screenshot = *screenshot
		case "debug":
			cfg.Debug = *debugMode
		}
	})
	_ = cfg.Validate()

	// Set up logger
	logger := NewLogger(cfg.Level())

	c, err := app.BuildContainer(cfg, logger)
	if err != nil {
		logger.Error("startup failed", "error", err)
		os.Exit(1)
	}
	application := app.NewAnnotator("Box Annotator", c)
	if err := application.Start(); err != nil {
		os.Exit(1)
	}
}
