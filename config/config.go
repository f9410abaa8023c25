package config

import (
	"encoding/json"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds runtime configuration for the annotator.
// Fields may be loaded from a JSON file, overridden by environment variables
// and finally by command-line flags.
type Config struct {
	Debug    bool   `json:"debug"`
	LogLevel string `json:"log_level"`

	// Trial inputs
	Image      string   `json:"image"`
	Prompt     string   `json:"prompt"`
	Regions    string   `json:"regions"`
	Labels     []string `json:"labels"`
	Screenshot bool     `json:"screenshot"`

	// Editing
	MinBoxSize int `json:"min_box_size"`

	// Outputs ("" results means stdout, "" snapshot means none)
	Results  string `json:"results"`
	Snapshot string `json:"snapshot"`

	// Layout
	PreviewWidth  int `json:"preview_width"`
	PreviewHeight int `json:"preview_height"`
	WindowWidth   int `json:"window_width"`
	WindowHeight  int `json:"window_height"`
}

// DefaultConfig returns a Config populated with standard defaults.
func DefaultConfig() *Config {
	return &Config{
		Debug:         false,
		LogLevel:      "info",
		Labels:        []string{"Foo", "Bar"},
		MinBoxSize:    2,
		PreviewWidth:  200,
		PreviewHeight: 150,
		WindowWidth:   1024,
		WindowHeight:  768,
	}
}

// Validate clamps/normalizes values to safe ranges.
func (c *Config) Validate() error {
	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "error":
		c.LogLevel = strings.ToLower(c.LogLevel)
	default:
		c.LogLevel = "info"
	}
	labels := c.Labels[:0]
	for _, l := range c.Labels {
		if l = strings.TrimSpace(l); l != "" {
			labels = append(labels, l)
		}
	}
	c.Labels = labels
	if len(c.Labels) == 0 {
		c.Labels = []string{"Foo", "Bar"}
	}
	if c.MinBoxSize < 0 {
		c.MinBoxSize = 2
	}
	if c.PreviewWidth < 50 {
		c.PreviewWidth = 200
	}
	if c.PreviewHeight < 50 {
		c.PreviewHeight = 150
	}
	if c.WindowWidth < 320 {
		c.WindowWidth = 1024
	}
	if c.WindowHeight < 240 {
		c.WindowHeight = 768
	}
	return nil
}

// Level maps LogLevel to a slog level. Debug forces slog.LevelDebug.
func (c *Config) Level() slog.Level {
	if c == nil {
		return slog.LevelInfo
	}
	if c.Debug {
		return slog.LevelDebug
	}
	switch c.LogLevel {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Load attempts to read configuration from the given JSON file path. If the file does not
// exist it returns DefaultConfig(). On JSON error it returns defaults with the error.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, err
	}
	defer f.Close()
	dec := json.NewDecoder(f)
	if err := dec.Decode(cfg); err != nil {
		return DefaultConfig(), err
	}
	_ = cfg.Validate()
	return cfg, nil
}

// Save writes the configuration to the given path in JSON format.
func (c *Config) Save(path string) error {
	_ = c.Validate()
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(c)
}

// Environment variable names read by ApplyEnv.
const (
	EnvImage    = "ANNOTATOR_IMAGE"
	EnvRegions  = "ANNOTATOR_REGIONS"
	EnvResults  = "ANNOTATOR_RESULTS"
	EnvSnapshot = "ANNOTATOR_SNAPSHOT"
	EnvPrompt   = "ANNOTATOR_PROMPT"
	EnvLabels   = "ANNOTATOR_LABELS"
	EnvDebug    = "ANNOTATOR_DEBUG"
	EnvLogLevel = "ANNOTATOR_LOG_LEVEL"
)

// ApplyEnv loads the given dotenv files (a missing file is not an error) and
// overrides fields from ANNOTATOR_* variables. With no files ".env" is tried.
func (c *Config) ApplyEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !os.IsNotExist(err) {
			return err
		}
	}
	if v, ok := os.LookupEnv(EnvImage); ok {
		c.Image = v
	}
	if v, ok := os.LookupEnv(EnvRegions); ok {
		c.Regions = v
	}
	if v, ok := os.LookupEnv(EnvResults); ok {
		c.Results = v
	}
	if v, ok := os.LookupEnv(EnvSnapshot); ok {
		c.Snapshot = v
	}
	if v, ok := os.LookupEnv(EnvPrompt); ok {
		c.Prompt = v
	}
	if v, ok := os.LookupEnv(EnvLabels); ok {
		c.Labels = strings.Split(v, ",")
	}
	if v, ok := os.LookupEnv(EnvDebug); ok {
		if b, err := strconv.ParseBool(v); err == nil {
			c.Debug = b
		}
	}
	if v, ok := os.LookupEnv(EnvLogLevel); ok {
		c.LogLevel = v
	}
	return c.Validate()
}
