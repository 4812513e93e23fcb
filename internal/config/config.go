// Package config loads and validates the sheet2html YAML configuration.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/alnah/go-sheet2html/internal/dateutil"
	"github.com/alnah/go-sheet2html/internal/fileutil"
	"github.com/alnah/go-sheet2html/internal/logging"
	"github.com/alnah/go-sheet2html/internal/yamlutil"
)

// AppName names the user config directory.
const AppName = "sheet2html"

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrConfigInvalid   = errors.New("invalid config")
)

// Field limits.
const (
	MaxTitleLength  = 200
	MaxMarkerLength = 50
	MaxWorkers      = 256
)

// Highlight modes and their default styles. Mirrors render.Mode without
// importing the renderer.
const (
	HighlightClient = "client"
	HighlightServer = "server"
)

// Config holds the site build configuration.
type Config struct {
	Title   string        `yaml:"title"`
	Sources SourcesConfig `yaml:"sources"`
	Images  ImagesConfig  `yaml:"images"`
	Output  OutputConfig  `yaml:"output"`
	Render  RenderConfig  `yaml:"render"`
	Assets  AssetsConfig  `yaml:"assets"`
	Build   BuildConfig   `yaml:"build"`
	Logging LoggingConfig `yaml:"logging"`
}

// SourcesConfig defines where workbooks are discovered.
type SourcesConfig struct {
	Dir          string   `yaml:"dir"`
	Default      string   `yaml:"default"`      // built when no source is selected
	WIPMarker    string   `yaml:"wipMarker"`    // excluded when contained in the file name
	LockPrefixes []string `yaml:"lockPrefixes"` // editor lock files to skip
	Sheet        string   `yaml:"sheet"`        // worksheet name, empty = first
}

// ImagesConfig defines the image source directory.
type ImagesConfig struct {
	Dir string `yaml:"dir"`
}

// OutputConfig defines the site output.
type OutputConfig struct {
	Dir     string `yaml:"dir"`
	Landing bool   `yaml:"landing"` // write index.html linking every source on --all
	Package bool   `yaml:"package"` // write per-source zip packages
}

// RenderConfig defines page rendering options.
type RenderConfig struct {
	Lang       string `yaml:"lang"`
	Highlight  string `yaml:"highlight"` // "client" or "server"
	LightStyle string `yaml:"lightStyle"`
	DarkStyle  string `yaml:"darkStyle"`
	DateFormat string `yaml:"dateFormat"`
	Markdown   bool   `yaml:"markdown"`
}

// AssetsConfig defines asset loading options.
type AssetsConfig struct {
	Dir string `yaml:"dir"` // Empty = use embedded assets
}

// BuildConfig defines build concurrency.
type BuildConfig struct {
	Workers int `yaml:"workers"` // 0 = GOMAXPROCS
}

// LoggingConfig defines console logging.
type LoggingConfig struct {
	Level string `yaml:"level"`
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() *Config {
	return &Config{
		Title: "Documentation",
		Sources: SourcesConfig{
			Dir:          "sources",
			WIPMarker:    "_wip",
			LockPrefixes: []string{"~$", ".~lock."},
		},
		Images: ImagesConfig{Dir: "images"},
		Output: OutputConfig{Dir: "site", Landing: true},
		Render: RenderConfig{
			Lang:       "en",
			Highlight:  HighlightClient,
			LightStyle: "github",
			DarkStyle:  "monokai",
			DateFormat: dateutil.DefaultFormat,
		},
		Build:   BuildConfig{Workers: 1},
		Logging: LoggingConfig{Level: logging.LevelNormal},
	}
}

// Validate checks every section. Called by LoadConfig, and again by the
// CLI after flag and environment overrides.
func (c *Config) Validate() error {
	err := validation.ValidateStruct(c,
		validation.Field(&c.Title, validation.Required, validation.Length(1, MaxTitleLength)),
		validation.Field(&c.Sources),
		validation.Field(&c.Images),
		validation.Field(&c.Output),
		validation.Field(&c.Render),
		validation.Field(&c.Build),
		validation.Field(&c.Logging),
	)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrConfigInvalid, err)
	}
	return nil
}

// Validate validates the sources section.
func (c SourcesConfig) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.Dir, validation.Required),
		validation.Field(&c.WIPMarker, validation.Length(0, MaxMarkerLength)),
		validation.Field(&c.LockPrefixes, validation.Each(validation.Required)),
	)
}

// Validate validates the images section.
func (c ImagesConfig) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.Dir, validation.Required),
	)
}

// Validate validates the output section.
func (c OutputConfig) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.Dir, validation.Required),
	)
}

// Validate validates the render section.
func (c RenderConfig) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.Lang, validation.Required, validation.Length(1, 35)),
		validation.Field(&c.Highlight, validation.Required, validation.In(HighlightClient, HighlightServer)),
		validation.Field(&c.DateFormat, validation.By(func(any) error {
			if c.DateFormat == "" {
				return nil
			}
			_, err := dateutil.ParseFormat(c.DateFormat)
			return err
		})),
	)
}

// Validate validates the build section.
func (c BuildConfig) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.Workers, validation.Min(0), validation.Max(MaxWorkers)),
	)
}

// Validate validates the logging section.
func (c LoggingConfig) Validate() error {
	levels := make([]any, 0, len(logging.Levels()))
	for _, l := range logging.Levels() {
		levels = append(levels, l)
	}
	return validation.ValidateStruct(&c,
		validation.Field(&c.Level, validation.In(levels...)),
	)
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's searched as <name>.yaml or <name>.yml in the current
// directory, then in the user config directory. Fields absent from the
// file keep their DefaultConfig values.
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	configPath := nameOrPath
	if !fileutil.IsFilePath(nameOrPath) {
		var err error
		if configPath, err = resolveConfigPath(nameOrPath); err != nil {
			return nil, err
		}
	}

	cfg := DefaultConfig()
	if err := yamlutil.ReadFileStrict(configPath, cfg); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		if errors.Is(err, yamlutil.ErrNilData) {
			return cfg, nil
		}
		return nil, fmt.Errorf("%w: %s: %v", ErrConfigParse, configPath, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// SearchPaths lists the candidate files for a config name in lookup order.
func SearchPaths(name string) []string {
	extensions := []string{".yaml", ".yml"}
	paths := make([]string, 0, len(extensions)*2)
	for _, ext := range extensions {
		paths = append(paths, name+ext)
	}
	if userConfigDir, err := os.UserConfigDir(); err == nil {
		for _, ext := range extensions {
			paths = append(paths, filepath.Join(userConfigDir, AppName, name+ext))
		}
	}
	return paths
}

// resolveConfigPath returns the first existing search path for name.
func resolveConfigPath(name string) (string, error) {
	tried := SearchPaths(name)
	for _, p := range tried {
		if fileutil.FileExists(p) {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(tried, ", "))
}
