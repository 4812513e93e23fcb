package main

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"github.com/alnah/go-sheet2html/internal/config"
)

// envPrefix starts every recognized environment variable.
const envPrefix = "SHEET2HTML_"

// envConfig holds configuration from environment variables.
// Provides CI/CD-friendly overrides without requiring YAML files.
type envConfig struct {
	ConfigPath    string // SHEET2HTML_CONFIG: config file name or path
	SourceDir     string // SHEET2HTML_SOURCE_DIR: source directory
	OutputDir     string // SHEET2HTML_OUTPUT_DIR: output directory
	ImageDir      string // SHEET2HTML_IMAGE_DIR: image source directory
	DefaultSource string // SHEET2HTML_DEFAULT_SOURCE: source built without --source/--all
	Workers       int    // SHEET2HTML_WORKERS: parallel builds
	HasWorkers    bool   // SHEET2HTML_WORKERS holds a valid value

	invalid []string // variables set to unusable values
}

// knownEnvVars lists valid SHEET2HTML_* environment variables.
// Used to detect typos and warn users about unknown variables.
var knownEnvVars = map[string]bool{
	"SHEET2HTML_CONFIG":         true,
	"SHEET2HTML_SOURCE_DIR":     true,
	"SHEET2HTML_OUTPUT_DIR":     true,
	"SHEET2HTML_IMAGE_DIR":      true,
	"SHEET2HTML_DEFAULT_SOURCE": true,
	"SHEET2HTML_WORKERS":        true,
}

// loadDotEnv loads path into the process environment without overriding
// variables already set. A missing file is not an error.
func loadDotEnv(path string) error {
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("loading %s: %w", path, err)
	}
	return nil
}

// loadEnvConfig reads configuration from environment variables.
func loadEnvConfig() *envConfig {
	cfg := &envConfig{
		ConfigPath:    os.Getenv("SHEET2HTML_CONFIG"),
		SourceDir:     os.Getenv("SHEET2HTML_SOURCE_DIR"),
		OutputDir:     os.Getenv("SHEET2HTML_OUTPUT_DIR"),
		ImageDir:      os.Getenv("SHEET2HTML_IMAGE_DIR"),
		DefaultSource: os.Getenv("SHEET2HTML_DEFAULT_SOURCE"),
	}

	if workers := os.Getenv("SHEET2HTML_WORKERS"); workers != "" {
		if w, err := strconv.Atoi(workers); err == nil && w >= 0 {
			cfg.Workers = w
			cfg.HasWorkers = true
		} else {
			cfg.invalid = append(cfg.invalid, "SHEET2HTML_WORKERS")
		}
	}

	return cfg
}

// warnEnv writes warnings for unrecognized SHEET2HTML_* variables and
// for recognized ones holding unusable values.
// Helps catch typos like SHEET2HTML_OUTPUTDIR instead of SHEET2HTML_OUTPUT_DIR.
func warnEnv(w io.Writer, env *envConfig) {
	var unknown []string
	for _, kv := range os.Environ() {
		name, _, _ := strings.Cut(kv, "=")
		if strings.HasPrefix(name, envPrefix) && !knownEnvVars[name] {
			unknown = append(unknown, name)
		}
	}
	sort.Strings(unknown)
	for _, name := range unknown {
		fmt.Fprintf(w, "warning: unknown environment variable %s (typo?)\n", name)
	}
	for _, name := range env.invalid {
		fmt.Fprintf(w, "warning: ignoring %s=%q\n", name, os.Getenv(name))
	}
}

// applyEnvConfig applies environment variable values over the config file.
// CLI flags are applied afterwards by mergeFlags, giving:
// CLI flags > env vars > config file > defaults.
func applyEnvConfig(env *envConfig, cfg *config.Config) {
	if env.SourceDir != "" {
		cfg.Sources.Dir = env.SourceDir
	}
	if env.OutputDir != "" {
		cfg.Output.Dir = env.OutputDir
	}
	if env.ImageDir != "" {
		cfg.Images.Dir = env.ImageDir
	}
	if env.DefaultSource != "" {
		cfg.Sources.Default = env.DefaultSource
	}
	if env.HasWorkers {
		cfg.Build.Workers = env.Workers
	}
}
