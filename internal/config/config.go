// Package config loads dateticket defaults from a YAML file.
//
// The file is located by, in order: the --config flag, the
// DATETICKET_CONFIG environment variable, then ~/.dateticket/config.yaml
// if it exists. With none of those, built-in defaults apply.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/naveenspark/dateticket/pkg/domain"
	"github.com/naveenspark/dateticket/pkg/ticket"
)

// EnvVar names the environment variable holding a config path.
const EnvVar = "DATETICKET_CONFIG"

// Unconfirmed as a target_date leaves the ticket date "to be confirmed".
const Unconfirmed = "tbc"

// Config holds defaults for the ticket form and export paths.
type Config struct {
	Recipient string `yaml:"recipient"`
	Question  string `yaml:"question"`
	Location  string `yaml:"location"`
	Title     string `yaml:"title"`

	// TargetDate is YYYY-MM-DDTHH:MM in GMT-6, or "tbc". Empty means the
	// next Valentine's evening.
	TargetDate string `yaml:"target_date"`

	// Photo is a file path or http(s) URL. Empty renders the placeholder.
	Photo string `yaml:"photo"`

	Output OutputConfig `yaml:"output"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `yaml:"log_level"`
}

// OutputConfig controls where exports are written.
type OutputConfig struct {
	Dir       string  `yaml:"dir"`
	PNGName   string  `yaml:"png_name"`
	PDFName   string  `yaml:"pdf_name"`
	PDFMargin float64 `yaml:"pdf_margin"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Recipient: "Aleida",
		Question:  "Will you be my Valentine's date?",
		Location:  domain.DefaultLocation,
		Output: OutputConfig{
			Dir:       ".",
			PNGName:   ticket.DefaultPNGName,
			PDFName:   ticket.DefaultPDFName,
			PDFMargin: ticket.DefaultPDFMargin,
		},
		LogLevel: "info",
	}
}

// Resolve picks the config path from an explicit flag value, the
// environment, or the per-user default. It returns "" when there is no file
// to load.
func Resolve(flagPath string) (string, error) {
	if flagPath != "" {
		return flagPath, nil
	}
	if p := os.Getenv(EnvVar); p != "" {
		return p, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", nil
	}
	p := filepath.Join(home, ".dateticket", "config.yaml")
	if _, err := os.Stat(p); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", nil
		}
		return "", fmt.Errorf("stat %s: %w", p, err)
	}
	return p, nil
}

// Load reads path over the defaults. An empty path returns Default().
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks field values.
func (c *Config) Validate() error {
	if c.Output.PDFMargin < 0 {
		return fmt.Errorf("output.pdf_margin must not be negative, got %g", c.Output.PDFMargin)
	}
	if _, err := ParseLevel(c.LogLevel); err != nil {
		return err
	}
	if c.TargetDate != "" && !c.Unconfirmed() {
		if _, err := domain.ParseLocalInput(c.TargetDate); err != nil {
			return fmt.Errorf("target_date: %w", err)
		}
	}
	return nil
}

// Unconfirmed reports whether the date was explicitly left open.
func (c *Config) Unconfirmed() bool {
	return strings.EqualFold(strings.TrimSpace(c.TargetDate), Unconfirmed)
}

// Target returns the configured target date, nil when unconfirmed, or the
// next Valentine's evening after now.
func (c *Config) Target(now time.Time) (*time.Time, error) {
	switch {
	case c.Unconfirmed():
		return nil, nil
	case c.TargetDate == "":
		t := domain.NextValentines(now)
		return &t, nil
	}
	t, err := domain.ParseLocalInput(c.TargetDate)
	if err != nil {
		return nil, fmt.Errorf("target_date: %w", err)
	}
	return &t, nil
}

// Spec builds a TicketSpec from the configured text fields. The photo is
// left for the caller to load.
func (c *Config) Spec(now time.Time) (domain.TicketSpec, error) {
	target, err := c.Target(now)
	if err != nil {
		return domain.TicketSpec{}, err
	}
	return domain.TicketSpec{
		RecipientName: c.Recipient,
		QuestionText:  c.Question,
		TargetDate:    target,
		Location:      c.Location,
		Title:         c.Title,
	}, nil
}

// PNGPath returns the full raster output path.
func (c *Config) PNGPath() string {
	return filepath.Join(c.Output.Dir, nonEmpty(c.Output.PNGName, ticket.DefaultPNGName))
}

// PDFPath returns the full document output path.
func (c *Config) PDFPath() string {
	return filepath.Join(c.Output.Dir, nonEmpty(c.Output.PDFName, ticket.DefaultPDFName))
}

// ParseLevel maps a level name to a slog.Level. Empty means info.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("unknown log level %q", s)
	}
}

func nonEmpty(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}
