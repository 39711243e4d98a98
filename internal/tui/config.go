package tui

import (
	"time"

	"github.com/Gabriel-Jesus3761/zops-funnel/internal/crm"
	"github.com/Gabriel-Jesus3761/zops-funnel/internal/funnel"
	"github.com/Gabriel-Jesus3761/zops-funnel/internal/tui/themes"
)

// Config holds TUI configuration.
type Config struct {
	Theme      themes.Theme
	Fetcher    crm.DealFetcher
	Classifier *funnel.Classifier
	Normalizer *funnel.Normalizer
	Timeout    time.Duration
	Staleness  time.Duration
	Width      int
	Height     int
}

// Option is a functional option for configuring the TUI.
type Option func(*Config)

// defaultConfig returns the default configuration.
func defaultConfig() Config {
	return Config{
		Theme:  themes.Default,
		Width:  80,
		Height: 24,
	}
}

// WithFetcher sets the deal fetch collaborator.
func WithFetcher(fetcher crm.DealFetcher) Option {
	return func(c *Config) {
		c.Fetcher = fetcher
	}
}

// WithClassifier sets the stage classifier.
func WithClassifier(classifier *funnel.Classifier) Option {
	return func(c *Config) {
		c.Classifier = classifier
	}
}

// WithNormalizer sets the pipeline normalizer.
func WithNormalizer(normalizer *funnel.Normalizer) Option {
	return func(c *Config) {
		c.Normalizer = normalizer
	}
}

// WithTheme sets the visual theme.
func WithTheme(theme themes.Theme) Option {
	return func(c *Config) {
		c.Theme = theme
	}
}

// WithTimeout sets the fetch deadline.
func WithTimeout(d time.Duration) Option {
	return func(c *Config) {
		c.Timeout = d
	}
}

// WithStaleness sets the cache staleness window.
func WithStaleness(d time.Duration) Option {
	return func(c *Config) {
		c.Staleness = d
	}
}

// WithSize sets the initial terminal size.
func WithSize(width, height int) Option {
	return func(c *Config) {
		c.Width = width
		c.Height = height
	}
}
