// Package rating computes the cached 0-100 quality score of an article from
// its engagement signals and decides when a cached score must be refreshed.
package rating

import (
	"fmt"
	"math"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"content-platform/internal/domain"
)

// Product-tuning defaults.
const (
	DefaultLikeWeight      = 0.6
	DefaultDislikeWeight   = 0.2
	DefaultViewWeight      = 0.1
	DefaultSourceWeight    = 0.1
	DefaultScalingFactor   = 0.5
	DefaultBaseline        = 50.0
	DefaultMin             = 0.0
	DefaultMax             = 100.0
	DefaultStalenessWindow = time.Hour
)

// Weights are the per-signal weights of the rating formula.
type Weights struct {
	Like    float64 `yaml:"like"`
	Dislike float64 `yaml:"dislike"`
	View    float64 `yaml:"view"`
	Source  float64 `yaml:"source"`
}

// Config holds the rating formula parameters and the cache staleness window.
type Config struct {
	Weights         Weights       `yaml:"weights"`
	ScalingFactor   float64       `yaml:"scaling_factor"`
	Baseline        float64       `yaml:"baseline"`
	Min             float64       `yaml:"min"`
	Max             float64       `yaml:"max"`
	StalenessWindow time.Duration `yaml:"staleness_window"`
}

// DefaultConfig returns the production tuning.
func DefaultConfig() Config {
	return Config{
		Weights: Weights{
			Like:    DefaultLikeWeight,
			Dislike: DefaultDislikeWeight,
			View:    DefaultViewWeight,
			Source:  DefaultSourceWeight,
		},
		ScalingFactor:   DefaultScalingFactor,
		Baseline:        DefaultBaseline,
		Min:             DefaultMin,
		Max:             DefaultMax,
		StalenessWindow: DefaultStalenessWindow,
	}
}

// LoadConfig overlays the YAML file at path onto the defaults.
// An empty path returns the defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read rating config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse rating config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// WithStalenessWindow returns c with its staleness window replaced by d.
// A non-positive d keeps the current window.
func (c Config) WithStalenessWindow(d time.Duration) Config {
	if d > 0 {
		c.StalenessWindow = d
	}
	return c
}

// Validate checks the configuration is usable.
func (c Config) Validate() error {
	if c.Min > c.Max {
		return fmt.Errorf("rating min %v exceeds max %v", c.Min, c.Max)
	}
	if c.Baseline < c.Min || c.Baseline > c.Max {
		return fmt.Errorf("rating baseline %v outside [%v, %v]", c.Baseline, c.Min, c.Max)
	}
	if c.ScalingFactor < 0 {
		return fmt.Errorf("rating scaling factor must not be negative")
	}
	if c.StalenessWindow <= 0 {
		return fmt.Errorf("rating staleness window must be positive")
	}
	return nil
}

// Signals are the engagement inputs of the formula.
type Signals struct {
	Upvotes    int
	Downvotes  int
	Views      int64
	HasSources bool
}

// SignalsOf extracts the signals of an article.
func SignalsOf(a *domain.Article) Signals {
	return Signals{
		Upvotes:    a.Upvotes,
		Downvotes:  a.Downvotes,
		Views:      a.Views,
		HasSources: a.HasSources(),
	}
}

// Engine evaluates the formula for a fixed configuration.
type Engine struct {
	cfg Config
}

// NewEngine creates an Engine.
func NewEngine(cfg Config) *Engine {
	return &Engine{cfg: cfg}
}

// Config returns the engine's configuration.
func (e *Engine) Config() Config {
	return e.cfg
}

// Compute returns the rating for s.
//
// Untouched content (no votes, at most one view) gets the baseline exactly.
// Otherwise net = Wl*u + Wv*ln(v+1) + Ws*s - Wd*d and the rating is
// clamp(baseline + net*scaling, min, max).
func (e *Engine) Compute(s Signals) float64 {
	if s.Upvotes == 0 && s.Downvotes == 0 && s.Views <= 1 {
		return e.cfg.Baseline
	}

	views := s.Views
	if views < 0 {
		views = 0
	}
	var sources float64
	if s.HasSources {
		sources = 1
	}

	w := e.cfg.Weights
	positive := w.Like*float64(s.Upvotes) + w.View*math.Log(float64(views)+1) + w.Source*sources
	negative := w.Dislike * float64(s.Downvotes)
	net := positive - negative

	return clamp(e.cfg.Baseline+net*e.cfg.ScalingFactor, e.cfg.Min, e.cfg.Max)
}

// ComputeArticle returns the rating for a.
func (e *Engine) ComputeArticle(a *domain.Article) float64 {
	return e.Compute(SignalsOf(a))
}

// IsStale reports whether a's cached rating must be recomputed on a list read.
func (e *Engine) IsStale(a *domain.Article, now time.Time) bool {
	if a.LastRatingUpdate == nil {
		return true
	}
	return now.Sub(*a.LastRatingUpdate) > e.cfg.StalenessWindow
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
