package rating

import (
	"math"
	"math/rand"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"content-platform/internal/domain"
)

func TestEngine_Compute(t *testing.T) {
	engine := NewEngine(DefaultConfig())

	tests := []struct {
		name    string
		signals Signals
		want    float64
	}{
		{"fresh article", Signals{Views: 1}, 50},
		{"never viewed", Signals{}, 50},
		{"five upvotes no views", Signals{Upvotes: 5}, 51.5},
		{"five upvotes one view", Signals{Upvotes: 5, Views: 1}, 50 + (3+0.1*math.Log(2))*0.5},
		{"views only", Signals{Views: 2}, 50 + 0.1*math.Log(3)*0.5},
		{"downvotes only", Signals{Downvotes: 10}, 49},
		{"sources with a vote", Signals{Upvotes: 1, HasSources: true}, 50 + (0.6+0.1)*0.5},
		{"sources alone are baseline", Signals{HasSources: true, Views: 1}, 50},
		{"clamped high", Signals{Upvotes: 1000}, 100},
		{"clamped low", Signals{Downvotes: 1000}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, engine.Compute(tt.signals), 1e-9)
		})
	}
}

func TestEngine_ComputeBounds(t *testing.T) {
	engine := NewEngine(DefaultConfig())
	rng := rand.New(rand.NewSource(7))

	for i := 0; i < 5000; i++ {
		s := Signals{
			Upvotes:    rng.Intn(2000),
			Downvotes:  rng.Intn(2000),
			Views:      rng.Int63n(1_000_000),
			HasSources: rng.Intn(2) == 1,
		}
		r := engine.Compute(s)
		require.GreaterOrEqual(t, r, 0.0, "signals %+v", s)
		require.LessOrEqual(t, r, 100.0, "signals %+v", s)
	}
}

func TestEngine_ComputeMonotonicInUpvotes(t *testing.T) {
	engine := NewEngine(DefaultConfig())
	rng := rand.New(rand.NewSource(11))

	for i := 0; i < 500; i++ {
		base := Signals{
			Downvotes:  rng.Intn(300),
			Views:      rng.Int63n(10_000),
			HasSources: rng.Intn(2) == 1,
		}
		prev := engine.Compute(base)
		for u := 1; u <= 50; u++ {
			s := base
			s.Upvotes = u
			cur := engine.Compute(s)
			require.GreaterOrEqual(t, cur, prev, "upvotes %d signals %+v", u, base)
			prev = cur
		}
	}
}

func TestEngine_IsStale(t *testing.T) {
	engine := NewEngine(DefaultConfig())
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)

	fresh := now.Add(-30 * time.Minute)
	old := now.Add(-61 * time.Minute)

	assert.True(t, engine.IsStale(&domain.Article{}, now), "never rated")
	assert.False(t, engine.IsStale(&domain.Article{LastRatingUpdate: &fresh}, now))
	assert.True(t, engine.IsStale(&domain.Article{LastRatingUpdate: &old}, now))
}

func TestEngine_ComputeArticle(t *testing.T) {
	engine := NewEngine(DefaultConfig())
	a := &domain.Article{
		Upvotes: 2,
		Views:   0,
		Sources: []domain.Source{{Kind: domain.SourceBook, Value: "SICP"}},
	}
	assert.InDelta(t, 50+(1.2+0.1)*0.5, engine.ComputeArticle(a), 1e-9)
}

func TestLoadConfig(t *testing.T) {
	t.Run("empty path returns defaults", func(t *testing.T) {
		cfg, err := LoadConfig("")
		require.NoError(t, err)
		assert.Equal(t, DefaultConfig(), cfg)
	})

	t.Run("overlay keeps unspecified defaults", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "rating.yaml")
		require.NoError(t, os.WriteFile(path, []byte("weights:\n  like: 0.8\nstaleness_window: 30m\n"), 0o600))

		cfg, err := LoadConfig(path)
		require.NoError(t, err)
		assert.Equal(t, 0.8, cfg.Weights.Like)
		assert.Equal(t, DefaultDislikeWeight, cfg.Weights.Dislike)
		assert.Equal(t, DefaultScalingFactor, cfg.ScalingFactor)
		assert.Equal(t, 30*time.Minute, cfg.StalenessWindow)
	})

	t.Run("staleness window from file unless overridden", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "rating.yaml")
		require.NoError(t, os.WriteFile(path, []byte("staleness_window: 30m\n"), 0o600))
		cfg, err := LoadConfig(path)
		require.NoError(t, err)

		assert.Equal(t, 30*time.Minute, cfg.WithStalenessWindow(0).StalenessWindow)
		assert.Equal(t, 5*time.Minute, cfg.WithStalenessWindow(5*time.Minute).StalenessWindow)
		assert.Equal(t, 30*time.Minute, cfg.StalenessWindow, "receiver is not modified")
	})

	t.Run("invalid bounds", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "rating.yaml")
		require.NoError(t, os.WriteFile(path, []byte("min: 90\nmax: 10\n"), 0o600))

		_, err := LoadConfig(path)
		require.Error(t, err)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
		require.Error(t, err)
	})
}
