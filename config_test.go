package mandel

import (
	"context"
	"errors"
	"image/color"
	"math"
	"strings"
	"testing"
)

func TestConfigValidate(t *testing.T) {
	valid := Config{Center: Complex{-0.5, 0}, Side: 3, GridSize: 5, MaxIter: 20}
	if err := valid.Validate(); err != nil {
		t.Fatalf("valid config: %v", err)
	}

	tests := []struct {
		name   string
		modify func(*Config)
	}{
		{"zero side", func(c *Config) { c.Side = 0 }},
		{"negative side", func(c *Config) { c.Side = -1 }},
		{"NaN side", func(c *Config) { c.Side = math.NaN() }},
		{"infinite side", func(c *Config) { c.Side = math.Inf(1) }},
		{"NaN center", func(c *Config) { c.Center.Re = math.NaN() }},
		{"grid of one", func(c *Config) { c.GridSize = 1 }},
		{"zero iterations", func(c *Config) { c.MaxIter = 0 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid
			tt.modify(&cfg)
			err := cfg.Validate()
			if !errors.Is(err, ErrInvalidArgument) {
				t.Errorf("Expected ErrInvalidArgument, got %v", err)
			}
		})
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig(Full)
	if cfg.MaxIter != 255 || cfg.GridSize != 1000 {
		t.Fatalf("defaults: %+v", cfg)
	}
	if cfg.Center != Full.Center || cfg.Side != Full.Side {
		t.Fatalf("view not applied: %+v", cfg)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
}

func TestLookupView(t *testing.T) {
	for _, name := range ViewNames() {
		v, err := LookupView(name)
		if err != nil {
			t.Fatalf("LookupView(%q): %v", name, err)
		}
		if v.Side <= 0 {
			t.Errorf("view %q has side %v", name, v.Side)
		}
	}

	if _, err := LookupView("atlantis"); !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("unknown view: %v", err)
	}
}

func TestResourceError(t *testing.T) {
	cause := errors.New("permission denied")
	err := error(&ResourceError{Path: "/tmp/x.mnd", Hint: "run from the repository root", Err: cause})

	if !errors.Is(err, ErrResourceNotFound) {
		t.Errorf("not ErrResourceNotFound: %v", err)
	}
	if !errors.Is(err, cause) {
		t.Errorf("cause lost: %v", err)
	}
	msg := err.Error()
	for _, want := range []string{"/tmp/x.mnd", "permission denied", "run from the repository root"} {
		if !strings.Contains(msg, want) {
			t.Errorf("message %q lacks %q", msg, want)
		}
	}
}

func TestColorGrid(t *testing.T) {
	g := NewColorGrid(4, 3)
	if g.Width() != 4 || g.Height() != 3 {
		t.Fatalf("dims=%dx%d", g.Width(), g.Height())
	}
	if (ColorGrid{}).Height() != 0 {
		t.Fatalf("empty grid height")
	}

	var got ColorGrid
	var s Sink = SinkFunc(func(_ context.Context, g ColorGrid) error {
		got = g
		return nil
	})
	g[1][2] = color.RGBA{R: 9, A: 255}
	if err := s.Accept(context.Background(), g); err != nil {
		t.Fatal(err)
	}
	if got[1][2].R != 9 {
		t.Fatalf("sink got %v", got[1][2])
	}
}
