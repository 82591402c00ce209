package mandel

import "math"

const (
	// DefaultMaxIter is the escape iteration cap used when none is configured.
	DefaultMaxIter = 255

	// DefaultGridSize is the number of samples per axis used when none is configured.
	DefaultGridSize = 1000
)

// Config describes one render: the square region of the complex plane
// and how finely and how deeply it is sampled.
type Config struct {
	Center   Complex // center of the square region
	Side     float64 // side length of the region, > 0
	GridSize int     // samples per axis, >= 2
	MaxIter  int     // escape iteration cap, >= 1
}

// DefaultConfig returns a Config for view v with the default grid size and iteration cap.
func DefaultConfig(v View) Config {
	return Config{
		Center:   v.Center,
		Side:     v.Side,
		GridSize: DefaultGridSize,
		MaxIter:  DefaultMaxIter,
	}
}

// Validate reports an error wrapping ErrInvalidArgument when cfg cannot be rendered.
func (cfg Config) Validate() error {
	if !finite(cfg.Center.Re) || !finite(cfg.Center.Im) {
		return invalidArgf("center %s is not finite", cfg.Center)
	}
	if !finite(cfg.Side) || cfg.Side <= 0 {
		return invalidArgf("sidelength must be a positive number, got %v", cfg.Side)
	}
	if cfg.GridSize < 2 {
		return invalidArgf("grid size must be at least 2, got %d", cfg.GridSize)
	}
	if cfg.MaxIter < 1 {
		return invalidArgf("iteration cap must be at least 1, got %d", cfg.MaxIter)
	}
	return nil
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
