package sensor

import (
	"fmt"
	"math"
	"os"
	"strconv"

	"github.com/ironsheep/glimpse-sensor/internal/resample"
)

// MaxPatchSide bounds the side length extracted at the coarsest level.
// Larger requests are rejected rather than allocated.
const MaxPatchSide = 1 << 16

// levelEpsilon absorbs floating-point error in size*scale^i so that, for
// example, 10*1.1 is taken as 11 pixels rather than 10.
const levelEpsilon = 1e-9

// Environment variables read by ConfigFromEnv.
const (
	EnvSize  = "GLIMPSE_SIZE"
	EnvScale = "GLIMPSE_SCALE"
	EnvDepth = "GLIMPSE_DEPTH"
)

// Config describes the glimpses a sensor produces.
//
// The zero Resampler and Coordinates select resample.Default and
// DefaultCoordinates. Config is a plain value; Glimpse never modifies it,
// so one Config may serve any number of goroutines.
type Config struct {
	// Size is the side length of every output patch, in pixels.
	Size int

	// Scale is the factor by which the extracted side grows per level.
	// It must be at least 1.
	Scale float64

	// Depth is the number of patches in a glimpse.
	Depth int

	// Resampler canonicalises each extracted patch to Size×Size.
	Resampler resample.Resampler

	// Coordinates maps normalized locations to pixels.
	Coordinates CoordinateSystem
}

// DefaultConfig returns a three-level glimpse of 8×8 patches doubling in
// extent per level.
func DefaultConfig() Config {
	return Config{Size: 8, Scale: 2, Depth: 3}
}

// Validate reports whether the configuration can produce a glimpse. Every
// failure wraps ErrInvalidArgument.
func (c Config) Validate() error {
	if !(c.Scale >= 1) {
		return fmt.Errorf("%w: scale must be at least 1, got %g", ErrInvalidArgument, c.Scale)
	}
	if math.IsInf(c.Scale, 1) {
		return fmt.Errorf("%w: scale must be finite", ErrInvalidArgument)
	}
	if c.Size < 1 {
		return fmt.Errorf("%w: size must be positive, got %d", ErrInvalidArgument, c.Size)
	}
	if c.Depth < 1 {
		return fmt.Errorf("%w: depth must be positive, got %d", ErrInvalidArgument, c.Depth)
	}
	if side := c.scaledSide(c.Depth - 1); side > MaxPatchSide {
		return fmt.Errorf("%w: coarsest patch side %g exceeds %d", ErrInvalidArgument, side, MaxPatchSide)
	}
	return nil
}

// LevelSide returns the side length extracted at level i before
// resampling: size*scale^i truncated to whole pixels. LevelSide(0) is
// always Size.
//
// The side is fixed before mapping, so every location extracts the same
// number of pixels at a level. Mapping the real-valued size directly would
// let the span vary by a pixel with the location.
func (c Config) LevelSide(i int) int {
	return int(c.scaledSide(i))
}

func (c Config) scaledSide(i int) float64 {
	if i == 0 {
		return float64(c.Size)
	}
	return math.Floor(float64(c.Size)*math.Pow(c.Scale, float64(i)) + levelEpsilon)
}

func (c Config) resampler() resample.Resampler {
	if c.Resampler == nil {
		return resample.Default
	}
	return c.Resampler
}

func (c Config) coordinates() CoordinateSystem {
	if c.Coordinates == nil {
		return DefaultCoordinates
	}
	return c.Coordinates
}

// ConfigFromEnv starts from DefaultConfig and overrides Size, Scale and
// Depth from GLIMPSE_SIZE, GLIMPSE_SCALE and GLIMPSE_DEPTH when set. The
// result is validated.
func ConfigFromEnv() (Config, error) {
	c := DefaultConfig()

	if v := os.Getenv(EnvSize); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return Config{}, fmt.Errorf("%w: %s=%q: %v", ErrInvalidArgument, EnvSize, v, err)
		}
		c.Size = n
	}
	if v := os.Getenv(EnvScale); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return Config{}, fmt.Errorf("%w: %s=%q: %v", ErrInvalidArgument, EnvScale, v, err)
		}
		c.Scale = f
	}
	if v := os.Getenv(EnvDepth); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return Config{}, fmt.Errorf("%w: %s=%q: %v", ErrInvalidArgument, EnvDepth, v, err)
		}
		c.Depth = n
	}

	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}
