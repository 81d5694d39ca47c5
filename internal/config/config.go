// Package config holds every tunable of the simulation. Defaults reproduce
// the stock game feel; a YAML file may override any subset.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/go-gl/mathgl/mgl32"
	"gopkg.in/yaml.v3"
)

// SpawnPolicy selects where spawners place new asteroids.
type SpawnPolicy string

const (
	// SpawnUniform draws position and velocity uniformly over the window.
	SpawnUniform SpawnPolicy = "uniform"
	// SpawnEdge draws a point on a random window edge and an inward velocity.
	SpawnEdge SpawnPolicy = "edge"
)

// Config is the full tuning file.
type Config struct {
	Window   WindowConfig   `yaml:"window"`
	Tick     TickConfig     `yaml:"tick"`
	Ship     ShipConfig     `yaml:"ship"`
	Bullet   BulletConfig   `yaml:"bullet"`
	Asteroid AsteroidConfig `yaml:"asteroid"`
	Reset    ResetConfig    `yaml:"reset"`
	Input    InputConfig    `yaml:"input"`
}

// WindowConfig is the visible world rectangle, in world units.
type WindowConfig struct {
	Width  float32 `yaml:"width"`
	Height float32 `yaml:"height"`
}

type TickConfig struct {
	FPS      int     `yaml:"fps"`
	MaxDelta float32 `yaml:"max_delta"` // clamp for stalls (seconds)
}

type ShipConfig struct {
	InitialLives int8    `yaml:"initial_lives"`
	ResetLives   int8    `yaml:"reset_lives"`
	Acceleration float32 `yaml:"acceleration"`
	Deceleration float32 `yaml:"deceleration"`
	RotationRate float32 `yaml:"rotation_rate"` // degrees per second
	Size         float32 `yaml:"size"`
	Mass         float32 `yaml:"mass"`
	BulletSpeed  float32 `yaml:"bullet_speed"`
	MuzzleOffset float32 `yaml:"muzzle_offset"`
}

type BulletConfig struct {
	Life float32 `yaml:"life"`
	Size float32 `yaml:"size"`
	Mass float32 `yaml:"mass"`
	// MissedShotAmount asteroids are spawned by a bullet that stays alive
	// long enough. Zero disables the penalty.
	MissedShotAmount int `yaml:"missed_shot_amount"`
}

// Range is a closed interval [Min, Max].
type Range struct {
	Min float32 `yaml:"min"`
	Max float32 `yaml:"max"`
}

type AsteroidConfig struct {
	Limit         int         `yaml:"limit"`
	SpawnInterval float32     `yaml:"spawn_interval"`
	Mass          Range       `yaml:"mass"`
	VelocityX     Range       `yaml:"velocity_x"`
	VelocityY     Range       `yaml:"velocity_y"`
	SizeFactor    float32     `yaml:"size_factor"` // side = sqrt(mass) * factor
	Offspring     int         `yaml:"offspring"`   // one-time spawn carried by each asteroid
	SplitMass     float32     `yaml:"split_mass"`
	SplitSpread   float32     `yaml:"split_spread"`
	Policy        SpawnPolicy `yaml:"policy"`
	EdgeInward    Range       `yaml:"edge_inward"`
	EdgeTangent   float32     `yaml:"edge_tangent"`
}

type ResetConfig struct {
	PreloadIntervals float32 `yaml:"preload_intervals"`
	Epsilon          float32 `yaml:"epsilon"`
}

type InputConfig struct {
	// Terminals report presses but not releases, so a key counts as held
	// for this long after its last repeat.
	Hold time.Duration `yaml:"hold"`
}

// Default returns the stock tuning.
func Default() *Config {
	return &Config{
		Window: WindowConfig{Width: 1280, Height: 720},
		Tick:   TickConfig{FPS: 60, MaxDelta: 0.25},
		Ship: ShipConfig{
			InitialLives: 4,
			ResetLives:   5,
			Acceleration: 256 + 96,
			Deceleration: 96,
			RotationRate: 210,
			Size:         32,
			Mass:         100,
			BulletSpeed:  512,
			MuzzleOffset: 32,
		},
		Bullet: BulletConfig{Life: 5, Size: 8, Mass: 10, MissedShotAmount: 3},
		Asteroid: AsteroidConfig{
			Limit:         256,
			SpawnInterval: 3,
			Mass:          Range{Min: 16, Max: 256},
			VelocityX:     Range{Min: -300, Max: 300},
			VelocityY:     Range{Min: -250, Max: 250},
			SizeFactor:    6,
			Offspring:     1,
			SplitMass:     32,
			SplitSpread:   100,
			Policy:        SpawnUniform,
			EdgeInward:    Range{Min: 40, Max: 200},
			EdgeTangent:   120,
		},
		Reset: ResetConfig{PreloadIntervals: 3, Epsilon: 0.5},
		Input: InputConfig{Hold: 150 * time.Millisecond},
	}
}

// Load reads a YAML file over the defaults and validates the result.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	return Parse(data)
}

// Parse decodes YAML over the defaults and validates the result.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}
	return cfg, nil
}

// ErrNoWindow is returned when the world rectangle has no area. Every
// wraparound and spawn placement depends on it, so startup stops here.
var ErrNoWindow = errors.New("window extent must be positive")

// Validate checks the invariants the simulation relies on.
func (c *Config) Validate() error {
	var errs []error
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		errs = append(errs, fmt.Errorf("%w: got %gx%g", ErrNoWindow, c.Window.Width, c.Window.Height))
	}
	if c.Tick.FPS <= 0 {
		errs = append(errs, fmt.Errorf("tick.fps must be positive, got %d", c.Tick.FPS))
	}
	if c.Ship.Mass <= 0 || c.Bullet.Mass <= 0 {
		errs = append(errs, errors.New("ship and bullet mass must be positive"))
	}
	if c.Ship.InitialLives < 0 || c.Ship.ResetLives < 0 {
		errs = append(errs, errors.New("lives must not be negative"))
	}
	if c.Bullet.Life <= 0 {
		errs = append(errs, fmt.Errorf("bullet.life must be positive, got %g", c.Bullet.Life))
	}
	if c.Asteroid.SpawnInterval <= 0 {
		errs = append(errs, fmt.Errorf("asteroid.spawn_interval must be positive, got %g", c.Asteroid.SpawnInterval))
	}
	if c.Asteroid.Limit < 0 {
		errs = append(errs, errors.New("asteroid.limit must not be negative"))
	}
	if c.Asteroid.Mass.Min <= 0 || c.Asteroid.Mass.Max < c.Asteroid.Mass.Min {
		errs = append(errs, fmt.Errorf("asteroid.mass range invalid: [%g, %g]", c.Asteroid.Mass.Min, c.Asteroid.Mass.Max))
	}
	ranges := []struct {
		name string
		r    Range
	}{
		{"velocity_x", c.Asteroid.VelocityX},
		{"velocity_y", c.Asteroid.VelocityY},
		{"edge_inward", c.Asteroid.EdgeInward},
	}
	for _, nr := range ranges {
		if nr.r.Max < nr.r.Min {
			errs = append(errs, fmt.Errorf("asteroid.%s range invalid: [%g, %g]", nr.name, nr.r.Min, nr.r.Max))
		}
	}
	switch c.Asteroid.Policy {
	case SpawnUniform, SpawnEdge:
	default:
		errs = append(errs, fmt.Errorf("asteroid.policy %q unknown", c.Asteroid.Policy))
	}
	return errors.Join(errs...)
}

// SpawnPreload is the timer value a fresh recurring spawner starts with so
// that it bursts on the first tick.
func (c *Config) SpawnPreload() float32 {
	return c.Asteroid.SpawnInterval*c.Reset.PreloadIntervals - c.Reset.Epsilon
}

// RotationRadians converts the configured rotation rate.
func (c *Config) RotationRadians() float32 {
	return mgl32.DegToRad(c.Ship.RotationRate)
}
