package system

import (
	"io"
	"log/slog"
	"math/rand"

	"asteroids/internal/config"

	"github.com/go-gl/mathgl/mgl32"
)

// Input is the key state sampled once per tick. Fire and Restart are edge
// triggered: they are true only on the tick the key went down.
type Input struct {
	Left, Right   bool
	Forward, Back bool
	Fire, Restart bool
}

// Context carries every resource a system may touch during one tick. It is
// passed explicitly instead of being looked up from globals.
type Context struct {
	Delta  float32    // seconds since the previous tick
	Bounds mgl32.Vec2 // visible world width/height
	Input  Input
	Config *config.Config
	Rand   *rand.Rand
	Log    *slog.Logger

	// Written by the schedule for whoever drives the tick.
	Collisions CollisionReport // last collision pass
	Restarted  bool            // the reset system fired this tick
}

// NewContext builds a context for cfg with a discarding logger.
func NewContext(cfg *config.Config, rng *rand.Rand) *Context {
	return &Context{
		Bounds: mgl32.Vec2{cfg.Window.Width, cfg.Window.Height},
		Config: cfg,
		Rand:   rng,
		Log:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}
