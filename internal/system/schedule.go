package system

import "asteroids/internal/ecs"

// System is one named step of a tick.
type System struct {
	Name string
	Run  func(w *ecs.World, ctx *Context)
}

// Schedule runs systems in declared order. Order is what makes a tick
// correct: no system starts before the previous one has returned.
type Schedule struct {
	systems []System
}

// NewSchedule creates a schedule from systems in run order.
func NewSchedule(systems ...System) *Schedule {
	return &Schedule{systems: systems}
}

// DefaultSchedule is the game tick: input, movement, collision, spawning,
// cleanup, restart and finally the HUD text the presenter reads.
func DefaultSchedule() *Schedule {
	return NewSchedule(
		System{Name: "steer", Run: Steer},
		System{Name: "integrate", Run: Integrate},
		System{Name: "collide", Run: func(w *ecs.World, ctx *Context) { ctx.Collisions = Collide(w, ctx) }},
		System{Name: "spawn", Run: SpawnAsteroids},
		System{Name: "expire", Run: ExpireBullets},
		System{Name: "reset", Run: func(w *ecs.World, ctx *Context) { ctx.Restarted = Reset(w, ctx) }},
		System{Name: "score_text", Run: UpdateScoreText},
	)
}

// Names lists the systems in run order.
func (s *Schedule) Names() []string {
	names := make([]string, len(s.systems))
	for i, sys := range s.systems {
		names[i] = sys.Name
	}
	return names
}

// Tick advances the world by one step.
func (s *Schedule) Tick(w *ecs.World, ctx *Context) {
	for _, sys := range s.systems {
		sys.Run(w, ctx)
	}
}
