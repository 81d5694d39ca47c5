package system

import (
	"asteroids/internal/component"
	"asteroids/internal/ecs"
	"asteroids/internal/factory"
)

// Reset restarts the round when the restart key was pressed this tick.
// Ships keep their place and get their lives back; every other entity with
// Physics or a spawner is destroyed. Scores drop to zero and a fresh
// preloaded spawner is created, so the next tick already has asteroids.
// It reports whether a reset happened.
func Reset(w *ecs.World, ctx *Context) bool {
	if !ctx.Input.Restart {
		return false
	}

	q := ecs.NewQuery(w,
		ecs.Join2(ecs.Entity(), ecs.OptMut[component.PlayerShip]()),
		ecs.Or(ecs.With[component.Physics]{}, ecs.With[component.AsteroidSpawner]{}),
	)
	destroyed := 0
	for _, item := range q.Each() {
		if ship, ok := item.B.Get(); ok {
			ship.Lives = ctx.Config.Ship.ResetLives
			continue
		}
		w.DestroyEntity(item.A)
		destroyed++
	}

	for _, sb := range ecs.NewQuery(w, ecs.Write[component.Scoreboard]()).Each() {
		sb.Score = 0
	}
	factory.NewSpawner(w, ctx.Config)

	ctx.Log.Debug("world reset", "destroyed", destroyed)
	return true
}
