package system

import (
	"asteroids/internal/component"
	"asteroids/internal/config"
	"asteroids/internal/ecs"
	"asteroids/internal/factory"

	"github.com/go-gl/mathgl/mgl32"
)

// SpawnAsteroids runs every AsteroidSpawner's countdown. Each interval the
// timer crosses emits Amount asteroids; a one-time spawner removes itself
// after its first emission. While the field is at the asteroid limit the
// timers keep accumulating but nothing is emitted, so the owed intervals
// burst out once there is room again.
func SpawnAsteroids(w *ecs.World, ctx *Context) {
	cfg := ctx.Config
	interval := cfg.Asteroid.SpawnInterval
	full := w.Count(component.CAsteroid) >= cfg.Asteroid.Limit

	q := ecs.NewQuery(w, ecs.Join2(ecs.Entity(), ecs.Write[component.AsteroidSpawner]()))
	for _, item := range q.Each() {
		id, sp := item.A, item.B
		sp.Timer += ctx.Delta
		if full {
			continue
		}
		for sp.Timer >= interval {
			sp.Timer -= interval
			for i := 0; i < sp.Amount; i++ {
				pos, vel := placeAsteroid(ctx)
				factory.NewAsteroid(w, cfg, pos, vel, uniform(ctx, cfg.Asteroid.Mass))
			}
			if sp.OneTime {
				ecs.Remove[component.AsteroidSpawner](w, id)
				ctx.Log.Debug("spawner exhausted", "entity", id)
				break
			}
		}
	}
	if full {
		ctx.Log.Debug("asteroid limit reached", "limit", cfg.Asteroid.Limit)
	}
}

// placeAsteroid draws a spawn position and velocity using the configured policy.
func placeAsteroid(ctx *Context) (pos, vel mgl32.Vec3) {
	a := ctx.Config.Asteroid
	hw, hh := ctx.Bounds[0]/2, ctx.Bounds[1]/2
	if a.Policy != config.SpawnEdge {
		pos = mgl32.Vec3{
			uniform(ctx, config.Range{Min: -hw, Max: hw}),
			uniform(ctx, config.Range{Min: -hh, Max: hh}),
			0,
		}
		vel = mgl32.Vec3{uniform(ctx, a.VelocityX), uniform(ctx, a.VelocityY), 0}
		return pos, vel
	}

	inward := uniform(ctx, a.EdgeInward)
	tangent := uniform(ctx, config.Range{Min: -a.EdgeTangent, Max: a.EdgeTangent})
	switch ctx.Rand.Intn(4) {
	case 0: // left edge, drifting right
		pos = mgl32.Vec3{-hw, uniform(ctx, config.Range{Min: -hh, Max: hh}), 0}
		vel = mgl32.Vec3{inward, tangent, 0}
	case 1: // right edge
		pos = mgl32.Vec3{hw, uniform(ctx, config.Range{Min: -hh, Max: hh}), 0}
		vel = mgl32.Vec3{-inward, tangent, 0}
	case 2: // bottom edge
		pos = mgl32.Vec3{uniform(ctx, config.Range{Min: -hw, Max: hw}), -hh, 0}
		vel = mgl32.Vec3{tangent, inward, 0}
	default: // top edge
		pos = mgl32.Vec3{uniform(ctx, config.Range{Min: -hw, Max: hw}), hh, 0}
		vel = mgl32.Vec3{tangent, -inward, 0}
	}
	return pos, vel
}

// uniform draws from the closed range r.
func uniform(ctx *Context, r config.Range) float32 {
	return r.Min + ctx.Rand.Float32()*(r.Max-r.Min)
}
