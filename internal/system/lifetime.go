package system

import (
	"asteroids/internal/component"
	"asteroids/internal/ecs"
)

// ExpireBullets ages every bullet by the tick delta and destroys the ones
// that have lived for the configured bullet life.
func ExpireBullets(w *ecs.World, ctx *Context) {
	life := ctx.Config.Bullet.Life
	for id, b := range ecs.NewQuery(w, ecs.Write[component.Bullet]()).Each() {
		b.Lifetime += ctx.Delta
		if b.Lifetime >= life {
			w.DestroyEntity(id)
		}
	}
}
