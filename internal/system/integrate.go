package system

import (
	"math"
	"runtime"

	"asteroids/internal/component"
	"asteroids/internal/ecs"

	"github.com/go-gl/mathgl/mgl32"
	"golang.org/x/sync/errgroup"
)

// minChunk keeps tiny worlds on one goroutine.
const minChunk = 64

type mover struct {
	velocity  mgl32.Vec3
	transform *component.Transform
}

// Integrate advances every Physics+Transform entity by velocity*dt and wraps
// it back into the window. Each entity touches only its own transform, so
// the snapshot is split into chunks that run in parallel; Integrate returns
// only after every chunk is done.
func Integrate(w *ecs.World, ctx *Context) {
	q := ecs.NewQuery(w, ecs.Join2(ecs.Read[component.Physics](), ecs.Write[component.Transform]()))
	var movers []mover
	for _, item := range q.Each() {
		movers = append(movers, mover{velocity: item.A.Velocity, transform: item.B})
	}
	if len(movers) == 0 {
		return
	}

	dt := ctx.Delta
	bounds := ctx.Bounds
	step := func(chunk []mover) {
		for _, m := range chunk {
			t := m.transform.Translation.Add(m.velocity.Mul(dt))
			m.transform.Translation = Wrap(t, bounds)
		}
	}

	workers := runtime.GOMAXPROCS(0)
	size := (len(movers) + workers - 1) / workers
	if size < minChunk {
		size = minChunk
	}
	if size >= len(movers) {
		step(movers)
		return
	}

	var g errgroup.Group
	for start := 0; start < len(movers); start += size {
		chunk := movers[start:min(start+size, len(movers))]
		g.Go(func() error {
			step(chunk)
			return nil
		})
	}
	_ = g.Wait()
}

// Wrap folds a translation into [-w/2, w/2) x [-h/2, h/2), leaving z alone.
// Values already inside the window are returned unchanged. It is exact only
// while the displacement since the last wrap is smaller than the extent on
// that axis; bigger jumps land on the wrong side.
func Wrap(t mgl32.Vec3, extent mgl32.Vec2) mgl32.Vec3 {
	t[0] = wrapAxis(t[0], extent[0])
	t[1] = wrapAxis(t[1], extent[1])
	return t
}

func wrapAxis(v, size float32) float32 {
	half := 0.5 * size
	if v >= -half && v < half {
		return v
	}
	s := float64(size)
	r := float32(math.Mod(float64(v)+1.5*s, s) - 0.5*s)
	// Rounding back to float32 can land a value on the upper edge.
	if r >= half {
		r -= size
	}
	return r
}
