package system

import (
	"asteroids/internal/component"
	"asteroids/internal/ecs"
	"asteroids/internal/factory"

	"github.com/go-gl/mathgl/mgl32"
)

// Steer applies player input to every ship: rotation about z, thrust along
// the heading, a constant drag that brakes to a full stop, and firing.
// A ship with no lives left can still fly but cannot shoot.
func Steer(w *ecs.World, ctx *Context) {
	cfg := ctx.Config.Ship
	dt := ctx.Delta
	in := ctx.Input

	var turn float32
	if in.Left {
		turn++
	}
	if in.Right {
		turn--
	}
	var thrust float32
	if in.Back {
		thrust -= cfg.Acceleration
	}
	if in.Forward {
		thrust += cfg.Acceleration
	}

	q := ecs.NewQuery(w, ecs.Join3(
		ecs.Write[component.Physics](),
		ecs.Write[component.Transform](),
		ecs.Read[component.PlayerShip](),
	))
	var shots [][2]mgl32.Vec3
	for _, item := range q.Each() {
		phys, tf, ship := item.A, item.B, item.C

		if turn != 0 {
			spin := mgl32.QuatRotate(turn*ctx.Config.RotationRadians()*dt, mgl32.Vec3{0, 0, 1})
			tf.Rotation = tf.Rotation.Mul(spin).Normalize()
		}
		dir := tf.Heading()
		phys.Velocity = phys.Velocity.Add(dir.Mul(thrust * dt))

		drag := cfg.Deceleration * dt
		if speed := phys.Velocity.Len(); speed <= drag {
			phys.Velocity = mgl32.Vec3{}
		} else {
			phys.Velocity = phys.Velocity.Sub(phys.Velocity.Normalize().Mul(drag))
		}

		if in.Fire && ship.Lives > 0 {
			shots = append(shots, [2]mgl32.Vec3{
				tf.Translation.Add(dir.Mul(cfg.MuzzleOffset)),
				phys.Velocity.Add(dir.Mul(cfg.BulletSpeed)),
			})
		}
	}

	for _, s := range shots {
		factory.NewBullet(w, ctx.Config, s[0], s[1])
	}
}
