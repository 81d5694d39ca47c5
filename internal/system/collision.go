package system

import (
	"asteroids/internal/component"
	"asteroids/internal/ecs"
	"asteroids/internal/factory"

	"github.com/go-gl/mathgl/mgl32"
)

// Side is the face of the left box that touches the right box.
type Side uint8

const (
	SideNone   Side = iota // no overlap
	SideLeft               // left box hits from the left
	SideRight              // left box hits from the right
	SideTop                // left box sits above
	SideBottom             // left box sits below
)

func (s Side) String() string {
	switch s {
	case SideLeft:
		return "left"
	case SideRight:
		return "right"
	case SideTop:
		return "top"
	case SideBottom:
		return "bottom"
	}
	return "none"
}

// Contact tests two axis-aligned boxes (centre + full size) for overlap and
// reports which side of a touched b. Touching edges do not overlap. When a
// crosses one of b's faces on both axes, the shallower penetration wins.
// A box that crosses no face of the other (containment) has no side and
// reports SideNone.
func Contact(aPos mgl32.Vec3, aSize mgl32.Vec2, bPos mgl32.Vec3, bSize mgl32.Vec2) Side {
	aMin := aPos.Vec2().Sub(aSize.Mul(0.5))
	aMax := aPos.Vec2().Add(aSize.Mul(0.5))
	bMin := bPos.Vec2().Sub(bSize.Mul(0.5))
	bMax := bPos.Vec2().Add(bSize.Mul(0.5))

	if !(aMin[0] < bMax[0] && aMax[0] > bMin[0] && aMin[1] < bMax[1] && aMax[1] > bMin[1]) {
		return SideNone
	}

	xSide, xDepth := SideNone, float32(0)
	switch {
	case aMin[0] < bMin[0] && aMax[0] > bMin[0] && aMax[0] < bMax[0]:
		xSide, xDepth = SideLeft, bMin[0]-aMax[0]
	case aMin[0] > bMin[0] && aMin[0] < bMax[0] && aMax[0] > bMax[0]:
		xSide, xDepth = SideRight, aMin[0]-bMax[0]
	}

	ySide, yDepth := SideNone, float32(0)
	switch {
	case aMin[1] < bMin[1] && aMax[1] > bMin[1] && aMax[1] < bMax[1]:
		ySide, yDepth = SideBottom, bMin[1]-aMax[1]
	case aMin[1] > bMin[1] && aMin[1] < bMax[1] && aMax[1] > bMax[1]:
		ySide, yDepth = SideTop, aMin[1]-bMax[1]
	}

	switch {
	case xSide != SideNone && ySide != SideNone:
		if abs32(yDepth) < abs32(xDepth) {
			return ySide
		}
		return xSide
	case xSide != SideNone:
		return xSide
	case ySide != SideNone:
		return ySide
	}
	return SideNone
}

// Role is what an entity's component set makes it in a collision.
type Role uint8

const (
	RoleNone Role = iota
	RoleShip
	RoleBullet
	RoleAsteroid
)

// Outcome is the resolution rule for a colliding pair.
type Outcome uint8

const (
	OutcomeIgnore     Outcome = iota // detected, nothing changes
	OutcomeBounce                    // velocities reflected
	OutcomeShipHit                   // ship loses a life, then bounce
	OutcomeAnnihilate                // bullet and asteroid destroyed, score, split
)

// Classify picks the rule for a pair. It is symmetric in its arguments.
func Classify(a, b Role) Outcome {
	if a > b {
		a, b = b, a
	}
	switch {
	case a == RoleAsteroid && b == RoleAsteroid:
		return OutcomeBounce
	case a == RoleBullet && b == RoleBullet:
		return OutcomeBounce
	case a == RoleShip && b == RoleAsteroid:
		return OutcomeShipHit
	case a == RoleBullet && b == RoleAsteroid:
		return OutcomeAnnihilate
	}
	// ship vs bullet, ship vs ship and anything without a role.
	return OutcomeIgnore
}

// CollisionReport summarises one collision pass.
type CollisionReport struct {
	Pairs    int // pairs tested
	Contacts int // pairs overlapping
	Bounces  int
	ShipHits int
	Kills    int // bullet/asteroid annihilations
	Splits   int
}

// collider is one snapshot slot. Physics and the ship are live pointers;
// the rest is copied when the pass starts.
type collider struct {
	id     ecs.EntityID
	role   Role
	phys   *component.Physics
	ship   *component.PlayerShip
	pos    mgl32.Vec3
	extent mgl32.Vec2
}

// roleShape binds a ship mutably or tags a bullet or asteroid. Entities
// matching none of them still collide, with RoleNone.
type roleShape = ecs.Option[ecs.Either[*component.PlayerShip, ecs.Either[component.Bullet, component.Asteroid]]]

func colliderQuery(w *ecs.World) *ecs.Query[ecs.Tuple4[ecs.Tuple2[ecs.EntityID, *component.Physics], component.Transform, component.Extent, roleShape]] {
	role := ecs.Maybe(ecs.EitherOf(
		ecs.Write[component.PlayerShip](),
		ecs.EitherOf(ecs.Read[component.Bullet](), ecs.Read[component.Asteroid]()),
	))
	return ecs.NewQuery(w, ecs.Join4(
		ecs.Join2(ecs.Entity(), ecs.Write[component.Physics]()),
		ecs.Read[component.Transform](),
		ecs.Read[component.Extent](),
		role,
	))
}

func snapshotColliders(w *ecs.World) []collider {
	var out []collider
	for _, item := range colliderQuery(w).Each() {
		c := collider{
			id:     item.A.A,
			phys:   item.A.B,
			pos:    item.B.Translation,
			extent: item.C.Size,
		}
		if r, ok := item.D.Get(); ok {
			if ship, ok := r.Left(); ok {
				c.role, c.ship = RoleShip, ship
			} else if inner, _ := r.Right(); inner.IsLeft() {
				c.role = RoleBullet
			} else {
				c.role = RoleAsteroid
			}
		}
		out = append(out, c)
	}
	return out
}

// Collide tests every unordered pair of colliding entities once, in
// snapshot order, and applies the rule Classify picks. Destruction is
// immediate: a destroyed slot is tombstoned and every later pair that
// names it is skipped. Fragments spawned by a split join the next pass.
func Collide(w *ecs.World, ctx *Context) CollisionReport {
	var rep CollisionReport
	snap := snapshotColliders(w)
	dead := make([]bool, len(snap))

	for i := 0; i < len(snap); i++ {
		for j := i + 1; j < len(snap); j++ {
			if dead[i] {
				break
			}
			if dead[j] {
				continue
			}
			rep.Pairs++
			l, r := &snap[i], &snap[j]
			side := Contact(l.pos, l.extent, r.pos, r.extent)
			if side == SideNone {
				continue
			}
			rep.Contacts++

			switch Classify(l.role, r.role) {
			case OutcomeBounce:
				if bounce(side, l.phys, r.phys) {
					rep.Bounces++
				}
			case OutcomeShipHit:
				ship := l.ship
				if ship == nil {
					ship = r.ship
				}
				ship.LoseLife()
				rep.ShipHits++
				if bounce(side, l.phys, r.phys) {
					rep.Bounces++
				}
				ctx.Log.Debug("ship hit", "lives", ship.Lives)
			case OutcomeAnnihilate:
				ast := l
				if r.role == RoleAsteroid {
					ast = r
				}
				w.DestroyEntity(l.id)
				w.DestroyEntity(r.id)
				dead[i], dead[j] = true, true
				score(w)
				rep.Kills++
				if split(w, ctx, ast) {
					rep.Splits++
				}
			}
		}
	}
	return rep
}

// bounce flips each side's velocity on the contact axis so the pair moves
// apart, and reports whether any velocity changed. Mass is not involved.
func bounce(side Side, left, right *component.Physics) bool {
	before := [2]mgl32.Vec3{left.Velocity, right.Velocity}
	switch side {
	case SideTop:
		left.Velocity[1] = abs32(left.Velocity[1])
		right.Velocity[1] = -abs32(right.Velocity[1])
	case SideBottom:
		left.Velocity[1] = -abs32(left.Velocity[1])
		right.Velocity[1] = abs32(right.Velocity[1])
	case SideLeft:
		left.Velocity[0] = -abs32(left.Velocity[0])
		right.Velocity[0] = abs32(right.Velocity[0])
	case SideRight:
		left.Velocity[0] = abs32(left.Velocity[0])
		right.Velocity[0] = -abs32(right.Velocity[0])
	}
	return left.Velocity != before[0] || right.Velocity != before[1]
}

// score adds one point to every scoreboard.
func score(w *ecs.World) {
	for _, sb := range ecs.NewQuery(w, ecs.Write[component.Scoreboard]()).Each() {
		sb.Score++
	}
}

// split replaces a heavy asteroid with two half-mass fragments drifting
// apart along the perpendicular of its heading.
func split(w *ecs.World, ctx *Context, ast *collider) bool {
	cfg := ctx.Config
	mass := ast.phys.Mass
	if mass <= cfg.Asteroid.SplitMass {
		return false
	}
	vel := ast.phys.Velocity
	dir := mgl32.Vec3{1, 0, 0}
	if vel.Len() > 0 {
		dir = vel.Normalize()
	}
	perp := mgl32.Vec3{-dir[1], dir[0], 0}.Mul(cfg.Asteroid.SplitSpread)

	half := mass / 2
	factory.NewAsteroid(w, cfg, ast.pos, vel.Add(perp), half)
	factory.NewAsteroid(w, cfg, ast.pos, vel.Sub(perp), half)
	ctx.Log.Debug("asteroid split", "entity", ast.id, "mass", mass)
	return true
}

func abs32(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}
