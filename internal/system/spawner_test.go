package system

import (
	"testing"

	"asteroids/internal/component"
	"asteroids/internal/config"
	"asteroids/internal/ecs"
	"asteroids/internal/factory"

	"github.com/go-gl/mathgl/mgl32"
)

func newSpawner(w *ecs.World, sp component.AsteroidSpawner) ecs.EntityID {
	id := w.CreateEntity()
	ecs.Add(w, id, sp)
	return id
}

func TestSpawnerDrainsEveryInterval(t *testing.T) {
	cfg := config.Default()
	cfg.Asteroid.Offspring = 0
	w := ecs.NewWorld()
	sp := newSpawner(w, component.AsteroidSpawner{Amount: 2})

	ctx := newTestContext(cfg)
	ctx.Delta = 7 // two full intervals of 3s plus one second
	SpawnAsteroids(w, ctx)

	if n := w.Count(component.CAsteroid); n != 4 {
		t.Fatalf("expected 4 asteroids, got %d", n)
	}
	if timer := ecs.Get[component.AsteroidSpawner](w, sp).Timer; timer != 1 {
		t.Fatalf("expected timer 1, got %g", timer)
	}
}

func TestSpawnerWaitsForInterval(t *testing.T) {
	cfg := config.Default()
	w := ecs.NewWorld()
	newSpawner(w, component.AsteroidSpawner{Amount: 1, Timer: 2.9})

	ctx := newTestContext(cfg)
	ctx.Delta = 0.05
	SpawnAsteroids(w, ctx)
	if n := w.Count(component.CAsteroid); n != 0 {
		t.Fatalf("expected no asteroids before the interval, got %d", n)
	}
}

func TestOneTimeSpawnerRemovesItself(t *testing.T) {
	cfg := config.Default()
	cfg.Asteroid.Offspring = 0
	w := ecs.NewWorld()
	sp := newSpawner(w, component.AsteroidSpawner{OneTime: true, Amount: 1})

	ctx := newTestContext(cfg)
	ctx.Delta = 10
	SpawnAsteroids(w, ctx)

	if n := w.Count(component.CAsteroid); n != 1 {
		t.Fatalf("expected exactly 1 asteroid, got %d", n)
	}
	if ecs.Has[component.AsteroidSpawner](w, sp) {
		t.Fatal("one-time spawner should have been removed")
	}
	if !w.Alive(sp) {
		t.Fatal("owning entity must survive its spawner")
	}
}

func TestAdmissionCeiling(t *testing.T) {
	cfg := config.Default()
	cfg.Asteroid.Limit = 5
	cfg.Asteroid.Offspring = 0
	w := ecs.NewWorld()
	var field []ecs.EntityID
	for i := 0; i < 5; i++ {
		field = append(field, factory.NewAsteroid(w, cfg, mgl32.Vec3{}, mgl32.Vec3{}, 16))
	}
	sp := newSpawner(w, component.AsteroidSpawner{Amount: 1, Timer: 2})

	ctx := newTestContext(cfg)
	ctx.Delta = 5
	SpawnAsteroids(w, ctx)
	if n := w.Count(component.CAsteroid); n != 5 {
		t.Fatalf("expected count held at 5, got %d", n)
	}
	if timer := ecs.Get[component.AsteroidSpawner](w, sp).Timer; timer != 7 {
		t.Fatalf("expected timer to keep accumulating to 7, got %g", timer)
	}

	// Room frees up: the owed intervals come out together.
	w.DestroyEntity(field[0])
	w.DestroyEntity(field[1])
	ctx.Delta = 0
	SpawnAsteroids(w, ctx)
	if n := w.Count(component.CAsteroid); n != 5 {
		t.Fatalf("expected burst of 2 to refill the field, got %d", n)
	}
	if timer := ecs.Get[component.AsteroidSpawner](w, sp).Timer; timer != 1 {
		t.Fatalf("expected timer 1 after draining, got %g", timer)
	}
}

func TestUniformPlacementStaysInWindow(t *testing.T) {
	cfg := config.Default()
	ctx := newTestContext(cfg)
	a := cfg.Asteroid
	for i := 0; i < 500; i++ {
		pos, vel := placeAsteroid(ctx)
		if pos[0] < -640 || pos[0] > 640 || pos[1] < -360 || pos[1] > 360 {
			t.Fatalf("position %v outside window", pos)
		}
		if vel[0] < a.VelocityX.Min || vel[0] > a.VelocityX.Max || vel[1] < a.VelocityY.Min || vel[1] > a.VelocityY.Max {
			t.Fatalf("velocity %v outside configured ranges", vel)
		}
	}
}

func TestEdgePlacementDriftsInward(t *testing.T) {
	cfg := config.Default()
	cfg.Asteroid.Policy = config.SpawnEdge
	ctx := newTestContext(cfg)
	hw, hh := cfg.Window.Width/2, cfg.Window.Height/2

	seen := map[string]bool{}
	for i := 0; i < 500; i++ {
		pos, vel := placeAsteroid(ctx)
		switch {
		case pos[0] == -hw:
			seen["left"] = true
			if vel[0] <= 0 {
				t.Fatalf("left edge spawn moving out: %v", vel)
			}
		case pos[0] == hw:
			seen["right"] = true
			if vel[0] >= 0 {
				t.Fatalf("right edge spawn moving out: %v", vel)
			}
		case pos[1] == -hh:
			seen["bottom"] = true
			if vel[1] <= 0 {
				t.Fatalf("bottom edge spawn moving out: %v", vel)
			}
		case pos[1] == hh:
			seen["top"] = true
			if vel[1] >= 0 {
				t.Fatalf("top edge spawn moving out: %v", vel)
			}
		default:
			t.Fatalf("spawn %v not on any edge", pos)
		}
	}
	if len(seen) != 4 {
		t.Fatalf("expected spawns on all four edges, got %v", seen)
	}
}

// A bullet that stays in flight long enough feeds the field.
func TestMissedShotSpawnsAsteroids(t *testing.T) {
	cfg := config.Default()
	cfg.Asteroid.Offspring = 0
	w := ecs.NewWorld()
	factory.NewBullet(w, cfg, mgl32.Vec3{}, mgl32.Vec3{})

	ctx := newTestContext(cfg)
	ctx.Delta = 3.5
	SpawnAsteroids(w, ctx)
	if n := w.Count(component.CAsteroid); n != 0 {
		t.Fatalf("expected no asteroids yet, got %d", n)
	}
	ctx.Delta = 0.5
	SpawnAsteroids(w, ctx)
	if n := w.Count(component.CAsteroid); n != cfg.Bullet.MissedShotAmount {
		t.Fatalf("expected %d asteroids, got %d", cfg.Bullet.MissedShotAmount, n)
	}
}
