package factory

import (
	"math"

	"asteroids/internal/component"
	"asteroids/internal/config"
	"asteroids/internal/ecs"

	"github.com/gdamore/tcell/v2"
	"github.com/go-gl/mathgl/mgl32"
)

// NewShip creates the player ship at pos with the configured starting lives.
func NewShip(w *ecs.World, cfg *config.Config, pos mgl32.Vec3) ecs.EntityID {
	id := w.CreateEntity()
	ecs.Add(w, id, component.At(pos))
	ecs.Add(w, id, component.Physics{Mass: cfg.Ship.Mass})
	ecs.Add(w, id, component.Extent{Size: mgl32.Vec2{cfg.Ship.Size, cfg.Ship.Size}})
	ecs.Add(w, id, component.PlayerShip{Lives: cfg.Ship.InitialLives})
	ecs.Add(w, id, component.Renderable{FGColor: tcell.NewRGBColor(128, 128, 255)})
	return id
}

// NewScoreboard creates the HUD entity holding the score.
func NewScoreboard(w *ecs.World) ecs.EntityID {
	id := w.CreateEntity()
	ecs.Add(w, id, component.Scoreboard{})
	ecs.Add(w, id, component.Text{Value: "Score:"})
	return id
}

// NewSpawner creates a recurring asteroid spawner whose timer is preloaded
// so it bursts on the first tick.
func NewSpawner(w *ecs.World, cfg *config.Config) ecs.EntityID {
	id := w.CreateEntity()
	ecs.Add(w, id, component.AsteroidSpawner{Amount: 1, Timer: cfg.SpawnPreload()})
	return id
}

// NewBullet creates a projectile. A bullet that survives long enough trips
// its own spawner: missed shots feed the field.
func NewBullet(w *ecs.World, cfg *config.Config, pos, vel mgl32.Vec3) ecs.EntityID {
	id := w.CreateEntity()
	ecs.Add(w, id, component.At(pos))
	ecs.Add(w, id, component.Physics{Velocity: vel, Mass: cfg.Bullet.Mass})
	ecs.Add(w, id, component.Extent{Size: mgl32.Vec2{cfg.Bullet.Size, cfg.Bullet.Size}})
	ecs.Add(w, id, component.Bullet{})
	if cfg.Bullet.MissedShotAmount > 0 {
		ecs.Add(w, id, component.AsteroidSpawner{
			Amount: cfg.Bullet.MissedShotAmount,
			Timer:  cfg.Asteroid.SpawnInterval - cfg.Bullet.Life + 1,
		})
	}
	ecs.Add(w, id, component.Renderable{Glyph: '•', FGColor: tcell.NewRGBColor(178, 178, 25)})
	return id
}

// AsteroidSide returns the box side for an asteroid of the given mass.
func AsteroidSide(cfg *config.Config, mass float32) float32 {
	return float32(math.Sqrt(float64(mass))) * cfg.Asteroid.SizeFactor
}

// NewAsteroid creates an asteroid. Each one carries a one-time spawner so
// the field keeps growing unless it is cleared.
func NewAsteroid(w *ecs.World, cfg *config.Config, pos, vel mgl32.Vec3, mass float32) ecs.EntityID {
	id := w.CreateEntity()
	side := AsteroidSide(cfg, mass)
	ecs.Add(w, id, component.At(pos))
	ecs.Add(w, id, component.Physics{Velocity: vel, Mass: mass})
	ecs.Add(w, id, component.Extent{Size: mgl32.Vec2{side, side}})
	ecs.Add(w, id, component.Asteroid{})
	if cfg.Asteroid.Offspring > 0 {
		ecs.Add(w, id, component.AsteroidSpawner{OneTime: true, Amount: cfg.Asteroid.Offspring})
	}
	ecs.Add(w, id, component.Renderable{Glyph: '#', FGColor: tcell.NewRGBColor(178, 178, 178)})
	return id
}

// Setup creates the starting population: the ship at the origin, the
// scoreboard and one preloaded recurring spawner. It returns the ship.
func Setup(w *ecs.World, cfg *config.Config) ecs.EntityID {
	ship := NewShip(w, cfg, mgl32.Vec3{})
	NewScoreboard(w)
	NewSpawner(w, cfg)
	return ship
}
