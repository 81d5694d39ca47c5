package system

import (
	"math/rand"
	"slices"
	"testing"

	"asteroids/internal/component"
	"asteroids/internal/config"
	"asteroids/internal/ecs"
	"asteroids/internal/factory"
)

const tickDelta = float32(1) / 60

func newTestContext(cfg *config.Config) *Context {
	ctx := NewContext(cfg, rand.New(rand.NewSource(42)))
	ctx.Delta = tickDelta
	return ctx
}

func TestDefaultScheduleOrder(t *testing.T) {
	want := []string{"steer", "integrate", "collide", "spawn", "expire", "reset", "score_text"}
	got := DefaultSchedule().Names()
	if !slices.Equal(got, want) {
		t.Fatalf("expected order %v, got %v", want, got)
	}
}

func TestScheduleRunsInDeclaredOrder(t *testing.T) {
	var calls []string
	record := func(name string) System {
		return System{Name: name, Run: func(*ecs.World, *Context) { calls = append(calls, name) }}
	}
	s := NewSchedule(record("a"), record("b"), record("c"))
	s.Tick(ecs.NewWorld(), newTestContext(config.Default()))
	s.Tick(ecs.NewWorld(), newTestContext(config.Default()))

	want := []string{"a", "b", "c", "a", "b", "c"}
	if !slices.Equal(calls, want) {
		t.Fatalf("expected %v, got %v", want, calls)
	}
}

// A long seeded run with random input must keep every invariant the HUD
// and the collision pass rely on.
func TestLongRunKeepsInvariants(t *testing.T) {
	cfg := config.Default()
	w := ecs.NewWorld()
	ship := factory.Setup(w, cfg)
	ctx := newTestContext(cfg)
	input := rand.New(rand.NewSource(7))
	sched := DefaultSchedule()

	lastScore := 0
	for i := 0; i < 600; i++ {
		ctx.Input = Input{
			Left:    input.Intn(3) == 0,
			Right:   input.Intn(3) == 0,
			Forward: input.Intn(2) == 0,
			Fire:    input.Intn(5) == 0,
		}
		sched.Tick(w, ctx)

		if !w.Alive(ship) {
			t.Fatalf("tick %d: ship destroyed", i)
		}
		lives := ecs.Get[component.PlayerShip](w, ship).Lives
		if lives < 0 {
			t.Fatalf("tick %d: lives went negative: %d", i, lives)
		}
		score := ecs.NewQuery(w, ecs.Read[component.Scoreboard]()).Collect()[0].Score
		if score < lastScore {
			t.Fatalf("tick %d: score dropped from %d to %d without reset", i, lastScore, score)
		}
		lastScore = score

		for id, tf := range ecs.NewQuery(w, ecs.Read[component.Transform]()).Each() {
			x, y := tf.Translation[0], tf.Translation[1]
			if x < -cfg.Window.Width/2 || x >= cfg.Window.Width/2 || y < -cfg.Window.Height/2 || y >= cfg.Window.Height/2 {
				t.Fatalf("tick %d: entity %d outside window at (%g,%g)", i, id, x, y)
			}
		}
	}
	if w.Count(component.CAsteroid) == 0 {
		t.Fatal("expected the spawner to have populated the field")
	}
}
