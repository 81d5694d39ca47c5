package system

import (
	"testing"

	"asteroids/internal/component"
	"asteroids/internal/config"
	"asteroids/internal/ecs"
	"asteroids/internal/factory"
)

func TestUpdateScoreText(t *testing.T) {
	cfg := config.Default()
	w := ecs.NewWorld()
	ship := factory.Setup(w, cfg)
	board := ecs.NewQuery(w, ecs.Entity(), ecs.With[component.Scoreboard]{}).Entities()[0]
	ecs.Get[component.Scoreboard](w, board).Score = 3
	ecs.Get[component.PlayerShip](w, ship).Lives = 2

	UpdateScoreText(w, newTestContext(cfg))

	want := "Score: 3\nLives: 2"
	if got := ecs.Get[component.Text](w, board).Value; got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestUpdateScoreTextWithoutShip(t *testing.T) {
	w := ecs.NewWorld()
	board := factory.NewScoreboard(w)

	UpdateScoreText(w, newTestContext(config.Default()))
	if got := ecs.Get[component.Text](w, board).Value; got != "Score: 0" {
		t.Fatalf("expected %q, got %q", "Score: 0", got)
	}
}
