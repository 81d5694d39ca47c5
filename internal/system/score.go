package system

import (
	"fmt"
	"strings"

	"asteroids/internal/component"
	"asteroids/internal/ecs"
)

// UpdateScoreText rewrites the HUD text of every scoreboard: the score on
// the first line, then one "Lives" line per ship.
func UpdateScoreText(w *ecs.World, _ *Context) {
	var lives []int8
	for _, ship := range ecs.NewQuery(w, ecs.Read[component.PlayerShip]()).Each() {
		lives = append(lives, ship.Lives)
	}

	q := ecs.NewQuery(w, ecs.Join2(ecs.Write[component.Text](), ecs.Read[component.Scoreboard]()))
	for _, item := range q.Each() {
		var b strings.Builder
		fmt.Fprintf(&b, "Score: %d", item.B.Score)
		for _, l := range lives {
			fmt.Fprintf(&b, "\nLives: %d", l)
		}
		item.A.Value = b.String()
	}
}
