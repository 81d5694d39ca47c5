package render

import (
	"strings"

	"asteroids/internal/component"
	"asteroids/internal/ecs"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// GameOverHint is shown while a ship has no lives left.
const GameOverHint = "GAME OVER  press R to restart"

// DrawHUD renders every Text entity in the top-left corner, one line per
// row, then shows the frame.
func (r *Renderer) DrawHUD(w *ecs.World) {
	row := 0
	for _, text := range ecs.NewQuery(w, ecs.Read[component.Text](), ecs.Without[component.Transform]{}).Each() {
		for _, line := range strings.Split(text.Value, "\n") {
			r.drawText(1, row, line, hudStyle)
			row++
		}
	}

	for _, ship := range ecs.NewQuery(w, ecs.Read[component.PlayerShip]()).Each() {
		if ship.Lives == 0 {
			cols, rows := r.screen.Size()
			x := (cols - runewidth.StringWidth(GameOverHint)) / 2
			r.drawText(max(x, 0), rows/2, GameOverHint, hintStyle)
			break
		}
	}

	r.screen.Show()
}

func (r *Renderer) drawText(x, y int, text string, style tcell.Style) {
	col := x
	for _, ch := range text {
		r.screen.SetContent(col, y, ch, nil, style)
		col += max(runewidth.RuneWidth(ch), 1)
	}
}
