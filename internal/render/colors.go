package render

import (
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/go-gl/mathgl/mgl32"
)

var (
	baseStyle = tcell.StyleDefault.Background(tcell.ColorBlack)
	hudStyle  = baseStyle.Foreground(tcell.ColorWhite)
	hintStyle = baseStyle.Foreground(tcell.ColorLightYellow).Bold(true)
)

// shipArrows are the eight headings, counter-clockwise from +x.
var shipArrows = [8]rune{'→', '↗', '↑', '↖', '←', '↙', '↓', '↘'}

// ShipGlyph picks the arrow closest to heading.
func ShipGlyph(heading mgl32.Vec3) rune {
	angle := math.Atan2(float64(heading[1]), float64(heading[0]))
	octant := int(math.Round(angle/(math.Pi/4))) % 8
	if octant < 0 {
		octant += 8
	}
	return shipArrows[octant]
}
