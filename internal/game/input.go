package game

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// point is one press or release this tick, from the mouse or a finger.
type point struct{ x, y float64 }

// pointerEvents collects this tick's presses and releases. Mouse and touch
// land in the same lists so buttons and tiles treat them alike.
func pointerEvents() (down, up []point) {
	mx, my := ebiten.CursorPosition()
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		down = append(down, point{float64(mx), float64(my)})
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		up = append(up, point{float64(mx), float64(my)})
	}
	for _, id := range inpututil.AppendJustPressedTouchIDs(nil) {
		x, y := ebiten.TouchPosition(id)
		down = append(down, point{float64(x), float64(y)})
	}
	// a released touch no longer has a current position
	for _, id := range inpututil.AppendJustReleasedTouchIDs(nil) {
		x, y := inpututil.TouchPositionInPreviousTick(id)
		up = append(up, point{float64(x), float64(y)})
	}
	return down, up
}
