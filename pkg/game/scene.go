package game

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Scene represents a viewer scene. Each scene has its own update and
// rendering logic.
type Scene interface {
	// Update advances the scene by deltaTime seconds.
	Update(deltaTime float64)

	// Draw renders the scene to the provided screen.
	Draw(screen *ebiten.Image)
}
