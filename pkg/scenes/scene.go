package scenes

import (
	"github.com/decker502/explosion/pkg/game"
)

// Scene is a type alias for game.Scene.
type Scene = game.Scene

var _ Scene = (*ExplosionScene)(nil)
