package components

import (
	"github.com/automoto/flappy-gopher/shared/leveldata"
	"github.com/yohamta/donburi"
)

// LevelData holds the world layout the scene was built from
type LevelData struct {
	World *leveldata.World
}

var Level = donburi.NewComponentType[LevelData]()
