package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// Tween drives a looping value, such as the idle bob of the player.
var Tween = donburi.NewComponentType[gween.Sequence]()
