package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// Space is the singleton collision space
var Space = donburi.NewComponentType[resolv.Space]()
