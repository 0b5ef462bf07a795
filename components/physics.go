package components

import "github.com/yohamta/donburi"

// VelocityData is the speed of a moving node in px/s
type VelocityData struct {
	X, Y float64
}

var Velocity = donburi.NewComponentType[VelocityData]()
