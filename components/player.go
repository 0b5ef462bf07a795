package components

import "github.com/yohamta/donburi"

type PlayerData struct {
	Rotation        float64 // radians, positive is nose down
	AngularVelocity float64 // radians per second
	LastFlapY       float64 // y at the last flap; dropping below it tips the nose down
	Grounded        bool    // resting on the ground after death
	BobTime         float64 // idle bob phase in the menu and tutorial
	BaseY           float64 // idle bob centre
}

var Player = donburi.NewComponentType[PlayerData]()
