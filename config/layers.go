package config

import "github.com/yohamta/donburi/ecs"

// Default is the ECS layer every entity is created on. Draw order is
// decided by the Z values below instead.
const Default ecs.LayerID = 0

// Draw order, back to front
const (
	ZBackground = iota
	ZMidground
	ZObstacles
	ZForeground
	ZPlayer
	ZGhost
)
