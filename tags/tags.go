package tags

import "github.com/yohamta/donburi"

var (
	Player     = donburi.NewTag().SetName("Player")
	Obstacle   = donburi.NewTag().SetName("Obstacle")
	Ground     = donburi.NewTag().SetName("Ground")
	Background = donburi.NewTag().SetName("Background")
	Ghost      = donburi.NewTag().SetName("Ghost")
)

// Resolv tags for collision categories
const (
	ResolvPlayer   = "player"
	ResolvObstacle = "obstacle"
	ResolvGround   = "ground"
)
