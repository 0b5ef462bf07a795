package factory

import (
	"github.com/automoto/flappy-gopher/archetypes"
	"github.com/automoto/flappy-gopher/components"
	"github.com/yohamta/donburi/ecs"
)

func CreateCamera(ecs *ecs.ECS) {
	camera := archetypes.Camera.Spawn(ecs)
	components.Camera.Set(camera, &components.CameraData{})
}
