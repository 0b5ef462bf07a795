package factory

import (
	"github.com/automoto/flappy-gopher/archetypes"
	"github.com/automoto/flappy-gopher/components"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// SpawnOverlay creates a full-screen overlay fading from alpha 1 to 0.
func SpawnOverlay(ecs *ecs.ECS, kind components.OverlayKind, duration float64) *donburi.Entry {
	overlay := archetypes.Overlay.Spawn(ecs)
	components.Overlay.SetValue(overlay, components.OverlayData{
		Kind:  kind,
		Alpha: 1,
		Tween: gween.New(1, 0, float32(duration), ease.OutQuad),
	})
	return overlay
}
