package factory

import (
	"github.com/automoto/flappy-gopher/archetypes"
	"github.com/automoto/flappy-gopher/components"
	cfg "github.com/automoto/flappy-gopher/config"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreatePanel spawns a state-owned panel that slides and fades in after
// delay seconds.
func CreatePanel(ecs *ecs.ECS, kind components.PanelKind, owner cfg.GameStateID, delay float64) *donburi.Entry {
	panel := archetypes.Panel.Spawn(ecs)

	fadeIn := float32(cfg.Timing.PanelFadeIn)
	slide := float32(cfg.Panel.SlideOffsetY)
	if kind == components.PanelScorecard {
		fadeIn = float32(cfg.Timing.ScoreCardDuration)
	}

	components.Panel.SetValue(panel, components.PanelData{
		Kind:       kind,
		Owner:      owner,
		OffsetY:    float64(slide),
		FadeTween:  gween.New(0, 1, fadeIn, ease.OutQuad),
		SlideTween: gween.New(slide, 0, fadeIn, ease.OutBack),
		Delay:      delay,
		Dirty:      true,
	})
	return panel
}

// ClosePanel starts the fade out. The panel entity is removed once the
// fade finishes.
func ClosePanel(panel *components.PanelData) {
	if panel.Closing {
		return
	}
	panel.Closing = true
	panel.Delay = 0
	panel.FadeTween = gween.New(float32(panel.Alpha), 0, float32(cfg.Timing.PanelFadeOut), ease.InQuad)
	panel.SlideTween = nil
}
