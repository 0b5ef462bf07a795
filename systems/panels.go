package systems

import (
	"github.com/automoto/flappy-gopher/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePanels advances panel fades and removes panels that finished
// fading out.
func UpdatePanels(e *ecs.ECS) {
	dt := deltaTime(e)
	var toRemove []*donburi.Entry

	components.Panel.Each(e.World, func(entry *donburi.Entry) {
		panel := components.Panel.Get(entry)
		step := dt

		if panel.Delay > 0 {
			panel.Delay -= step
			if panel.Delay > 0 {
				return
			}
			step = -panel.Delay
			panel.Delay = 0
		}

		if panel.SlideTween != nil {
			offset, done := panel.SlideTween.Update(float32(step))
			panel.OffsetY = float64(offset)
			if done {
				panel.SlideTween = nil
			}
		}
		if panel.FadeTween != nil {
			alpha, done := panel.FadeTween.Update(float32(step))
			panel.Alpha = float64(alpha)
			if done {
				panel.FadeTween = nil
				if panel.Closing {
					toRemove = append(toRemove, entry)
				}
			}
		}
	})

	for _, entry := range toRemove {
		entry.Remove()
	}
}

// CountPanels counts the live panels of a kind that are not fading out.
func CountPanels(e *ecs.ECS, kind components.PanelKind) int {
	n := 0
	components.Panel.Each(e.World, func(entry *donburi.Entry) {
		panel := components.Panel.Get(entry)
		if panel.Kind == kind && !panel.Closing {
			n++
		}
	})
	return n
}
