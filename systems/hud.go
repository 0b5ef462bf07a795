package systems

import (
	"strconv"

	"github.com/automoto/flappy-gopher/components"
	cfg "github.com/automoto/flappy-gopher/config"
	"github.com/automoto/flappy-gopher/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/yohamta/donburi/ecs"
)

const (
	hudTopMargin    = 60
	hudShadowOffset = 2
)

// DrawHUD renders the score label while a run is on screen.
func DrawHUD(ecs *ecs.ECS, screen *ebiten.Image) {
	switch CurrentState(ecs) {
	case cfg.StateTutorial, cfg.StatePlay, cfg.StateFalling:
	default:
		return
	}
	entry, ok := gameEntry(ecs)
	if !ok {
		return
	}
	score := components.Score.Get(entry)

	face := fonts.Score.Get()
	label := strconv.Itoa(score.Current)
	bounds := text.BoundString(face, label)
	x := (screen.Bounds().Dx() - bounds.Dx()) / 2

	text.Draw(screen, label, face, x+hudShadowOffset, hudTopMargin+hudShadowOffset, cfg.Palette.TextShadow)
	text.Draw(screen, label, face, x, hudTopMargin, cfg.Palette.Text)
}
