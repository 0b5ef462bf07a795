// Package ui builds the ebitenui layouts shown by each game state. The
// panels only display; taps are routed by screen half in the systems
// package.
package ui

import (
	"fmt"
	"image/color"

	"github.com/automoto/flappy-gopher/components"
	cfg "github.com/automoto/flappy-gopher/config"
	"github.com/automoto/flappy-gopher/fonts"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
)

// Build creates the UI for a panel from its current content.
func Build(p *components.PanelData) *ebitenui.UI {
	root := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	var content *widget.Container
	switch p.Kind {
	case components.PanelMenu:
		content = buildMenu(p)
	case components.PanelTutorial:
		content = buildTutorial()
	default:
		content = buildScorecard(p)
	}
	root.AddChild(content)

	return &ebitenui.UI{Container: root}
}

func column(vertical widget.AnchorLayoutPosition, spacing int) *widget.Container {
	return widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(8)),
			widget.RowLayoutOpts.Spacing(spacing),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   vertical,
			}),
		),
	)
}

func label(str string, name fonts.FontName, c color.Color) *widget.Label {
	face := name.Face()
	return widget.NewLabel(
		widget.LabelOpts.Text(str, &face, &widget.LabelColor{Idle: c}),
		widget.LabelOpts.TextOpts(
			widget.TextOpts.WidgetOpts(widget.WidgetOpts.LayoutData(widget.RowLayoutData{
				Position: widget.RowLayoutPositionCenter,
			})),
		),
	)
}

func centered(w *widget.Container) *widget.Container {
	w.GetWidget().LayoutData = widget.RowLayoutData{Position: widget.RowLayoutPositionCenter}
	return w
}

// plates lays out the left (primary) and right (secondary) tap hints.
func plates(left, right string) *widget.Container {
	row := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Spacing(24),
		)),
	)
	row.AddChild(plate(left, cfg.Panel.PlateLeft), plate(right, cfg.Panel.PlateRight))
	return centered(row)
}

func plate(str string, bg color.Color) *widget.Container {
	c := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewBorderedNineSliceColor(bg, cfg.Panel.Border, 2)),
		widget.ContainerOpts.Layout(widget.NewAnchorLayout(
			widget.AnchorLayoutOpts.Padding(&widget.Insets{Top: 6, Bottom: 6, Left: 14, Right: 14}),
		)),
		widget.ContainerOpts.WidgetOpts(widget.WidgetOpts.MinSize(104, 0)),
	)
	face := fonts.Label.Face()
	c.AddChild(widget.NewLabel(
		widget.LabelOpts.Text(str, &face, &widget.LabelColor{Idle: cfg.Panel.PlateText}),
		widget.LabelOpts.TextOpts(
			widget.TextOpts.WidgetOpts(widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			})),
		),
	))
	return c
}

func buildMenu(p *components.PanelData) *widget.Container {
	content := column(widget.AnchorLayoutPositionCenter, 18)
	content.AddChild(
		label(cfg.C.Title, fonts.Title, cfg.Panel.Title),
		label(fmt.Sprintf("BEST %d", p.Best), fonts.Label, cfg.Panel.Value),
		plates("PLAY", "RATE"),
	)
	return content
}

func buildTutorial() *widget.Container {
	content := column(widget.AnchorLayoutPositionCenter, 12)
	content.AddChild(
		label("Get Ready!", fonts.Title, cfg.Panel.Title),
		label("Tap or press Space to flap", fonts.Small, cfg.Panel.Hint),
	)
	return content
}

func buildScorecard(p *components.PanelData) *widget.Container {
	content := column(widget.AnchorLayoutPositionCenter, 14)
	content.AddChild(label("Game Over", fonts.Title, cfg.Panel.Title))

	card := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewBorderedNineSliceColor(cfg.Panel.Background, cfg.Panel.Border, 3)),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(&widget.Insets{Top: 10, Bottom: 10, Left: 28, Right: 28}),
			widget.RowLayoutOpts.Spacing(4),
		)),
		widget.ContainerOpts.WidgetOpts(widget.WidgetOpts.MinSize(200, 0)),
	)
	card.AddChild(
		label("SCORE", fonts.Small, cfg.Panel.Label),
		label(fmt.Sprintf("%d", p.Score), fonts.Label, cfg.Panel.Value),
		label("BEST", fonts.Small, cfg.Panel.Label),
		label(fmt.Sprintf("%d", p.Best), fonts.Label, cfg.Panel.Value),
	)
	if p.NewBest {
		card.AddChild(label("NEW", fonts.Small, cfg.Panel.Badge))
	}
	content.AddChild(centered(card))

	if p.ShowButtons {
		content.AddChild(plates("OK", "SHARE"))
	}
	return content
}
