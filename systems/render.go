package systems

import (
	"image/color"
	"math"
	"sort"

	"github.com/automoto/flappy-gopher/components"
	cfg "github.com/automoto/flappy-gopher/config"
	"github.com/automoto/flappy-gopher/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	drawOp = &ebiten.DrawImageOptions{}

	// Pre-rendered once, drawn rotated every frame
	birdImage  *ebiten.Image
	ghostImage *ebiten.Image

	panelLayer *ebiten.Image

	// Reused across frames to avoid allocations
	drawList []*donburi.Entry
)

// fade scales a premultiplied colour by alpha.
func fade(c color.RGBA, alpha float64) color.RGBA {
	a := math.Max(0, math.Min(1, alpha))
	return color.RGBA{
		R: uint8(float64(c.R) * a),
		G: uint8(float64(c.G) * a),
		B: uint8(float64(c.B) * a),
		A: uint8(float64(c.A) * a),
	}
}

func cameraOffset(e *ecs.ECS) (float64, float64) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return 0, 0
	}
	camera := components.Camera.Get(cameraEntry)
	return camera.Position.X, camera.Position.Y
}

// DrawSprites renders every sprite back to front by Z.
func DrawSprites(e *ecs.ECS, screen *ebiten.Image) {
	camX, camY := cameraOffset(e)

	drawList = drawList[:0]
	components.Sprite.Each(e.World, func(entry *donburi.Entry) {
		if entry.HasComponent(components.Object) && !components.Sprite.Get(entry).Hidden {
			drawList = append(drawList, entry)
		}
	})
	sort.SliceStable(drawList, func(i, j int) bool {
		return components.Sprite.Get(drawList[i]).Z < components.Sprite.Get(drawList[j]).Z
	})

	for _, entry := range drawList {
		sprite := components.Sprite.Get(entry)
		obj := components.Object.Get(entry)
		x, y := obj.X+camX, obj.Y+camY

		switch sprite.Shape {
		case components.ShapeSky:
			drawSky(screen, x, y, obj.W, obj.H)
		case components.ShapeHills:
			drawHills(screen, x, y, obj.W, obj.H)
		case components.ShapeGround:
			drawGround(screen, x, y, obj.W, obj.H)
		case components.ShapePipe:
			drawPipe(screen, x, y, obj.W, obj.H, sprite.FlipY)
		case components.ShapeBird:
			if birdImage == nil {
				birdImage = renderBird(int(obj.W), int(obj.H))
			}
			drawRotated(screen, birdImage, x, y, sprite.Rotation, sprite.Alpha)
		case components.ShapeGhost:
			if ghostImage == nil {
				ghostImage = renderGhost(int(obj.W), int(obj.H))
			}
			drawRotated(screen, ghostImage, x, y, 0, sprite.Alpha)
		default:
			vector.FillRect(screen, float32(x), float32(y), float32(obj.W), float32(obj.H), fade(sprite.Color, sprite.Alpha), false)
		}
	}
}

func drawRotated(screen, img *ebiten.Image, x, y, rotation, alpha float64) {
	w, h := img.Bounds().Dx(), img.Bounds().Dy()
	drawOp.GeoM.Reset()
	drawOp.ColorScale.Reset()
	drawOp.GeoM.Translate(-float64(w)/2, -float64(h)/2)
	drawOp.GeoM.Rotate(rotation)
	drawOp.GeoM.Translate(x+float64(w)/2, y+float64(h)/2)
	drawOp.ColorScale.ScaleAlpha(float32(alpha))
	drawOp.Filter = ebiten.FilterLinear
	screen.DrawImage(img, drawOp)
}

func drawSky(screen *ebiten.Image, x, y, w, h float64) {
	p := cfg.Palette
	vector.FillRect(screen, float32(x), float32(y), float32(w), float32(h), p.Sky, false)

	// Cloud bank resting on the horizon
	base := y + h - 110
	for i := 0; i < 8; i++ {
		cx := x + float64(i)*w/7
		r := 26 + 8*math.Sin(float64(i)*1.7)
		vector.FillCircle(screen, float32(cx), float32(base+r*0.3), float32(r), p.Cloud, true)
	}
	vector.FillRect(screen, float32(x), float32(base+20), float32(w), float32(y+h-base-20), p.Cloud, false)
}

// drawHills draws a tile whose edges match so neighbouring tiles join.
func drawHills(screen *ebiten.Image, x, y, w, h float64) {
	p := cfg.Palette
	for _, cx := range []float64{0, w / 2, w} {
		vector.FillCircle(screen, float32(x+cx), float32(y+h*0.55), float32(h*0.55), p.HillsDark, true)
	}
	for _, cx := range []float64{w / 4, 3 * w / 4} {
		vector.FillCircle(screen, float32(x+cx), float32(y+h*0.7), float32(h*0.45), p.Hills, true)
	}
	vector.FillRect(screen, float32(x), float32(y+h*0.6), float32(w), float32(h*0.4), p.Hills, false)
}

func drawGround(screen *ebiten.Image, x, y, w, h float64) {
	p := cfg.Palette
	vector.FillRect(screen, float32(x), float32(y), float32(w), float32(h), p.Ground, false)
	vector.FillRect(screen, float32(x), float32(y), float32(w), 10, p.Grass, false)

	const stripe = 16.0
	for sx := 0.0; sx < w; sx += stripe {
		vector.FillRect(screen, float32(x+sx), float32(y+10), float32(stripe/2), 4, p.GroundStripe, false)
	}
}

func drawPipe(screen *ebiten.Image, x, y, w, h float64, openDown bool) {
	p := cfg.Palette
	capH := cfg.Obstacle.CapHeight
	vector.FillRect(screen, float32(x+3), float32(y), float32(w-6), float32(h), p.Pipe, false)
	vector.FillRect(screen, float32(x+w-14), float32(y), 8, float32(h), p.PipeShade, false)

	capY := y
	if openDown {
		capY = y + h - capH
	}
	vector.FillRect(screen, float32(x), float32(capY), float32(w), float32(capH), p.PipeCap, false)
	vector.StrokeRect(screen, float32(x), float32(capY), float32(w), float32(capH), 2, p.PipeShade, false)
}

func renderBird(w, h int) *ebiten.Image {
	p := cfg.Palette
	img := ebiten.NewImage(w, h)
	fw, fh := float32(w), float32(h)

	vector.FillCircle(img, fw*0.45, fh*0.5, fh*0.48, p.Bird, true)
	vector.FillCircle(img, fw*0.3, fh*0.6, fh*0.25, p.BirdWing, true)
	vector.FillCircle(img, fw*0.62, fh*0.35, fh*0.2, p.Eye, true)
	vector.FillCircle(img, fw*0.66, fh*0.35, fh*0.09, p.Pupil, true)
	vector.FillRect(img, fw*0.72, fh*0.5, fw*0.26, fh*0.2, p.BirdBeak, true)
	return img
}

func renderGhost(w, h int) *ebiten.Image {
	p := cfg.Palette
	img := ebiten.NewImage(w, h)
	fw, fh := float32(w), float32(h)
	r := fw / 2

	vector.FillCircle(img, r, r, r, p.Ghost, true)
	vector.FillRect(img, 0, r, fw, fh-r-fw/6, p.Ghost, true)
	for i := 0; i < 3; i++ {
		cx := fw/6 + float32(i)*fw/3
		vector.FillCircle(img, cx, fh-fw/6, fw/6, p.Ghost, true)
	}
	vector.FillCircle(img, fw*0.35, r, fw*0.1, p.Pupil, true)
	vector.FillCircle(img, fw*0.65, r, fw*0.1, p.Pupil, true)
	return img
}

// DrawPanels renders state panels with their fade and slide applied.
func DrawPanels(e *ecs.ECS, screen *ebiten.Image) {
	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	if panelLayer == nil || panelLayer.Bounds().Dx() != w || panelLayer.Bounds().Dy() != h {
		panelLayer = ebiten.NewImage(w, h)
	}

	components.Panel.Each(e.World, func(entry *donburi.Entry) {
		panel := components.Panel.Get(entry)
		if panel.Alpha <= 0 {
			return
		}
		if panel.UI == nil || panel.Dirty {
			panel.UI = ui.Build(panel)
			panel.Dirty = false
		}

		panelLayer.Clear()
		panel.UI.Draw(panelLayer)

		drawOp.GeoM.Reset()
		drawOp.ColorScale.Reset()
		drawOp.Filter = ebiten.FilterNearest
		drawOp.GeoM.Translate(0, panel.OffsetY)
		drawOp.ColorScale.ScaleAlpha(float32(panel.Alpha))
		screen.DrawImage(panelLayer, drawOp)
	})
}

// DrawOverlays renders the hit flash and the scene fade-in.
func DrawOverlays(e *ecs.ECS, screen *ebiten.Image) {
	w, h := float32(screen.Bounds().Dx()), float32(screen.Bounds().Dy())
	components.Overlay.Each(e.World, func(entry *donburi.Entry) {
		overlay := components.Overlay.Get(entry)
		c := cfg.Palette.Flash
		if overlay.Kind == components.OverlayFade {
			c = cfg.Palette.Fade
		}
		vector.FillRect(screen, 0, 0, w, h, fade(c, overlay.Alpha), false)
	})
}
