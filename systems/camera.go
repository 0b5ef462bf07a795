package systems

import (
	"math"

	"github.com/automoto/flappy-gopher/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCamera resets the camera and applies any active screen shake.
func UpdateCamera(e *ecs.ECS) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)
	camera.Position.X = 0
	camera.Position.Y = 0

	updateScreenShake(cameraEntry, camera, deltaTime(e))
}

// updateScreenShake applies screen shake offset to camera and counts down its duration
func updateScreenShake(cameraEntry *donburi.Entry, camera *components.CameraData, dt float64) {
	if !cameraEntry.HasComponent(components.ScreenShake) {
		return
	}

	shake := components.ScreenShake.Get(cameraEntry)
	shake.Elapsed += dt
	shake.Duration -= dt

	// Calculate decaying intensity
	progress := 0.0
	if shake.Total > 0 {
		progress = math.Max(0, shake.Duration/shake.Total)
	}
	currentIntensity := shake.Intensity * progress

	// Apply oscillating offset using sine/cosine for smooth shake
	camera.Position.X = math.Sin(shake.Elapsed*66) * currentIntensity
	camera.Position.Y = math.Cos(shake.Elapsed*78) * currentIntensity

	if shake.Duration <= 0 {
		cameraEntry.RemoveComponent(components.ScreenShake)
	}
}

// TriggerScreenShake starts a screen shake effect
func TriggerScreenShake(ecs *ecs.ECS, intensity, duration float64) {
	cameraEntry, ok := components.Camera.First(ecs.World)
	if !ok {
		return
	}

	if cameraEntry.HasComponent(components.ScreenShake) {
		shake := components.ScreenShake.Get(cameraEntry)
		// Only override if new shake is stronger
		if intensity > shake.Intensity {
			shake.Intensity = intensity
			shake.Duration = duration
			shake.Total = duration
			shake.Elapsed = 0
		}
	} else {
		cameraEntry.AddComponent(components.ScreenShake)
		components.ScreenShake.Set(cameraEntry, &components.ScreenShakeData{
			Intensity: intensity,
			Duration:  duration,
			Total:     duration,
		})
	}
}
