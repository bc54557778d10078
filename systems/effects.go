package systems

import (
	"image/color"
	"math"

	"github.com/automoto/megaphone/components"
	cfg "github.com/automoto/megaphone/config"
	"github.com/automoto/megaphone/gamemath"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateEffects counts down hit flashes and moves the camera by the current
// shake offset. It runs after UpdateCamera, which resets the position every
// step.
func UpdateEffects(ecs *ecs.ECS) {
	dt := frameDt(ecs)
	updateFlashEffects(ecs, dt)
	updateScreenShake(ecs, dt)
}

func updateFlashEffects(ecs *ecs.ECS, dt float64) {
	components.Flash.Each(ecs.World, func(e *donburi.Entry) {
		flash := components.Flash.Get(e)
		flash.Timer = gamemath.CountDown(flash.Timer, dt)
	})
}

// updateScreenShake applies a decaying oscillation to the camera and removes
// the shake when it has run its course.
func updateScreenShake(ecs *ecs.ECS, dt float64) {
	cameraEntry, ok := components.Camera.First(ecs.World)
	if !ok || !cameraEntry.HasComponent(components.ScreenShake) {
		return
	}

	shake := components.ScreenShake.Get(cameraEntry)
	shake.Elapsed += dt

	progress := math.Max(0, (shake.Duration-shake.Elapsed)/shake.Duration)
	shake.Offset = math.Sin(shake.Elapsed*66) * shake.Intensity * progress
	components.Camera.Get(cameraEntry).Position.X += shake.Offset

	if shake.Elapsed >= shake.Duration {
		cameraEntry.RemoveComponent(components.ScreenShake)
	}
}

// TriggerScreenShake starts a screen shake. A weaker shake never replaces a
// stronger one in progress.
func TriggerScreenShake(ecs *ecs.ECS, intensity, duration float64) {
	cameraEntry, ok := components.Camera.First(ecs.World)
	if !ok || duration <= 0 {
		return
	}

	if cameraEntry.HasComponent(components.ScreenShake) {
		shake := components.ScreenShake.Get(cameraEntry)
		if intensity > shake.Intensity {
			shake.Intensity = intensity
			shake.Duration = duration
			shake.Elapsed = 0
		}
		return
	}

	cameraEntry.AddComponent(components.ScreenShake)
	components.ScreenShake.Set(cameraEntry, &components.ScreenShakeData{
		Intensity: intensity,
		Duration:  duration,
	})
}

// TriggerHitFlash tints an enemy or the boss struck by the megaphone.
func TriggerHitFlash(entry *donburi.Entry) {
	triggerFlash(entry, cfg.Effects.HitFlashColor, cfg.Effects.HitFlash)
}

// TriggerDamageFlash tints the player after contact damage.
func TriggerDamageFlash(entry *donburi.Entry) {
	triggerFlash(entry, cfg.Effects.DamageFlashColor, cfg.Effects.DamageFlash)
}

// Flash is part of the actor archetypes, so nothing is added here.
func triggerFlash(entry *donburi.Entry, clr color.RGBA, duration float64) {
	if !entry.HasComponent(components.Flash) {
		return
	}
	flash := components.Flash.Get(entry)
	flash.Timer = duration
	flash.Color = clr
}

// flashColor returns the tint for a flashing entity, or base.
func flashColor(entry *donburi.Entry, base color.RGBA) color.RGBA {
	if !entry.HasComponent(components.Flash) {
		return base
	}
	if flash := components.Flash.Get(entry); flash.Active() {
		return flash.Color
	}
	return base
}
