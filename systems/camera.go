package systems

import (
	"github.com/automoto/megaphone/components"
	"github.com/automoto/megaphone/config"
	"github.com/automoto/megaphone/gamemath"
	"github.com/automoto/megaphone/tags"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCamera keeps the player LeadRatio of a screen from the left edge
// without showing anything past the level bounds.
func UpdateCamera(e *ecs.ECS) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)

	playerEntry, ok := tags.Player.First(e.World)
	if !ok {
		return
	}
	playerObject := components.Object.Get(playerEntry)

	camera.Position.X = CameraOffset(playerObject.X, currentLevelWidth(e), float64(config.C.Width))
	camera.Position.Y = 0
}

// CameraOffset is the world x drawn at the left edge of the screen.
func CameraOffset(playerX, levelWidth, screenWidth float64) float64 {
	target := playerX - screenWidth*config.Camera.LeadRatio
	return gamemath.Clamp(target, 0, levelWidth-screenWidth)
}

// cameraX returns the current camera offset, or 0 without a camera.
func cameraX(e *ecs.ECS) float64 {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return 0
	}
	return components.Camera.Get(cameraEntry).Position.X
}
