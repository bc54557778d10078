package config

import "github.com/yohamta/donburi/ecs"

// Render layers. Entities are created on Default; the HUD layer draws last.
const (
	Default ecs.LayerID = iota
	LayerHUD
)
