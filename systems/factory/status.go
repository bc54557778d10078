package factory

import (
	"github.com/automoto/megaphone/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateStatus creates the HUD message singleton.
func CreateStatus(ecs *ecs.ECS, text string) *donburi.Entry {
	status := ecs.World.Entry(ecs.World.Create(components.Status))
	components.Status.SetValue(status, components.StatusData{Text: text})
	return status
}
