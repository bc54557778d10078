package systems

import (
	"github.com/automoto/megaphone/components"
	cfg "github.com/automoto/megaphone/config"
	"github.com/automoto/megaphone/gamemath"
	"github.com/automoto/megaphone/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateTimers counts down the player's invulnerability and megaphone
// cooldown.
func UpdateTimers(ecs *ecs.ECS) {
	dt := frameDt(ecs)

	components.Player.Each(ecs.World, func(e *donburi.Entry) {
		player := components.Player.Get(e)
		player.InvulnTimer = gamemath.CountDown(player.InvulnTimer, dt)
		player.Cooldown = gamemath.CountDown(player.Cooldown, dt)
	})
}

// UpdatePlayer maps the input snapshot to horizontal speed and jumps.
func UpdatePlayer(ecs *ecs.ECS) {
	input := getOrCreateInput(ecs)

	tags.Player.Each(ecs.World, func(e *donburi.Entry) {
		if isFainted(e) {
			return
		}

		player := components.Player.Get(e)
		physics := components.Physics.Get(e)

		left := GetAction(input, cfg.ActionMoveLeft).Pressed
		right := GetAction(input, cfg.ActionMoveRight).Pressed

		if left {
			physics.SpeedX = gamemath.ClampSpeed(physics.SpeedX-cfg.Player.Acceleration, physics.MaxSpeed)
			player.Direction.X = cfg.DirectionLeft
		}
		if right {
			physics.SpeedX = gamemath.ClampSpeed(physics.SpeedX+cfg.Player.Acceleration, physics.MaxSpeed)
			player.Direction.X = cfg.DirectionRight
		}
		if !left && !right {
			physics.SpeedX = gamemath.DampToZero(physics.SpeedX, cfg.Player.Friction, cfg.Player.StopThreshold)
		}

		// Holding jump re-jumps on landing
		if GetAction(input, cfg.ActionJump).Pressed && physics.OnGround != nil {
			physics.SpeedY = cfg.Player.JumpSpeed
			physics.OnGround = nil
			PlaySFX(ecs, cfg.SoundJump)
		}
	})
}
