package systems

import (
	"fmt"
	"math"

	"github.com/automoto/megaphone/components"
	cfg "github.com/automoto/megaphone/config"
	"github.com/automoto/megaphone/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateMegaphone charges the attack while the action is held and releases
// the shout when it is let go.
func UpdateMegaphone(ecs *ecs.ECS) {
	input := getOrCreateInput(ecs)
	dt := frameDt(ecs)

	tags.Player.Each(ecs.World, func(e *donburi.Entry) {
		if isFainted(e) {
			return
		}

		player := components.Player.Get(e)

		if GetAction(input, cfg.ActionAttack).Pressed {
			if player.Ready() {
				player.Charge = math.Min(player.Charge+dt, cfg.Megaphone.MaxCharge)
			}
			return
		}

		if player.Charge <= 0 {
			return
		}

		power := player.Charge
		player.Charge = 0
		player.Cooldown = cfg.Megaphone.CooldownBase + power*cfg.Megaphone.CooldownPerPower

		tone := cfg.Tones[cfg.SoundMegaphoneRelease]
		tone.Freq += power * cfg.Megaphone.ReleasePitchPerPower
		PlayTone(ecs, tone)

		ReleaseMegaphone(ecs, e, power)
	})
}

// MegaphoneRadius is the reach of a shout released at the given power.
func MegaphoneRadius(power float64) float64 {
	return cfg.Megaphone.RadiusBase + power*cfg.Megaphone.RadiusPerPower
}

// BossDamage is the hit points a shout of the given power takes off the boss.
func BossDamage(power float64) int {
	if power > cfg.Megaphone.HeavyHitThreshold {
		return cfg.Megaphone.HeavyDamage
	}
	return cfg.Megaphone.LightDamage
}

// ReleaseMegaphone pushes and stuns every enemy and the boss whose center is
// within reach of the player's center.
func ReleaseMegaphone(ecs *ecs.ECS, playerEntry *donburi.Entry, power float64) {
	player := components.Player.Get(playerEntry)
	origin := components.Object.Get(playerEntry).Rect()
	radius := MegaphoneRadius(power)
	face := player.Direction.X

	tags.Enemy.Each(ecs.World, func(e *donburi.Entry) {
		if origin.CenterDistance(components.Object.Get(e).Rect()) >= radius {
			return
		}
		components.Physics.Get(e).SpeedX = cfg.Megaphone.EnemyPush * face
		components.Enemy.Get(e).StunTimer = cfg.Megaphone.EnemyStunBase + power*cfg.Megaphone.EnemyStunPerPower
		TriggerHitFlash(e)
	})

	tags.Boss.Each(ecs.World, func(e *donburi.Entry) {
		if origin.CenterDistance(components.Object.Get(e).Rect()) >= radius {
			return
		}
		boss := components.Boss.Get(e)
		boss.StunTimer = cfg.Megaphone.BossStunBase + power*cfg.Megaphone.BossStunPerPower
		components.Physics.Get(e).SpeedX = cfg.Megaphone.BossPush * face
		TriggerHitFlash(e)

		// A defeated boss can still be pushed around
		if boss.Defeated {
			return
		}
		health := components.Health.Get(e)
		dmg := BossDamage(power)
		health.Current = max(0, health.Current-dmg)
		if dmg >= cfg.Megaphone.HeavyDamage {
			TriggerScreenShake(ecs, cfg.Effects.HeavyShakeIntensity, cfg.Effects.HeavyShakeDuration)
		}

		SetStatus(ecs, fmt.Sprintf(cfg.Message.BossHit, health.Current))
		PlaySFX(ecs, cfg.SoundBossHit)
	})
}
