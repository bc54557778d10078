package systems

import (
	"github.com/automoto/megaphone/components"
	cfg "github.com/automoto/megaphone/config"
	"github.com/automoto/megaphone/gamemath"
	"github.com/automoto/megaphone/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// contactSource describes what touching a hostile does to the player.
type contactSource struct {
	knockbackX float64
	knockbackY float64
	damage     int
	sound      cfg.SoundID
	faintMsg   string
}

// contactFrom returns the current contact rules for an enemy or the boss.
func contactFrom(boss bool) contactSource {
	if boss {
		return contactSource{
			knockbackX: cfg.Boss.KnockbackX,
			knockbackY: cfg.Boss.KnockbackY,
			damage:     cfg.Boss.ContactDamage,
			sound:      cfg.SoundBossContact,
			faintMsg:   cfg.Message.FaintedByBoss,
		}
	}
	return contactSource{
		knockbackX: cfg.Enemy.KnockbackX,
		knockbackY: cfg.Enemy.KnockbackY,
		damage:     cfg.Enemy.ContactDamage,
		sound:      cfg.SoundPlayerHit,
		faintMsg:   cfg.Message.Fainted,
	}
}

// UpdateContacts damages the player on touching an enemy or the boss while
// not invulnerable.
func UpdateContacts(ecs *ecs.ECS) {
	playerEntry, ok := tags.Player.First(ecs.World)
	if !ok || isFainted(playerEntry) {
		return
	}

	tags.Enemy.Each(ecs.World, func(e *donburi.Entry) {
		touchPlayer(ecs, playerEntry, components.Object.Get(e).Rect(), contactFrom(false))
	})
	tags.Boss.Each(ecs.World, func(e *donburi.Entry) {
		touchPlayer(ecs, playerEntry, components.Object.Get(e).Rect(), contactFrom(true))
	})
}

func touchPlayer(ecs *ecs.ECS, playerEntry *donburi.Entry, source gamemath.Rect, c contactSource) {
	player := components.Player.Get(playerEntry)
	if player.Fainted || player.InvulnTimer > 0 {
		return
	}

	obj := components.Object.Get(playerEntry)
	if !obj.Rect().Overlaps(source) {
		return
	}

	health := components.Health.Get(playerEntry)
	physics := components.Physics.Get(playerEntry)

	out := health.Damage(c.damage)
	player.InvulnTimer = cfg.Player.InvulnSeconds

	// Knock away from the source
	if obj.X < source.X {
		physics.SpeedX = -c.knockbackX
	} else {
		physics.SpeedX = c.knockbackX
	}
	physics.SpeedY = c.knockbackY
	PlaySFX(ecs, c.sound)
	TriggerDamageFlash(playerEntry)
	TriggerScreenShake(ecs, cfg.Effects.DamageShakeIntensity, cfg.Effects.DamageShakeDuration)

	if out {
		faint(ecs, playerEntry, c.faintMsg)
	}
}

// faint ends the run: the player is parked off-screen and frozen until the
// level is reset.
func faint(ecs *ecs.ECS, playerEntry *donburi.Entry, msg string) {
	player := components.Player.Get(playerEntry)
	physics := components.Physics.Get(playerEntry)
	obj := components.Object.Get(playerEntry)

	player.Fainted = true
	player.Charge = 0
	physics.SpeedX = 0
	physics.SpeedY = 0
	physics.OnGround = nil
	obj.Y = cfg.Player.FaintY

	SetStatus(ecs, msg)
}
