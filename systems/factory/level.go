package factory

import (
	"github.com/automoto/megaphone/archetypes"
	"github.com/automoto/megaphone/assets"
	"github.com/automoto/megaphone/components"
	cfg "github.com/automoto/megaphone/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// spaceMargin extends the collision grid past the level's right edge, where
// some ground platforms overhang.
const spaceMargin = 400

func CreateLevelAtIndex(ecs *ecs.ECS, levels []assets.Level, levelIndex int) *donburi.Entry {
	if len(levels) == 0 {
		panic("no levels to instantiate")
	}

	// Clamp index to valid range
	if levelIndex < 0 || levelIndex >= len(levels) {
		levelIndex = 0
	}

	// The entry gets its own copy of the definition; slices are shared but
	// never written.
	def := levels[levelIndex]

	level := archetypes.Level.Spawn(ecs)
	components.Level.Set(level, &components.LevelData{
		CurrentLevel: &def,
		LevelIndex:   levelIndex,
	})
	return level
}

// BuildLevel instantiates every runtime entity for levels[levelIndex] into
// an empty world: collision space, camera, platforms, treadmills,
// collectibles, enemies, the boss and the player at the spawn point.
func BuildLevel(ecs *ecs.ECS, levels []assets.Level, levelIndex int) *donburi.Entry {
	level := CreateLevelAtIndex(ecs, levels, levelIndex)
	def := components.Level.Get(level).CurrentLevel

	CreateSpace(ecs, def.Width+spaceMargin, def.Height, 16, 16)
	CreateCamera(ecs)

	for _, r := range def.Platforms {
		CreatePlatform(ecs, r)
	}
	for _, tm := range def.Treadmills {
		CreateTreadmill(ecs, tm)
	}
	for _, c := range def.Collectibles {
		CreateCollectible(ecs, c)
	}
	for _, e := range def.Enemies {
		CreateEnemy(ecs, e)
	}
	if def.Boss != nil {
		CreateBoss(ecs, *def.Boss)
	}

	x, y := cfg.Player.SpawnX, cfg.Player.SpawnY
	if def.Spawn != nil {
		x, y = def.Spawn.X, def.Spawn.Y
	}
	CreatePlayer(ecs, x, y)

	CreateStatus(ecs, def.Goal)

	return level
}
