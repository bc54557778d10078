package tags

import "github.com/yohamta/donburi"

var (
	Player      = donburi.NewTag().SetName("Player")
	Platform    = donburi.NewTag().SetName("Platform")
	Treadmill   = donburi.NewTag().SetName("Treadmill")
	Enemy       = donburi.NewTag().SetName("Enemy")
	Boss        = donburi.NewTag().SetName("Boss")
	Collectible = donburi.NewTag().SetName("Collectible")
)

// Resolv tags for collision objects
const (
	ResolvSolid       = "solid"
	ResolvTreadmill   = "treadmill"
	ResolvPlayer      = "Player"
	ResolvEnemy       = "Enemy"
	ResolvBoss        = "Boss"
	ResolvCollectible = "Collectible"
)
