package tags

import "github.com/yohamta/donburi"

var (
	Player     = donburi.NewTag().SetName("Player")
	Projectile = donburi.NewTag().SetName("Projectile")
	Tracking   = donburi.NewTag().SetName("Tracking")
	Shot       = donburi.NewTag().SetName("Shot")
)

// Resolv tags for collision
const (
	ResolvPlayer     = "Player"
	ResolvProjectile = "Projectile"
	ResolvShot       = "Shot"
)
