package tags

import "github.com/yohamta/donburi"

var (
	Vehicle    = donburi.NewTag().SetName("Vehicle")
	Building   = donburi.NewTag().SetName("Building")
	Wall       = donburi.NewTag().SetName("Wall")
	Beam       = donburi.NewTag().SetName("Beam")
	Projectile = donburi.NewTag().SetName("Projectile")
	Particle   = donburi.NewTag().SetName("Particle")
)

// Resolv tags for physics collision
const (
	ResolvVehicle    = "vehicle"
	ResolvBuilding   = "building"
	ResolvWall       = "wall"
	ResolvBeam       = "beam"
	ResolvProjectile = "projectile"
)
