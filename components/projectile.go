package components

import "github.com/yohamta/donburi"

type ProjectileData struct {
	Owner    donburi.Entity
	Damage   float64
	LifeTime int // frames remaining
}

var Projectile = donburi.NewComponentType[ProjectileData]()
