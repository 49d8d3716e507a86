package components

import "github.com/yohamta/donburi"

type VehicleData struct {
	FireCooldown int // frames until the gun can fire again
	Collisions   int // building contacts resolved, for the HUD
}

var Vehicle = donburi.NewComponentType[VehicleData]()
