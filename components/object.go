package components

import (
	"github.com/idiovoidi/gta-classic-arcade/shared/gamemath"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

type ObjectData struct {
	*resolv.Object
}

// Rect returns the object's bounds as a plain rectangle.
func (o *ObjectData) Rect() gamemath.Rect {
	return gamemath.Rect{X: o.X, Y: o.Y, W: o.W, H: o.H}
}

var Object = donburi.NewComponentType[ObjectData]()

// Space is the single resolv space every collidable object is registered in.
var Space = donburi.NewComponentType[resolv.Space]()
