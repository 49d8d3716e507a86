package systems

import (
	"math"

	"github.com/idiovoidi/gta-classic-arcade/components"
	cfg "github.com/idiovoidi/gta-classic-arcade/config"
	"github.com/idiovoidi/gta-classic-arcade/shared/gamemath"
	"github.com/idiovoidi/gta-classic-arcade/systems/factory"
	"github.com/idiovoidi/gta-classic-arcade/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateVehicles steers, accelerates and moves every vehicle, then fires its gun.
// Building collisions are resolved afterwards by UpdateBuildingCollisions.
func UpdateVehicles(ecs *ecs.ECS) {
	input := getOrCreateInput(ecs)

	var mapW, mapH float64
	if level, ok := components.Level.First(ecs.World); ok {
		if city := components.Level.Get(level).CurrentCity; city != nil {
			mapW, mapH = float64(city.MapWidth), float64(city.MapHeight)
		}
	}

	var shooters []*donburi.Entry

	tags.Vehicle.Each(ecs.World, func(e *donburi.Entry) {
		physics := components.Physics.Get(e)
		obj := components.Object.Get(e)
		vehicle := components.Vehicle.Get(e)

		steer := 0.0
		if input.Pressed(cfg.ActionSteerLeft) {
			steer--
		}
		if input.Pressed(cfg.ActionSteerRight) {
			steer++
		}

		physics.Velocity = driveVelocity(physics, steer,
			input.Pressed(cfg.ActionThrottle), input.Pressed(cfg.ActionBrake))

		obj.X += physics.Velocity.X
		obj.Y += physics.Velocity.Y
		if mapW > 0 {
			obj.X = math.Max(0, math.Min(mapW-obj.W, obj.X))
			obj.Y = math.Max(0, math.Min(mapH-obj.H, obj.Y))
		}

		if vehicle.FireCooldown > 0 {
			vehicle.FireCooldown--
		}
		if input.Pressed(cfg.ActionFire) && vehicle.FireCooldown == 0 {
			vehicle.FireCooldown = cfg.Projectile.CooldownFrames
			shooters = append(shooters, e)
		}
	})

	// Spawned outside Each so the query is not mutated while iterating.
	for _, e := range shooters {
		factory.CreateProjectile(ecs, e)
	}
}

// driveVelocity applies one frame of arcade steering and throttle to physics.
// Turning keeps the car's momentum along its heading. Steering reverses when backing up.
func driveVelocity(physics *components.PhysicsData, steer float64, throttle, brake bool) gamemath.Vector {
	forward := gamemath.FromAngle(physics.Heading)
	along := physics.Velocity.X*forward.X + physics.Velocity.Y*forward.Y

	if steer != 0 && along != 0 && physics.MaxSpeed > 0 {
		grip := math.Min(1, math.Abs(along)/physics.MaxSpeed)
		if along < 0 {
			steer = -steer
		}
		physics.Heading += steer * cfg.Vehicle.TurnRate * grip
		forward = gamemath.FromAngle(physics.Heading)
	}

	if throttle {
		along += physics.Acceleration
	}
	if brake {
		along -= cfg.Vehicle.Reverse
	}

	v := gamemath.ApplyDrag(forward.Scale(along), physics.Friction)
	return gamemath.ClampMagnitude(v, physics.MaxSpeed)
}
