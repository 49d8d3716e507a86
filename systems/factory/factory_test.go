package factory

import (
	"math/rand"
	"testing"

	"github.com/idiovoidi/gta-classic-arcade/components"
	cfg "github.com/idiovoidi/gta-classic-arcade/config"
	"github.com/idiovoidi/gta-classic-arcade/shared/leveldata"
	"github.com/idiovoidi/gta-classic-arcade/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func newTestECS() *ecs.ECS {
	e := ecs.NewECS(donburi.NewWorld())
	CreateSpace(e, 640, 480, 16, 16)
	return e
}

func testCity() *leveldata.CityData {
	return &leveldata.CityData{
		Name:      "test",
		MapWidth:  640,
		MapHeight: 480,
		Buildings: []leveldata.BuildingFootprint{
			{Name: "a", X: 32, Y: 32, W: 64, H: 64, Beams: leveldata.BeamsCorners},
			{Name: "b", X: 200, Y: 32, W: 64, H: 64, Beams: leveldata.BeamsNone},
		},
	}
}

func TestCreateCityWithoutSpawnCentersVehicle(t *testing.T) {
	e := newTestECS()
	vehicle := CreateCity(e, testCity(), StructureDeps{})

	cx, cy := components.Object.Get(vehicle).Rect().Center()
	if cx != 320 || cy != 240 {
		t.Fatalf("Expected vehicle centered at (320, 240), got (%v, %v)", cx, cy)
	}

	buildings := 0
	components.Building.Each(e.World, func(*donburi.Entry) { buildings++ })
	if buildings != 2 {
		t.Errorf("Expected 2 buildings, got %d", buildings)
	}
	beams := 0
	components.Beam.Each(e.World, func(*donburi.Entry) { beams++ })
	if beams != 4 {
		t.Errorf("Expected 4 beams, got %d", beams)
	}
}

func TestCreateCityUsesFirstSpawn(t *testing.T) {
	e := newTestECS()
	city := testCity()
	city.VehicleSpawns = []leveldata.SpawnPoint{{Index: 0, X: 400, Y: 300, Heading: 1.5}}

	vehicle := CreateCity(e, city, StructureDeps{})
	cx, cy := components.Object.Get(vehicle).Rect().Center()
	if cx != 400 || cy != 300 {
		t.Errorf("Expected vehicle at spawn (400, 300), got (%v, %v)", cx, cy)
	}
	if got := components.Physics.Get(vehicle).Heading; got != 1.5 {
		t.Errorf("Expected heading 1.5, got %v", got)
	}
}

func TestCreateLevelClampsIndex(t *testing.T) {
	e := newTestECS()
	cities := []*leveldata.CityData{testCity()}

	level := CreateLevel(e, cities, 7)
	data := components.Level.Get(level)
	if data.CityIndex != 0 || data.CurrentCity != cities[0] {
		t.Fatalf("Expected fallback to city 0, got %d", data.CityIndex)
	}
}

func TestCreateLevelPanicsWithoutCities(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("Expected panic for an empty city list")
		}
	}()
	CreateLevel(newTestECS(), nil, 0)
}

func TestCreateProjectileStartsAheadOfOwner(t *testing.T) {
	e := newTestECS()
	owner := CreateVehicle(e, leveldata.SpawnPoint{X: 100, Y: 100})
	components.Physics.Get(owner).Velocity.X = 1

	p := CreateProjectile(e, owner)
	obj := components.Object.Get(p)
	ownerObj := components.Object.Get(owner)

	if obj.X < ownerObj.X+ownerObj.W-1e-9 {
		t.Errorf("Expected projectile to start clear of the owner, got x=%v", obj.X)
	}
	if got := components.Physics.Get(p).Velocity.X; got != cfg.Projectile.Speed+1 {
		t.Errorf("Expected owner velocity inherited, got %v", got)
	}
	if !obj.HasTags(tags.ResolvProjectile) {
		t.Error("Expected projectile tag")
	}
}

func TestWallLookupTracksBuilding(t *testing.T) {
	e := newTestECS()
	fp := testCity().Buildings[0]
	fp.MaxParticles = 20
	b := CreateBuilding(e, fp, StructureDeps{Rand: rand.New(rand.NewSource(1))})
	wall := components.Wall.Get(e.World.Entry(components.Building.Get(b).Walls[0]))

	if got := wall.DestructionCeiling(); got != 20 {
		t.Fatalf("Expected ceiling 20, got %d", got)
	}
	components.Building.Get(b).MaxParticles = 0
	if got := wall.DestructionCeiling(); got != cfg.Particles.DefaultDestructionCeiling {
		t.Errorf("Expected default ceiling, got %d", got)
	}
}
