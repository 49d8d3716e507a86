package scenes

import (
	"image/color"
	"log"
	"math/rand"
	"sync"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/idiovoidi/gta-classic-arcade/components"
	cfg "github.com/idiovoidi/gta-classic-arcade/config"
	"github.com/idiovoidi/gta-classic-arcade/shared/leveldata"
	"github.com/idiovoidi/gta-classic-arcade/systems"
	"github.com/idiovoidi/gta-classic-arcade/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

const spaceCellSize = 16

// CityScene is one drivable city. Switching cities builds a fresh scene.
type CityScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	cities       []*leveldata.CityData
	cityIndex    int
	once         sync.Once
}

func NewCityScene(sc SceneChanger, cities []*leveldata.CityData, cityIndex int) *CityScene {
	return &CityScene{sceneChanger: sc, cities: cities, cityIndex: cityIndex}
}

func (cs *CityScene) Update() {
	cs.once.Do(cs.configure)
	cs.ecs.Update()

	if systems.NextCityRequested(cs.ecs) && len(cs.cities) > 1 {
		next := (cs.cityIndex + 1) % len(cs.cities)
		cs.sceneChanger.ChangeScene(NewCityScene(cs.sceneChanger, cs.cities, next))
	}
}

func (cs *CityScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if cs.ecs == nil {
		return
	}
	cs.ecs.Draw(screen)
}

func (cs *CityScene) configure() {
	e := ecs.NewECS(donburi.NewWorld())

	e.AddSystem(systems.UpdateClock)
	e.AddSystem(systems.UpdateInput)
	e.AddSystem(systems.UpdateSettings)
	e.AddSystem(systems.UpdateVehicles)
	e.AddSystem(systems.UpdateBuildingCollisions)
	e.AddSystem(systems.UpdateProjectiles)
	e.AddSystem(systems.UpdateCombat)
	e.AddSystem(systems.UpdateStructures)
	e.AddSystem(systems.UpdateParticles)
	e.AddSystem(systems.UpdateObjects)
	e.AddSystem(systems.UpdateCamera)

	e.AddRenderer(cfg.Default, systems.DrawGround)
	e.AddRenderer(cfg.Default, systems.DrawStructures)
	e.AddRenderer(cfg.Default, systems.DrawParticles)
	e.AddRenderer(cfg.Default, systems.DrawProjectiles)
	e.AddRenderer(cfg.Default, systems.DrawVehicles)
	e.AddRenderer(cfg.Default, systems.DrawHUD)
	e.AddRenderer(cfg.Default, systems.DrawDebug)

	cs.ecs = e

	if saved, err := systems.LoadSettings(); err == nil && saved != nil {
		systems.ApplySavedSettings(e, saved)
	}

	level := factory.CreateLevel(e, cs.cities, cs.cityIndex)
	city := components.Level.Get(level).CurrentCity
	cs.cityIndex = components.Level.Get(level).CityIndex

	factory.CreateSpace(e, city.MapWidth, city.MapHeight, spaceCellSize, spaceCellSize)
	clock := factory.CreateClock(e)

	seed := cfg.Debug.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	pool := factory.NewParticlePool(e, rng, cfg.Particles.PoolCapacity)
	vehicle := factory.CreateCity(e, city, factory.StructureDeps{
		Particles: pool,
		Clock:     components.Clock.Get(clock).FrameClock,
		Rand:      rng,
	})

	// Snap camera to the vehicle to prevent panning from (0,0)
	x, y := components.Object.Get(vehicle).Rect().Center()
	factory.CreateCamera(e, x, y)

	log.Printf("Loaded city %q: %d buildings", city.Name, len(city.Buildings))
}
