package leveldata

import (
	"math"
	"testing"
	"testing/fstest"
)

const testCityTMX = `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" tiledversion="1.10.2" orientation="orthogonal" renderorder="right-down" width="40" height="30" tilewidth="16" tileheight="16" infinite="0" nextlayerid="3" nextobjectid="6">
 <objectgroup id="1" name="Buildings">
  <object id="1" name="bank" x="64" y="64" width="160" height="96">
   <properties>
    <property name="maxParticles" type="int" value="40"/>
    <property name="beams" value="edges"/>
   </properties>
  </object>
  <object id="2" name="shed" x="320" y="200" width="48" height="48"/>
  <object id="3" name="marker" x="10" y="10"/>
 </objectgroup>
 <objectgroup id="2" name="VehicleSpawn">
  <object id="4" x="300" y="400">
   <properties>
    <property name="spawnIndex" type="int" value="1"/>
   </properties>
  </object>
  <object id="5" x="100" y="420">
   <properties>
    <property name="spawnIndex" type="int" value="0"/>
    <property name="headingDeg" type="int" value="90"/>
   </properties>
  </object>
 </objectgroup>
</map>
`

func TestLoadCityData(t *testing.T) {
	fsys := fstest.MapFS{
		"levels/downtown.tmx": {Data: []byte(testCityTMX)},
	}

	city, err := LoadCityData(fsys, "levels/downtown.tmx")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if city.Name != "downtown" {
		t.Errorf("expected name downtown, got %q", city.Name)
	}
	if city.MapWidth != 640 || city.MapHeight != 480 {
		t.Errorf("expected 640x480 map, got %dx%d", city.MapWidth, city.MapHeight)
	}

	if len(city.Buildings) != 2 {
		t.Fatalf("expected 2 buildings (zero-size marker skipped), got %d", len(city.Buildings))
	}
	bank := city.Buildings[0]
	if bank.X != 64 || bank.Y != 64 || bank.W != 160 || bank.H != 96 {
		t.Errorf("unexpected bank footprint %+v", bank)
	}
	if bank.MaxParticles != 40 || bank.Beams != BeamsEdges {
		t.Errorf("expected maxParticles 40 and edge beams, got %d %q", bank.MaxParticles, bank.Beams)
	}
	shed := city.Buildings[1]
	if shed.MaxParticles != 0 || shed.Beams != BeamsCorners {
		t.Errorf("expected defaults for shed, got %d %q", shed.MaxParticles, shed.Beams)
	}

	if len(city.VehicleSpawns) != 2 {
		t.Fatalf("expected 2 spawns, got %d", len(city.VehicleSpawns))
	}
	first := city.VehicleSpawns[0]
	if first.Index != 0 || first.X != 100 {
		t.Errorf("expected spawns sorted by index, got %+v", first)
	}
	if math.Abs(first.Heading-math.Pi/2) > 1e-9 {
		t.Errorf("expected heading pi/2, got %v", first.Heading)
	}
}

func TestLoadAllCities(t *testing.T) {
	fsys := fstest.MapFS{
		"levels/b.tmx": {Data: []byte(testCityTMX)},
		"levels/a.tmx": {Data: []byte(testCityTMX)},
	}

	cities, err := LoadAllCities(fsys, "levels")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(cities) != 2 || cities[0].Name != "a" || cities[1].Name != "b" {
		t.Fatalf("expected cities a, b in order, got %d", len(cities))
	}
}

func TestLoadAllCitiesEmpty(t *testing.T) {
	if _, err := LoadAllCities(fstest.MapFS{}, "levels"); err == nil {
		t.Fatal("expected an error when no maps exist")
	}
}

func TestParseBeamLayout(t *testing.T) {
	if parseBeamLayout("none") != BeamsNone || parseBeamLayout("") != BeamsCorners || parseBeamLayout("bogus") != BeamsCorners {
		t.Fatal("unexpected beam layout parsing")
	}
}
