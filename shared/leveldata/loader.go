package leveldata

import (
	"fmt"
	"io/fs"
	"math"
	"path/filepath"
	"sort"
	"strings"

	"github.com/lafriks/go-tiled"
)

const (
	buildingsGroup    = "Buildings"
	vehicleSpawnGroup = "VehicleSpawn"
)

// LoadCityData parses a TMX file and returns building footprints and vehicle spawns.
// It takes an fs.FS so callers can pass embed.FS or os.DirFS.
func LoadCityData(fsys fs.FS, tmxPath string) (*CityData, error) {
	cityMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	data := &CityData{
		Name:      strings.TrimSuffix(filepath.Base(tmxPath), ".tmx"),
		MapWidth:  cityMap.Width * cityMap.TileWidth,
		MapHeight: cityMap.Height * cityMap.TileHeight,
	}

	for _, og := range cityMap.ObjectGroups {
		switch og.Name {
		case buildingsGroup:
			for _, o := range og.Objects {
				if o.Width <= 0 || o.Height <= 0 {
					continue
				}
				data.Buildings = append(data.Buildings, BuildingFootprint{
					Name:         o.Name,
					X:            o.X,
					Y:            o.Y,
					W:            o.Width,
					H:            o.Height,
					MaxParticles: o.Properties.GetInt("maxParticles"),
					Beams:        parseBeamLayout(o.Properties.GetString("beams")),
				})
			}
		case vehicleSpawnGroup:
			for _, o := range og.Objects {
				data.VehicleSpawns = append(data.VehicleSpawns, SpawnPoint{
					X:       o.X,
					Y:       o.Y,
					Heading: float64(o.Properties.GetInt("headingDeg")) * math.Pi / 180,
					Index:   o.Properties.GetInt("spawnIndex"),
				})
			}
		}
	}

	sort.Slice(data.VehicleSpawns, func(i, j int) bool {
		return data.VehicleSpawns[i].Index < data.VehicleSpawns[j].Index
	})

	return data, nil
}

func parseBeamLayout(s string) BeamLayout {
	switch BeamLayout(s) {
	case BeamsEdges:
		return BeamsEdges
	case BeamsNone:
		return BeamsNone
	default:
		return BeamsCorners
	}
}

// LoadAllCities discovers all .tmx files in dir within fsys and returns them sorted by name.
func LoadAllCities(fsys fs.FS, dir string) ([]*CityData, error) {
	pattern := dir + "/*.tmx"
	matches, err := fs.Glob(fsys, pattern)
	if err != nil {
		return nil, fmt.Errorf("glob %s: %w", pattern, err)
	}
	if len(matches) == 0 {
		return nil, fmt.Errorf("no .tmx files found in %s", dir)
	}

	sort.Strings(matches)
	cities := make([]*CityData, 0, len(matches))
	for _, path := range matches {
		data, err := LoadCityData(fsys, path)
		if err != nil {
			return nil, fmt.Errorf("load %s: %w", path, err)
		}
		cities = append(cities, data)
	}
	return cities, nil
}
