package assets

import (
	"embed"
	"io/fs"

	"github.com/idiovoidi/gta-classic-arcade/shared/leveldata"
)

var (
	//go:embed all:levels
	assetFS embed.FS
)

const levelsDir = "levels"

type LevelLoader struct {
	fsys fs.FS
}

// NewLevelLoader reads city maps embedded in the binary.
func NewLevelLoader() *LevelLoader {
	return &LevelLoader{fsys: assetFS}
}

// NewLevelLoaderFS reads city maps from fsys, for tests and modding.
func NewLevelLoaderFS(fsys fs.FS) *LevelLoader {
	return &LevelLoader{fsys: fsys}
}

// LoadCities returns every city map under levels/, sorted by name.
func (l *LevelLoader) LoadCities() ([]*leveldata.CityData, error) {
	return leveldata.LoadAllCities(l.fsys, levelsDir)
}

func (l *LevelLoader) MustLoadCities() []*leveldata.CityData {
	cities, err := l.LoadCities()
	if err != nil {
		panic(err)
	}
	return cities
}
