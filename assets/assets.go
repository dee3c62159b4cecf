package assets

import (
	"embed"
	"fmt"
	"io/fs"

	"github.com/automoto/stretch/shared/leveldata"
)

// LevelsDir is the directory inside LevelFS holding the .tmx files.
const LevelsDir = "levels"

//go:embed all:levels
var assetFS embed.FS

// LevelFS exposes the embedded level files.
func LevelFS() fs.FS {
	return assetFS
}

// MustLoadLevels parses every embedded level, in file name order.
func MustLoadLevels() []*leveldata.LevelData {
	levels, err := leveldata.LoadAllLevels(assetFS, LevelsDir)
	if err != nil {
		panic(fmt.Errorf("embedded levels: %w", err))
	}
	return levels
}
