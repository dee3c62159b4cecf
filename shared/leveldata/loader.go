package leveldata

import (
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/lafriks/go-tiled"
)

// LoadLevel parses a TMX file into spawns. It takes an fs.FS so callers can
// pass embed.FS (client) or os.DirFS (server).
func LoadLevel(fsys fs.FS, tmxPath string) (*LevelData, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	data := &LevelData{
		Name:   strings.TrimSuffix(path.Base(tmxPath), ".tmx"),
		Width:  levelMap.Width * levelMap.TileWidth,
		Height: levelMap.Height * levelMap.TileHeight,
	}
	if levelMap.Properties != nil {
		data.TimeLimit = levelMap.Properties.GetInt("time_limit")
	}

	for _, og := range levelMap.ObjectGroups {
		kind, ok := groupKinds[og.Name]
		if !ok {
			continue
		}
		for _, o := range og.Objects {
			if o.X < 0 || o.Y < 0 {
				return nil, fmt.Errorf("%s: object %d in %s has negative position", tmxPath, o.ID, og.Name)
			}
			data.Spawns = append(data.Spawns, Spawn{
				Kind:     kind,
				Name:     o.Name,
				X:        o.X,
				Y:        o.Y,
				W:        o.Width,
				H:        o.Height,
				Mass:     o.Properties.GetFloat("mass"),
				Gravity:  o.Properties.GetFloat("gravity"),
				Health:   o.Properties.GetInt("health"),
				Speed:    o.Properties.GetFloat("speed"),
				Bounce:   o.Properties.GetBool("bounce"),
				TravelX:  o.Properties.GetFloat("travel_x"),
				TravelY:  o.Properties.GetFloat("travel_y"),
				Duration: o.Properties.GetFloat("duration"),
			})
		}
	}

	if _, ok := data.PlayerSpawn(); !ok {
		return nil, fmt.Errorf("%s: %w", tmxPath, ErrNoPlayerSpawn)
	}

	return data, nil
}

// LoadAllLevels discovers all .tmx files in levelsDir within fsys and returns
// them sorted by file name.
func LoadAllLevels(fsys fs.FS, levelsDir string) ([]*LevelData, error) {
	pattern := levelsDir + "/*.tmx"
	matches, err := fs.Glob(fsys, pattern)
	if err != nil {
		return nil, fmt.Errorf("glob %s: %w", pattern, err)
	}
	if len(matches) == 0 {
		return nil, fmt.Errorf("no .tmx files found in %s", levelsDir)
	}
	sort.Strings(matches)

	levels := make([]*LevelData, 0, len(matches))
	for _, p := range matches {
		data, err := LoadLevel(fsys, p)
		if err != nil {
			return nil, fmt.Errorf("load %s: %w", p, err)
		}
		levels = append(levels, data)
	}
	return levels, nil
}
