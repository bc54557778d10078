package assets

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sort"

	"github.com/automoto/megaphone/gamemath"
	"github.com/lafriks/go-tiled"
)

var (
	//go:embed all:levels
	assetFS embed.FS
)

// Object group names read from the TMX maps.
const (
	groupPlatforms    = "Platforms"
	groupTreadmills   = "Treadmills"
	groupCollectibles = "Collectibles"
	groupEnemies      = "Enemies"
	groupBoss         = "Boss"
	groupSpawn        = "Spawn"
)

// Level is an immutable stage definition. Runtime entities are instantiated
// from it and never write back.
type Level struct {
	Name         string
	Goal         string
	Width        int
	Height       int
	Spawn        *PlayerSpawn // nil when the map has no spawn object
	Platforms    []gamemath.Rect
	Treadmills   []TreadmillSpawn
	Collectibles []CollectibleSpawn
	Enemies      []EnemySpawn
	Boss         *BossSpawn
}

type PlayerSpawn struct {
	X, Y float64
}

type TreadmillSpawn struct {
	gamemath.Rect
	Dir float64 // -1 or 1
}

type CollectibleSpawn struct {
	gamemath.Rect
	Label string
}

type EnemySpawn struct {
	gamemath.Rect
	PatrolMin float64
	PatrolMax float64
}

type BossSpawn struct {
	gamemath.Rect
	HP int
}

// LoadLevels parses every .tmx file in dir, ordered by file name. It takes an
// fs.FS so tests and tools can pass os.DirFS or fstest.MapFS.
func LoadLevels(fsys fs.FS, dir string) ([]Level, error) {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return nil, fmt.Errorf("read levels directory %s: %w", dir, err)
	}

	var names []string
	for _, entry := range entries {
		if !entry.IsDir() && path.Ext(entry.Name()) == ".tmx" {
			names = append(names, entry.Name())
		}
	}
	sort.Strings(names)

	levels := make([]Level, 0, len(names))
	for _, name := range names {
		level, err := LoadLevel(fsys, path.Join(dir, name))
		if err != nil {
			return nil, err
		}
		levels = append(levels, level)
	}

	if len(levels) == 0 {
		return nil, fmt.Errorf("no level files found in %s", dir)
	}
	return levels, nil
}

// LoadEmbeddedLevels loads the level set compiled into the binary.
func LoadEmbeddedLevels() ([]Level, error) {
	return LoadLevels(assetFS, "levels")
}

// MustLoadLevels is LoadEmbeddedLevels for tests and tools.
func MustLoadLevels() []Level {
	levels, err := LoadEmbeddedLevels()
	if err != nil {
		panic(err)
	}
	return levels
}

// LoadLevel parses a single TMX map.
func LoadLevel(fsys fs.FS, tmxPath string) (Level, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return Level{}, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	level := Level{
		Name:   levelMap.Properties.GetString("name"),
		Goal:   levelMap.Properties.GetString("goal"),
		Width:  levelMap.Width * levelMap.TileWidth,
		Height: levelMap.Height * levelMap.TileHeight,
	}
	if level.Name == "" {
		level.Name = path.Base(tmxPath)
	}

	for _, og := range levelMap.ObjectGroups {
		switch og.Name {
		case groupPlatforms:
			for _, o := range og.Objects {
				level.Platforms = append(level.Platforms, objectRect(o))
			}
		case groupTreadmills:
			for _, o := range og.Objects {
				dir := 1.0
				if o.Properties.GetInt("dir") < 0 {
					dir = -1
				}
				level.Treadmills = append(level.Treadmills, TreadmillSpawn{
					Rect: objectRect(o),
					Dir:  dir,
				})
			}
		case groupCollectibles:
			for _, o := range og.Objects {
				label := o.Properties.GetString("label")
				if label == "" {
					label = o.Name
				}
				level.Collectibles = append(level.Collectibles, CollectibleSpawn{
					Rect:  objectRect(o),
					Label: label,
				})
			}
		case groupEnemies:
			for _, o := range og.Objects {
				level.Enemies = append(level.Enemies, EnemySpawn{
					Rect:      objectRect(o),
					PatrolMin: o.Properties.GetFloat("patrolMin"),
					PatrolMax: o.Properties.GetFloat("patrolMax"),
				})
			}
		case groupBoss:
			for _, o := range og.Objects {
				if level.Boss != nil {
					return Level{}, fmt.Errorf("level %s: more than one boss", tmxPath)
				}
				level.Boss = &BossSpawn{
					Rect: objectRect(o),
					HP:   o.Properties.GetInt("hp"),
				}
			}
		case groupSpawn:
			for _, o := range og.Objects {
				level.Spawn = &PlayerSpawn{X: o.X, Y: o.Y}
			}
		}
	}

	if len(level.Platforms) == 0 {
		return Level{}, fmt.Errorf("level %s: no platforms", tmxPath)
	}

	return level, nil
}

func objectRect(o *tiled.Object) gamemath.Rect {
	return gamemath.Rect{X: o.X, Y: o.Y, W: o.Width, H: o.Height}
}

// NextIndex returns the index after i in a cyclic sequence of n levels.
func NextIndex(i, n int) int {
	if n <= 0 {
		return 0
	}
	return ((i+1)%n + n) % n
}

// PrevIndex returns the index before i in a cyclic sequence of n levels.
func PrevIndex(i, n int) int {
	if n <= 0 {
		return 0
	}
	return ((i-1)%n + n) % n
}
