package main

import (
	"flag"
	"image"
	"io"
	"log"

	"github.com/automoto/megaphone/assets"
	"github.com/automoto/megaphone/config"
	"github.com/automoto/megaphone/fonts"
	"github.com/automoto/megaphone/scenes"
	"github.com/automoto/megaphone/systems"
	"github.com/hajimehoshi/ebiten/v2"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene interface{}) {
	g.scene = scene.(Scene)
}

func NewGame(opts scenes.WorldOptions) *Game {
	g := &Game{
		bounds: image.Rectangle{},
	}

	newWorld := func() interface{} {
		return scenes.NewPlatformerScene(g, opts)
	}

	if config.Debug.SkipMenu {
		g.scene = scenes.NewPlatformerScene(g, opts)
	} else {
		g.scene = scenes.NewMenuScene(g, newWorld)
	}

	return g
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func main() {
	levelIndex := flag.Int("level", 0, "Level index to start on (0-based)")
	tuningPath := flag.String("config", "", "YAML file overriding physics and combat tuning")
	watch := flag.Bool("watch", false, "Reload the -config file when it changes")
	debug := flag.Bool("debug", false, "Show collision boxes")
	skipMenu := flag.Bool("skip-menu", false, "Start directly in the game")
	mute := flag.Bool("mute", false, "Start with sound muted")
	flag.Parse()

	config.Debug.ShowBoxes = *debug
	config.Debug.SkipMenu = *skipMenu
	config.Debug.Mute = *mute

	if *tuningPath != "" {
		if err := config.LoadTuningFile(*tuningPath); err != nil {
			log.Fatalf("Failed to load tuning: %v", err)
		}
	}

	levels, err := assets.LoadEmbeddedLevels()
	if err != nil {
		log.Fatalf("Failed to load levels: %v", err)
	}
	if *levelIndex < 0 || *levelIndex >= len(levels) {
		log.Printf("Warning: Level %d does not exist, starting at 0", *levelIndex)
		*levelIndex = 0
	}

	if err := fonts.LoadDefaults(); err != nil {
		log.Fatalf("Failed to load fonts: %v", err)
	}

	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle(config.C.Title)
	ebiten.SetTPS(config.Loop.TPS)

	// Initialize persistence and load saved settings
	if err := systems.InitPersistence(); err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
	}
	if saved, err := systems.LoadSettings(); err == nil && saved != nil {
		systems.ApplySavedSettings(saved)
	}
	if config.Debug.Mute {
		systems.SetMuted(true)
	}

	game := NewGame(scenes.WorldOptions{
		Levels:     levels,
		LevelIndex: *levelIndex,
		TuningPath: *tuningPath,
		Watch:      *watch,
	})
	err = ebiten.RunGame(game)
	if c, ok := game.scene.(io.Closer); ok {
		_ = c.Close()
	}
	if err != nil {
		log.Fatal(err)
	}
}
