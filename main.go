package main

import (
	"flag"
	"image"
	"log"

	"github.com/automoto/skater/config"
	"github.com/automoto/skater/fonts"
	"github.com/automoto/skater/scenes"
	"github.com/automoto/skater/systems"
	"github.com/automoto/skater/tuning"
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

func NewGame(levelName string) *Game {
	g := &Game{
		bounds: image.Rectangle{},
	}

	if config.Debug.SkipMenu || levelName != "" {
		g.scene = scenes.NewSkateScene(levelName)
	} else {
		g.scene = scenes.NewMenuScene(g)
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
	tuningPath := flag.String("tuning", "", "YAML file overriding skate and movement constants")
	levelName := flag.String("level", "", "park to load, skipping the menu")
	flag.BoolVar(&config.Debug.SkipMenu, "skip-menu", config.Debug.SkipMenu, "start the first park right away")
	flag.BoolVar(&config.Debug.Overlay, "debug", config.Debug.Overlay, "start with the debug overlay on")
	flag.BoolVar(&config.Debug.LogProbes, "log-probes", config.Debug.LogProbes, "log wheel probe status changes")
	flag.Parse()

	if *tuningPath != "" {
		f, err := tuning.Load(*tuningPath)
		if err != nil {
			log.Fatalf("Failed to load tuning: %v", err)
		}
		f.Apply(&config.Skate, &config.Movement)
		log.Printf("Loaded tuning from %s", *tuningPath)
	}

	if err := fonts.LoadDefaults(config.UI.HUDFontSize, config.UI.DebugFontSize); err != nil {
		log.Fatalf("Failed to load fonts: %v", err)
	}

	ebiten.SetWindowSize(config.C.Width*2, config.C.Height*2)
	ebiten.SetWindowTitle(config.C.Title)
	ebiten.SetTPS(config.C.TPS)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeOnlyFullscreenEnabled)

	// Initialize persistence and load saved settings
	if err := systems.InitPersistence(); err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
	}
	saved, err := systems.LoadSettings()
	if err != nil {
		log.Printf("Warning: %v", err)
	}
	systems.ApplySavedSettingsGlobal(saved)

	if err := ebiten.RunGame(NewGame(*levelName)); err != nil {
		log.Fatal(err)
	}
}
