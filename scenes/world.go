package scenes

import (
	"fmt"
	"image/color"
	"log"
	"sync"

	"github.com/automoto/skater/assets"
	cfg "github.com/automoto/skater/config"
	"github.com/automoto/skater/systems"
	"github.com/automoto/skater/systems/factory"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// SkateScene is a park with one rider in it.
type SkateScene struct {
	ecs       *ecs.ECS
	levelName string
	once      sync.Once
}

// NewSkateScene creates the scene for a park. An empty name picks the first one.
func NewSkateScene(levelName string) *SkateScene {
	return &SkateScene{levelName: levelName}
}

func (s *SkateScene) Update() {
	s.once.Do(s.configure)
	s.ecs.Update()
}

func (s *SkateScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if s.ecs == nil {
		return
	}
	s.ecs.Draw(screen)
}

func (s *SkateScene) configure() {
	// Render effects up front so the first landing has no synthesis lag
	systems.PreloadAllSFX()

	shaderLoaded := true
	if err := assets.LoadShaders(); err != nil {
		log.Printf("Warning: speed blur disabled: %v", err)
		shaderLoaded = false
	}

	e := ecs.NewECS(donburi.NewWorld())

	// Systems that always run
	e.AddSystem(systems.UpdateInput)
	e.AddSystem(systems.UpdatePause)
	e.AddSystem(systems.UpdateSettings)

	// Rider tick: the controller queues movement, then the character moves
	e.AddSystem(systems.WithPauseCheck(systems.UpdateSkaters))
	e.AddSystem(systems.WithPauseCheck(systems.UpdateMovement))
	e.AddSystem(systems.WithPauseCheck(systems.UpdateRespawn))
	e.AddSystem(systems.WithPauseCheck(systems.UpdateJumpCues))
	e.AddSystem(systems.WithPauseCheck(systems.UpdateCamera))
	e.AddSystem(systems.WithPauseCheck(systems.UpdateSkateAudio))

	e.AddRenderer(cfg.Default, systems.DrawWorld)
	e.AddRenderer(cfg.Default, systems.DrawDebug)
	e.AddRenderer(cfg.Default, systems.DrawHUD)
	e.AddRenderer(cfg.Default, systems.DrawPause)

	s.ecs = e

	if err := s.populate(shaderLoaded); err != nil {
		panic(err)
	}
}

// populate creates the park, camera and rider.
func (s *SkateScene) populate(shaderLoaded bool) error {
	levels, names, err := assets.LoadLevels()
	if err != nil {
		return err
	}
	name := s.levelName
	if name == "" {
		name = names[0]
	}
	data, ok := levels[name]
	if !ok {
		return fmt.Errorf("level %q not found (have %v)", name, names)
	}

	// The space must exist before terrain is added to it.
	factory.CreateSpace(s.ecs, data.Width, data.Height, 16, 16)
	if _, err := factory.CreateLevel(s.ecs, data); err != nil {
		return err
	}

	// Spawn points are feet positions in TMX pixels
	sp := data.SpawnPoints[0]
	spawn := mgl64.Vec3{sp.X, 0, float64(data.Height) - sp.Y}

	camera := factory.CreateCamera(s.ecs, sp.X, sp.Y)
	post := factory.CreatePostProcess(s.ecs, shaderLoaded)
	factory.CreateSkater(s.ecs, spawn, camera, post)

	log.Printf("Skating %s (%dx%d, %d terrain pieces)", data.Name, data.Width, data.Height, len(data.Terrain))
	return nil
}
