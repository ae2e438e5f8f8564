package scenes

import (
	"image/color"
	"sync"

	"github.com/automoto/skater/assets"
	cfg "github.com/automoto/skater/config"
	"github.com/automoto/skater/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// SceneChanger allows scenes to trigger transitions
type SceneChanger interface {
	ChangeScene(scene interface{})
}

// MenuScene lets the player pick a park
type MenuScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	once         sync.Once
}

func NewMenuScene(sc SceneChanger) *MenuScene {
	return &MenuScene{sceneChanger: sc}
}

func (ms *MenuScene) Update() {
	ms.once.Do(ms.configure)
	ms.ecs.Update()
}

func (ms *MenuScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ms.ecs == nil {
		return
	}
	ms.ecs.Draw(screen)
}

func (ms *MenuScene) configure() {
	ms.ecs = ecs.NewECS(donburi.NewWorld())

	_, parks, err := assets.LoadLevels()
	if err != nil {
		panic("failed to load parks: " + err.Error())
	}
	createSkateScene := func(park string) interface{} {
		return NewSkateScene(park)
	}

	ms.ecs.AddSystem(systems.UpdateInput)
	ms.ecs.AddSystem(systems.NewUpdateMenu(ms.sceneChanger, parks, createSkateScene))
	ms.ecs.AddRenderer(cfg.Default, systems.DrawMenu)
}
