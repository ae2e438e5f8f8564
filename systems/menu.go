package systems

import (
	"os"
	"strings"

	"github.com/automoto/skater/components"
	cfg "github.com/automoto/skater/config"
	"github.com/automoto/skater/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// SceneChanger allows systems to trigger scene transitions
type SceneChanger interface {
	ChangeScene(scene interface{})
}

// NewUpdateMenu creates the park select system. createSkateScene builds the
// scene for a park name.
func NewUpdateMenu(sceneChanger SceneChanger, parks []string, createSkateScene func(park string) interface{}) ecs.System {
	return func(e *ecs.ECS) {
		menu := GetOrCreateMenu(e, parks)
		input := getOrCreateInput(e)

		numOptions := len(menu.Parks) + 1
		if GetAction(input, cfg.ActionMenuUp).JustPressed {
			menu.SelectedIndex = (menu.SelectedIndex - 1 + numOptions) % numOptions
		}
		if GetAction(input, cfg.ActionMenuDown).JustPressed {
			menu.SelectedIndex = (menu.SelectedIndex + 1) % numOptions
		}

		if GetAction(input, cfg.ActionMenuSelect).JustPressed {
			if menu.SelectedIndex == len(menu.Parks) {
				os.Exit(0)
			}
			sceneChanger.ChangeScene(createSkateScene(menu.Parks[menu.SelectedIndex]))
			return
		}

		if GetAction(input, cfg.ActionMenuBack).JustPressed {
			os.Exit(0)
		}
	}
}

// DrawMenu renders the park select screen
func DrawMenu(e *ecs.ECS, screen *ebiten.Image) {
	menu := GetOrCreateMenu(e, nil)

	width := screen.Bounds().Dx()
	height := screen.Bounds().Dy()

	vector.DrawFilledRect(screen, 0, 0, float32(width), float32(height), cfg.Menu.BackgroundColor, false)

	titleFont := fonts.Regular.Get()
	title := "SKATER"
	titleWidth := text.BoundString(titleFont, title).Dx()
	text.Draw(screen, title, titleFont, (width-titleWidth)/2, int(cfg.Menu.TitleY), cfg.Menu.TitleColor)

	labels := append(append([]string{}, menu.Parks...), "Exit")
	for i, label := range labels {
		y := cfg.Menu.MenuStartY + float64(i)*(cfg.Menu.MenuItemHeight+cfg.Menu.MenuItemGap)

		textColor := cfg.Menu.TextColorNormal
		if i == menu.SelectedIndex {
			textColor = cfg.Menu.TextColorSelected
		}

		label = strings.ToUpper(label)
		textWidth := text.BoundString(titleFont, label).Dx()
		text.Draw(screen, label, titleFont, (width-textWidth)/2, int(y)+int(cfg.Menu.MenuItemHeight), textColor)
	}

	hint := getMenuHint(getOrCreateInput(e).LastInputMethod)
	hintFont := fonts.Small.Get()
	hintWidth := text.BoundString(hintFont, hint).Dx()
	text.Draw(screen, hint, hintFont, (width-hintWidth)/2, height-12, cfg.Menu.TextColorNormal)
}

// getMenuHint returns the appropriate hint for menu navigation
func getMenuHint(method components.InputMethod) string {
	switch method {
	case components.InputPlayStation:
		return "Left Stick/D-Pad: Navigate   Cross: Select"
	case components.InputXbox:
		return "Left Stick/D-Pad: Navigate   A: Select"
	}
	return "Arrows: Navigate   Enter: Select"
}

// GetOrCreateMenu returns the singleton Menu component, creating it with
// the given parks if needed
func GetOrCreateMenu(e *ecs.ECS, parks []string) *components.MenuData {
	entry, ok := components.Menu.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Menu))
		components.Menu.SetValue(entry, components.MenuData{Parks: parks})
	}
	return components.Menu.Get(entry)
}
