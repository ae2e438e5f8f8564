package components

import "github.com/yohamta/donburi"

// MenuData stores the park select menu. The last entry is always Exit.
type MenuData struct {
	SelectedIndex int
	Parks         []string
}

// Menu is the component type for main menu state
var Menu = donburi.NewComponentType[MenuData]()
