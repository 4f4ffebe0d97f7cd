package game

import (
	"github.com/vovakirdan/tui-platformer/internal/core"
)

// MenuItem is one of the main menu buttons.
type MenuItem int

const (
	MenuStart MenuItem = iota
	MenuMusic
	MenuSound
	MenuExit
)

// MenuItems lists the buttons top to bottom.
var MenuItems = []MenuItem{MenuStart, MenuMusic, MenuSound, MenuExit}

// Button geometry in world units.
const (
	buttonWidth     = 200
	buttonHeight    = 40
	buttonSpacing   = 60
	firstButtonY    = -50 // Offset of the Start button from the vertical center
	closeButtonSize = 32
	closeMargin     = 10
)

// Button is a clickable rectangle in world coordinates.
type Button struct {
	Item MenuItem
	Rect core.Rect
}

// MenuButtons returns the menu button rectangles for a level of the given size.
func MenuButtons(width, height float64) []Button {
	cx, cy := int(width)/2, int(height)/2
	buttons := make([]Button, 0, len(MenuItems))
	for i, item := range MenuItems {
		buttons = append(buttons, Button{
			Item: item,
			Rect: core.NewRect(cx-buttonWidth/2, cy+firstButtonY+i*buttonSpacing, buttonWidth, buttonHeight),
		})
	}
	return buttons
}

// CloseButton returns the close control in the top-right corner.
func CloseButton(width float64) core.Rect {
	return core.NewRect(int(width)-closeMargin-closeButtonSize, closeMargin, closeButtonSize, closeButtonSize)
}

// Label returns the button caption for the current toggle flags.
func (m MenuItem) Label(musicOn, soundOn bool) string {
	switch m {
	case MenuStart:
		return "Start Game"
	case MenuMusic:
		return "Music: " + onOff(musicOn)
	case MenuSound:
		return "Sound: " + onOff(soundOn)
	case MenuExit:
		return "Exit"
	default:
		return ""
	}
}

func onOff(v bool) string {
	if v {
		return "On"
	}
	return "Off"
}
