package components

import (
	cfg "github.com/automoto/streakdrawer/config"
	"github.com/yohamta/donburi"
)

// InputMethod represents the type of input device being used
type InputMethod int

const (
	InputKeyboard InputMethod = iota
	InputXbox
	InputPlayStation
	InputTouch
	InputMouse
)

func (m InputMethod) String() string {
	switch m {
	case InputXbox:
		return "xbox"
	case InputPlayStation:
		return "playstation"
	case InputTouch:
		return "touch"
	case InputMouse:
		return "mouse"
	default:
		return "keyboard"
	}
}

// ActionState represents the temporal state of an action
type ActionState struct {
	Pressed      bool // Currently held down
	JustPressed  bool // Pressed this frame
	JustReleased bool // Released this frame
}

// Tap is a touch or left click that started this frame, in screen pixels.
type Tap struct {
	X, Y  float64
	Touch bool
}

// InputData stores the current and previous frame's pressed state for all actions.
// JustPressed/JustReleased are computed on-demand by comparing frames.
type InputData struct {
	Current         [cfg.ActionCount]bool // Current frame's Pressed state
	Previous        [cfg.ActionCount]bool // Previous frame's Pressed state
	LastInputMethod InputMethod           // Most recently used input method
	Taps            []Tap                 // Taps started this frame
}

var Input = donburi.NewComponentType[InputData]()
