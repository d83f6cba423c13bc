package host

import "strings"

// InputFlags is the bitmask of user-event categories the engine accepts.
type InputFlags uint32

const (
	InputMovement InputFlags = 1 << iota
	InputLooking
	InputActivate
	InputMenu
	InputConsole
	InputPOVSwitch
	InputFighting
	InputSneaking
	InputMainFour
	InputWheelZoom
	InputJumping
	InputVATS

	InputAll InputFlags = 1<<12 - 1
)

// SessionBlocked is the set of categories disabled while a camera session
// owns the view.
const SessionBlocked = InputFighting | InputJumping | InputMenu | InputMovement | InputMainFour

var inputNames = []string{
	"movement", "looking", "activate", "menu", "console", "pov_switch",
	"fighting", "sneaking", "main_four", "wheel_zoom", "jumping", "vats",
}

func (f InputFlags) Has(other InputFlags) bool {
	return f&other == other
}

func (f InputFlags) String() string {
	if f == 0 {
		return "none"
	}
	var parts []string
	for i, name := range inputNames {
		if f&(1<<i) != 0 {
			parts = append(parts, name)
		}
	}
	if extra := f &^ InputAll; extra != 0 {
		parts = append(parts, "unknown")
	}
	return strings.Join(parts, "|")
}

// Controls is the engine's control map.
type Controls interface {
	EnabledControls() InputFlags
	// SetEnabledControls replaces the whole mask and returns the previous one.
	SetEnabledControls(mask InputFlags) InputFlags
}
