package host

import "fmt"

// HookTable holds the engine entry points an extension may redirect. Each
// field is a slot the engine calls through every frame; replacing the field
// replaces the behavior. Engines must fill every slot with their native
// implementation before handing the table out.
type HookTable struct {
	// UpdateRotation recomputes the third-person camera rotation.
	UpdateRotation func(s *ThirdPersonState)
	// UpdateOffsets advances camera offset and yaw toward their targets.
	UpdateOffsets func(s *ThirdPersonState)
	// SetFreeRotationMode toggles free camera rotation around the player.
	SetFreeRotationMode func(s *ThirdPersonState, enabled bool)
	// UpdatePlayer is the player character's per-frame update.
	UpdatePlayer func(player Actor, delta float32)
}

// EngineSender is the sender name engine lifecycle messages arrive under.
const EngineSender = "host"

// Message types broadcast by the engine's messaging service.
const (
	MessagePostLoad MessageType = iota + 1
	MessageInputLoaded
	MessageDataLoaded
	MessageNewGame
	MessagePreLoadGame
	MessagePostLoadGame
)

type MessageType int

func (t MessageType) String() string {
	switch t {
	case MessagePostLoad:
		return "PostLoad"
	case MessageInputLoaded:
		return "InputLoaded"
	case MessageDataLoaded:
		return "DataLoaded"
	case MessageNewGame:
		return "NewGame"
	case MessagePreLoadGame:
		return "PreLoadGame"
	case MessagePostLoadGame:
		return "PostLoadGame"
	}
	return fmt.Sprintf("message(%d)", int(t))
}

type Message struct {
	Sender string
	Type   MessageType
}

// Messaging delivers engine lifecycle messages to extensions.
type Messaging interface {
	// RegisterListener subscribes fn to messages from sender. It returns false
	// if the engine refused the registration.
	RegisterListener(sender string, fn func(Message)) bool
}

// Version is an engine runtime version.
type Version struct {
	Major, Minor, Patch, Build uint16
}

func (v Version) Less(o Version) bool {
	a := [4]uint16{v.Major, v.Minor, v.Patch, v.Build}
	b := [4]uint16{o.Major, o.Minor, o.Patch, o.Build}
	for i := range a {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}
	return false
}

func (v Version) String() string {
	return fmt.Sprintf("%d.%d.%d.%d", v.Major, v.Minor, v.Patch, v.Build)
}

// Info describes the process the extension was loaded into.
type Info struct {
	Runtime Version
	// Editor is set when loaded into the content editor rather than the game.
	Editor bool
}

// ScriptRegistry is the engine's script VM, which exposes native functions to
// game scripts.
type ScriptRegistry interface {
	// RegisterFunction binds fn as class.name. It returns false if the VM
	// rejected the binding.
	RegisterFunction(name, class string, fn any) bool
}
