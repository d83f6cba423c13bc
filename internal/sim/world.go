// Package sim is an in-memory engine that implements package host. Tests
// drive it frame by frame; the demo renders it.
package sim

import (
	"maps"

	"smoothcam/internal/host"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Sender is the name the world broadcasts lifecycle messages under.
const Sender = host.EngineSender

// Default runtime reported by Info.
var DefaultRuntime = host.Version{Major: 1, Minor: 6, Patch: 640}

// Native setting values.
var defaultSettings = map[host.SettingID]float32{
	host.SettingAutoVanityModeDelay: 120,
	host.SettingPitchZoomOutMaxDist: 100,
	host.SettingChaseCameraSpeed:    500,
}

type World struct {
	Actors []*Actor
	byID   map[uint32]*Actor
	nextID uint32

	player    *Actor
	camera    *Camera
	controls  controlMap
	settings  settingsMap
	hooks     host.HookTable
	listeners map[string][]func(host.Message)
	info      host.Info

	frameTime float32
	// Frame counts completed frames.
	Frame int
	// RefuseListeners makes RegisterListener fail.
	RefuseListeners bool
	// FreeRotationToggles counts native SetFreeRotationMode calls that ran.
	FreeRotationToggles int

	ScriptVM ScriptVM
}

func New() *World {
	w := &World{
		byID:      make(map[uint32]*Actor),
		nextID:    0x14,
		camera:    newCamera(),
		controls:  controlMap{mask: host.InputAll},
		settings:  settingsMap(maps.Clone(defaultSettings)),
		listeners: make(map[string][]func(host.Message)),
		info:      host.Info{Runtime: DefaultRuntime},
	}
	w.hooks = host.HookTable{
		UpdateRotation:      w.nativeUpdateRotation,
		UpdateOffsets:       w.nativeUpdateOffsets,
		SetFreeRotationMode: w.nativeSetFreeRotationMode,
		UpdatePlayer:        w.nativeUpdatePlayer,
	}

	w.player = NewActor("Player")
	w.Spawn(w.player)
	w.camera.target = w.player.Ref()
	return w
}

// Spawn adds a to the world, assigning a form ID if it has none.
func (w *World) Spawn(a *Actor) {
	if a.FormID == 0 {
		a.FormID = w.nextID
		w.nextID++
	} else if a.FormID >= w.nextID {
		w.nextID = a.FormID + 1
	}
	a.world = w
	w.Actors = append(w.Actors, a)
	w.byID[a.FormID] = a
}

// Despawn removes a. References to it stop resolving.
func (w *World) Despawn(a *Actor) {
	for i, obj := range w.Actors {
		if obj == a {
			w.Actors = append(w.Actors[:i], w.Actors[i+1:]...)
			break
		}
	}
	delete(w.byID, a.FormID)
	a.world = nil
}

func (w *World) FindByName(name string) *Actor {
	for _, a := range w.Actors {
		if a.Name == name {
			return a
		}
	}
	return nil
}

func (w *World) FindByID(id uint32) *Actor {
	return w.byID[id]
}

// LookupActor implements host.ActorLookup.
func (w *World) LookupActor(ref host.ActorRef) host.Actor {
	if a, ok := w.byID[ref.ID]; ok {
		return a
	}
	return nil
}

func (w *World) ElapsedSeconds() float32 { return w.frameTime }

func (w *World) Camera() host.Camera     { return w.camera }
func (w *World) Controls() host.Controls { return &w.controls }
func (w *World) Settings() host.Settings { return w.settings }
func (w *World) Player() host.Actor      { return w.player }
func (w *World) Hooks() *host.HookTable  { return &w.hooks }
func (w *World) Messaging() host.Messaging {
	return w
}
func (w *World) Info() host.Info { return w.info }

// SetInfo changes what Info reports.
func (w *World) SetInfo(info host.Info) {
	w.info = info
}

// PlayerActor is the concrete player.
func (w *World) PlayerActor() *Actor {
	return w.player
}

// SimCamera is the concrete camera.
func (w *World) SimCamera() *Camera {
	return w.camera
}

// SettingsSnapshot copies all setting values.
func (w *World) SettingsSnapshot() map[host.SettingID]float32 {
	return maps.Clone(w.settings)
}

// RegisterListener implements host.Messaging.
func (w *World) RegisterListener(sender string, fn func(host.Message)) bool {
	if w.RefuseListeners || fn == nil {
		return false
	}
	w.listeners[sender] = append(w.listeners[sender], fn)
	return true
}

// Broadcast delivers a lifecycle message to listeners of Sender.
func (w *World) Broadcast(t host.MessageType) {
	msg := host.Message{Sender: Sender, Type: t}
	for _, fn := range w.listeners[Sender] {
		fn(msg)
	}
}

// Step runs one frame of dt seconds through the hook table.
func (w *World) Step(dt float32) {
	w.frameTime = dt

	w.hooks.UpdatePlayer(w.player, dt)
	for _, a := range w.Actors {
		if a != w.player {
			a.move(dt)
		}
	}

	if w.camera.thirdPerson {
		w.hooks.UpdateOffsets(&w.camera.state)
		w.hooks.UpdateRotation(&w.camera.state)
	}
	w.Frame++
}

// Focus is the actor the camera looks at, falling back to the player.
func (w *World) Focus() *Actor {
	if a, ok := w.byID[w.camera.target.ID]; ok {
		return a
	}
	return w.player
}

// Eye returns the camera position and look target for rendering.
func (w *World) Eye() (position, target rl.Vector3) {
	focus := w.Focus().Position()
	if !w.camera.thirdPerson {
		head := rl.Vector3Add(focus, rl.Vector3{Z: 120})
		look := rl.Vector3RotateByQuaternion(rl.Vector3{Y: 1}, rotation(w.camera.Pitch, w.player.Heading()))
		return head, rl.Vector3Add(head, look)
	}

	s := &w.camera.state
	pivot := rl.Vector3Add(focus, rl.Vector3RotateByQuaternion(s.PosOffsetActual, rotation(0, s.CurrentYaw)))
	look := rl.Vector3RotateByQuaternion(rl.Vector3{Y: 1}, s.Rotation)
	position = rl.Vector3Subtract(pivot, rl.Vector3Scale(look, w.camera.Zoom))
	return position, pivot
}

func (w *World) nativeUpdateRotation(s *host.ThirdPersonState) {
	s.Rotation = rotation(w.camera.Pitch, s.CurrentYaw)
}

func (w *World) nativeUpdateOffsets(s *host.ThirdPersonState) {
	s.PosOffsetActual = rl.Vector3Lerp(s.PosOffsetActual, s.PosOffsetExpected, clamp01(10*w.frameTime))
	if !s.FreeRotation {
		s.TargetYaw = w.player.Heading()
	}
	speed := w.settings.Setting(host.SettingChaseCameraSpeed) / 100
	s.CurrentYaw = chase(s.CurrentYaw, s.TargetYaw, speed, w.frameTime)
}

func (w *World) nativeSetFreeRotationMode(s *host.ThirdPersonState, enabled bool) {
	w.FreeRotationToggles++
	s.FreeRotation = enabled
}

// nativeUpdatePlayer moves the player and, like the engine, drops free
// rotation as soon as the player walks.
func (w *World) nativeUpdatePlayer(player host.Actor, delta float32) {
	p, ok := player.(*Actor)
	if !ok {
		return
	}
	p.move(delta)
	if p.Velocity != (rl.Vector3{}) && w.camera.state.FreeRotation {
		w.hooks.SetFreeRotationMode(&w.camera.state, false)
	}
}

func clamp01(v float32) float32 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

type controlMap struct {
	mask host.InputFlags
}

func (c *controlMap) EnabledControls() host.InputFlags {
	return c.mask
}

func (c *controlMap) SetEnabledControls(mask host.InputFlags) host.InputFlags {
	prev := c.mask
	c.mask = mask
	return prev
}

type settingsMap map[host.SettingID]float32

func (s settingsMap) Setting(id host.SettingID) float32 {
	return s[id]
}

func (s settingsMap) SetSetting(id host.SettingID, v float32) {
	s[id] = v
}
