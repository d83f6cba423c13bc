// Package api is the scripting surface of the camera extension: Shop.* drives
// the orbit session and Follow.* the follow session. Every call is
// synchronous and must arrive on the engine's frame thread.
package api

import (
	"fmt"
	"sort"

	"smoothcam/internal/camera"
	"smoothcam/internal/host"
	"smoothcam/internal/log"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// DefaultDirection aims straight along the player's facing.
var DefaultDirection = rl.Vector3{Y: 1}

// Preset is a canned inspection shot relative to the player.
type Preset struct {
	Pos rl.Vector3
	Dir rl.Vector3
}

// Presets are the inspection shots the debug panel offers.
var Presets = map[string]Preset{
	"Armor":  {Pos: rl.Vector3{X: 0, Y: -20, Z: -20}, Dir: rl.Vector3{X: 0, Y: -10, Z: -2}},
	"Helmet": {Pos: rl.Vector3{X: -20, Y: 20, Z: 10}, Dir: rl.Vector3{X: 20, Y: -20, Z: -3}},
	"All":    {Pos: rl.Vector3{X: 0, Y: -300, Z: 0}, Dir: rl.Vector3{X: 0, Y: -10, Z: -1}},
}

// PresetNames lists Presets in a stable order.
func PresetNames() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

type Surface struct {
	orbit  *camera.OrbitSession
	follow *camera.FollowSession
	actors host.ActorLookup
}

func New(orbit *camera.OrbitSession, follow *camera.FollowSession, actors host.ActorLookup) *Surface {
	return &Surface{orbit: orbit, follow: follow, actors: actors}
}

func (s *Surface) Orbit() *camera.OrbitSession {
	return s.orbit
}

func (s *Surface) Follow() *camera.FollowSession {
	return s.follow
}

// ShopStart activates the orbit session and, if it was inactive, aims it
// along the player's facing from the current offset.
func (s *Surface) ShopStart() {
	if s.orbit.Start() {
		s.orbit.SetTargetPosition(s.orbit.TargetPosition(), DefaultDirection)
	}
}

func (s *Surface) ShopEnd() {
	s.orbit.End()
}

func (s *Surface) ShopSetYawSpeed(v float32) {
	s.orbit.SetYawSpeed(v)
}

func (s *Surface) ShopSetPitchSpeed(v float32) {
	s.orbit.SetPitchSpeed(v)
}

func (s *Surface) ShopSetMoveSpeed(v float32) {
	s.orbit.SetMoveSpeed(v)
}

func (s *Surface) ShopSetPos(pos, dir host.Vec3) {
	s.orbit.SetTargetPosition(pos, dir)
}

// ShopPreset applies a named preset. Unknown names are ignored.
func (s *Surface) ShopPreset(name string) bool {
	p, ok := Presets[name]
	if !ok {
		log.Debug("unknown preset", "name", name)
		return false
	}
	s.orbit.SetTargetPosition(p.Pos, p.Dir)
	return true
}

// FollowStart follows the referenced actor. References that don't resolve
// are ignored.
func (s *Surface) FollowStart(ref host.ActorRef) {
	a := ref.Resolve(s.actors)
	if a == nil {
		log.Debug("follow target not found", "actor", ref)
		return
	}
	s.follow.Begin(a)
}

func (s *Surface) FollowEnd() {
	s.follow.End()
}

// Class is the script class native functions are registered under.
const Class = "Game"

// Native function names, as scripts see them.
const (
	NameShopStart         = "API_Shop_Start"
	NameShopEnd           = "API_Shop_End"
	NameShopSetYawSpeed   = "API_Shop_SetYawSpeed"
	NameShopSetPitchSpeed = "API_Shop_SetPitchSpeed"
	NameShopSetMoveSpeed  = "API_Shop_SetMoveSpeed"
	NameShopSetPos        = "API_Shop_SetPos"
	NameFollowStart       = "API_Follow_Start"
	NameFollowEnd         = "API_Follow_End"
)

// Natives returns the native function table. SetPos takes six floats
// (position then direction) and Follow.Start takes a form ID.
func (s *Surface) Natives() map[string]any {
	return map[string]any{
		NameShopStart:         s.ShopStart,
		NameShopEnd:           s.ShopEnd,
		NameShopSetYawSpeed:   s.ShopSetYawSpeed,
		NameShopSetPitchSpeed: s.ShopSetPitchSpeed,
		NameShopSetMoveSpeed:  s.ShopSetMoveSpeed,
		NameShopSetPos: func(px, py, pz, dx, dy, dz float32) {
			s.ShopSetPos(rl.Vector3{X: px, Y: py, Z: pz}, rl.Vector3{X: dx, Y: dy, Z: dz})
		},
		NameFollowStart: func(formID uint32) {
			s.FollowStart(host.ActorRef{ID: formID})
		},
		NameFollowEnd: s.FollowEnd,
	}
}

// Register binds every native function into the engine's script VM.
func (s *Surface) Register(r host.ScriptRegistry) error {
	natives := s.Natives()
	names := make([]string, 0, len(natives))
	for name := range natives {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		if !r.RegisterFunction(name, Class, natives[name]) {
			return fmt.Errorf("register %s.%s: refused by script VM", Class, name)
		}
	}
	log.Debug("script functions registered", "class", Class, "count", len(names))
	return nil
}
