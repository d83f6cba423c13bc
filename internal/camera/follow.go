package camera

import (
	"smoothcam/internal/host"
	"smoothcam/internal/log"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// FollowEnv is Env plus actor lookup for resolving the follow target.
type FollowEnv interface {
	Env
	host.ActorLookup
}

// DefaultFollowOffset keeps the player above the followed actor.
var DefaultFollowOffset = rl.Vector3{Z: 500}

// FollowSession points the engine camera at another actor and keeps the
// player parked next to it.
type FollowSession struct {
	env    FollowEnv
	offset host.Vec3

	active              bool
	target              host.ActorRef
	savedPlayerPosition host.Vec3
	savedFreeRotation   bool
	savedControls       host.InputFlags

	Started EventWithArg[host.ActorRef]
	Ended   Event
}

func NewFollowSession(env FollowEnv, offset host.Vec3) *FollowSession {
	return &FollowSession{
		env:    env,
		offset: offset,
	}
}

func (f *FollowSession) Active() bool {
	return f.active
}

// Target is the followed actor's reference; empty while inactive.
func (f *FollowSession) Target() host.ActorRef {
	return f.target
}

func (f *FollowSession) Offset() host.Vec3 {
	return f.offset
}

// Begin starts following a. It reports whether the session was activated:
// an active session keeps its current target, and a nil or unloaded actor is
// ignored.
func (f *FollowSession) Begin(a host.Actor) bool {
	if f.active || a == nil {
		return false
	}
	ref := a.Ref()
	if ref.Resolve(f.env) == nil {
		log.Debug("follow target does not resolve", "actor", ref)
		return false
	}

	f.savedPlayerPosition = f.env.Player().Position()
	f.focus(ref)

	state := f.env.Camera().ThirdPerson()
	f.savedFreeRotation = state.FreeRotation
	f.savedControls = disableControls(f.env.Controls())
	state.FreeRotation = true

	f.target = ref
	f.active = true

	log.Debug("follow session started", "actor", ref, "controls", f.savedControls)
	f.Started.Invoke(ref)
	return true
}

// End refocuses the camera on the player and puts everything Begin changed
// back, teleporting the player to where it stood.
func (f *FollowSession) End() bool {
	if !f.active {
		return false
	}

	player := f.env.Player()
	f.focus(player.Ref())
	f.env.Camera().ThirdPerson().FreeRotation = f.savedFreeRotation
	f.env.Controls().SetEnabledControls(f.savedControls)
	player.SetPosition(f.savedPlayerPosition, true)

	log.Debug("follow session ended", "actor", f.target)
	f.target = host.ActorRef{}
	f.active = false
	f.Ended.Invoke()
	return true
}

// PinPlayer keeps player at the followed actor's position plus the offset.
// It runs every frame after the engine's own player update.
func (f *FollowSession) PinPlayer(player host.Actor) {
	if !f.active || player == nil {
		return
	}
	target := f.target.Resolve(f.env)
	if target == nil {
		return
	}
	player.SetPosition(rl.Vector3Add(target.Position(), f.offset), true)
}

func (f *FollowSession) focus(ref host.ActorRef) {
	cam := f.env.Camera()
	if !cam.IsThirdPerson() {
		cam.ForceThirdPerson()
	}
	cam.SetTarget(ref)
}
