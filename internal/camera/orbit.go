package camera

import (
	"smoothcam/internal/host"
	"smoothcam/internal/log"
	"smoothcam/internal/polar"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Env is the slice of the engine a session works against.
type Env interface {
	Camera() host.Camera
	Controls() host.Controls
	Settings() host.Settings
	Player() host.Actor
}

// Values written over engine settings while an orbit session is active.
const (
	orbitAutoVanityDelay float32 = 1000000
	orbitMaxZoomDist     float32 = 0
)

// DefaultSpeeds match the engine's feel for an inspection camera.
var DefaultSpeeds = Speeds{Yaw: 1.0, Pitch: 0.1, Move: 3.0}

// OrbitSession is the shop/inspection camera: the view glides to a fixed
// offset around the player and looks along a chosen direction.
type OrbitSession struct {
	env Env

	active         bool
	targetPosition host.Vec3
	targetAngles   Angles
	currentPitch   float32
	speeds         Speeds
	saved          SavedHostState

	Started Event
	Ended   Event
}

func NewOrbitSession(env Env, speeds Speeds) *OrbitSession {
	return &OrbitSession{
		env:    env,
		speeds: speeds,
	}
}

func (o *OrbitSession) Active() bool {
	return o.active
}

// Start takes over the camera. It reports whether the session was activated;
// starting an active session changes nothing.
func (o *OrbitSession) Start() bool {
	if o.active {
		return false
	}

	saved := SavedHostState{
		Settings: swapSettings(o.env.Settings(), []SavedSetting{
			{ID: host.SettingPitchZoomOutMaxDist, Value: orbitMaxZoomDist},
			{ID: host.SettingAutoVanityModeDelay, Value: orbitAutoVanityDelay},
			{ID: host.SettingChaseCameraSpeed, Value: o.speeds.Yaw},
		}),
		Controls: disableControls(o.env.Controls()),
	}

	cam := o.env.Camera()
	state := cam.ThirdPerson()
	o.targetPosition = state.PosOffsetActual

	saved.WasFirstPerson = !cam.IsThirdPerson()
	if saved.WasFirstPerson {
		cam.ForceThirdPerson()
	}

	view := Orientation(state.Rotation)
	o.targetAngles = Angles{
		Yaw:   polar.Normalize(view.Yaw),
		Pitch: polar.Normalize(view.Pitch),
	}
	o.currentPitch = o.targetAngles.Pitch

	o.saved = saved
	o.active = true

	log.Debug("orbit session started",
		"controls", saved.Controls,
		"first_person", saved.WasFirstPerson,
		"yaw", o.targetAngles.Yaw,
		"pitch", o.targetAngles.Pitch,
	)
	o.Started.Invoke()
	return true
}

// End gives the camera back and restores everything Start overrode. Ending an
// inactive session changes nothing.
func (o *OrbitSession) End() bool {
	if !o.active {
		return false
	}

	if o.saved.WasFirstPerson {
		o.env.Camera().ForceFirstPerson()
	}
	restoreSettings(o.env.Settings(), o.saved.Settings)
	o.env.Controls().SetEnabledControls(o.saved.Controls)

	o.active = false
	log.Debug("orbit session ended", "controls", o.saved.Controls)
	o.Ended.Invoke()
	return true
}

// SetTargetPosition moves the camera target to pos and aims along dir, where
// dir is relative to the player's facing.
func (o *OrbitSession) SetTargetPosition(pos, dir host.Vec3) {
	if !o.active {
		return
	}
	o.targetPosition = pos

	yaw, pitch := AimAngles(dir)
	o.targetAngles = Angles{
		Yaw:   polar.Normalize(yaw + o.env.Player().Heading()),
		Pitch: polar.Normalize(pitch),
	}

	state := o.env.Camera().ThirdPerson()
	state.PosOffsetExpected = pos
	state.TargetYaw = o.targetAngles.Yaw
}

// SetYawSpeed also updates the engine's chase speed while active so native
// camera code agrees with the session.
func (o *OrbitSession) SetYawSpeed(v float32) {
	o.speeds.Yaw = v
	if o.active {
		o.env.Settings().SetSetting(host.SettingChaseCameraSpeed, v)
	}
}

func (o *OrbitSession) SetPitchSpeed(v float32) {
	o.speeds.Pitch = v
}

func (o *OrbitSession) SetMoveSpeed(v float32) {
	o.speeds.Move = v
}

func (o *OrbitSession) Speeds() Speeds {
	return o.speeds
}

func (o *OrbitSession) TargetPosition() host.Vec3 {
	return o.targetPosition
}

func (o *OrbitSession) TargetAngles() Angles {
	return o.targetAngles
}

func (o *OrbitSession) CurrentPitch() float32 {
	return o.currentPitch
}

// Saved returns the snapshot taken by the last Start.
func (o *OrbitSession) Saved() SavedHostState {
	return o.saved
}

// Advance runs one frame of interpolation against the engine's camera state.
func (o *OrbitSession) Advance(s *host.ThirdPersonState, dt float32) {
	pose := Pose{
		Offset:       s.PosOffsetActual,
		TargetOffset: s.PosOffsetExpected,
		Yaw:          s.CurrentYaw,
		TargetYaw:    s.TargetYaw,
		Pitch:        o.currentPitch,
		TargetPitch:  o.targetAngles.Pitch,
	}
	pose.Advance(o.speeds, dt)

	s.PosOffsetActual = pose.Offset
	s.CurrentYaw = pose.Yaw
	o.currentPitch = pose.Pitch
}

// Rotation is the camera rotation for the current pitch at the given yaw,
// with no roll.
func (o *OrbitSession) Rotation(yaw float32) rl.Quaternion {
	return Rotation(o.currentPitch, 0, yaw)
}
