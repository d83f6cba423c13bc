package hook

import (
	"errors"

	"smoothcam/internal/camera"
	"smoothcam/internal/host"
	"smoothcam/internal/log"
)

type (
	rotationFunc     = func(s *host.ThirdPersonState)
	offsetsFunc      = func(s *host.ThirdPersonState)
	freeRotationFunc = func(s *host.ThirdPersonState, enabled bool)
	playerUpdateFunc = func(player host.Actor, delta float32)
)

// Dispatcher routes each intercepted engine call either to the engine's own
// implementation or to the active session. It never starts or ends sessions.
type Dispatcher struct {
	clock  host.Clock
	orbit  *camera.OrbitSession
	follow *camera.FollowSession

	updateRotation      *Point[rotationFunc]
	updateOffsets       *Point[offsetsFunc]
	setFreeRotationMode *Point[freeRotationFunc]
	updatePlayer        *Point[playerUpdateFunc]
}

func NewDispatcher(clock host.Clock, orbit *camera.OrbitSession, follow *camera.FollowSession) *Dispatcher {
	return &Dispatcher{
		clock:               clock,
		orbit:               orbit,
		follow:              follow,
		updateRotation:      NewPoint[rotationFunc]("ThirdPersonState::UpdateRotation"),
		updateOffsets:       NewPoint[offsetsFunc]("ThirdPersonState::UpdateOffsets"),
		setFreeRotationMode: NewPoint[freeRotationFunc]("ThirdPersonState::SetFreeRotationMode"),
		updatePlayer:        NewPoint[playerUpdateFunc]("PlayerCharacter::Update"),
	}
}

// Install redirects every slot in t. If any slot fails, the ones already
// redirected are put back.
func (d *Dispatcher) Install(t *host.HookTable) error {
	if t == nil {
		return ErrEmptySlot
	}
	steps := []struct {
		install   func() error
		uninstall func() error
	}{
		{
			func() error { return d.updateRotation.Install(&t.UpdateRotation, d.UpdateRotation) },
			func() error { return d.updateRotation.Uninstall(&t.UpdateRotation) },
		},
		{
			func() error { return d.updateOffsets.Install(&t.UpdateOffsets, d.UpdateOffsets) },
			func() error { return d.updateOffsets.Uninstall(&t.UpdateOffsets) },
		},
		{
			func() error { return d.setFreeRotationMode.Install(&t.SetFreeRotationMode, d.SetFreeRotationMode) },
			func() error { return d.setFreeRotationMode.Uninstall(&t.SetFreeRotationMode) },
		},
		{
			func() error { return d.updatePlayer.Install(&t.UpdatePlayer, d.UpdatePlayer) },
			func() error { return d.updatePlayer.Uninstall(&t.UpdatePlayer) },
		},
	}

	for i, s := range steps {
		if err := s.install(); err != nil {
			for j := i - 1; j >= 0; j-- {
				_ = steps[j].uninstall()
			}
			return err
		}
	}
	log.Debug("hooks installed", "count", len(steps))
	return nil
}

// Uninstall restores the engine's functions in t.
func (d *Dispatcher) Uninstall(t *host.HookTable) error {
	if t == nil {
		return ErrEmptySlot
	}
	return errors.Join(
		d.updateRotation.Uninstall(&t.UpdateRotation),
		d.updateOffsets.Uninstall(&t.UpdateOffsets),
		d.setFreeRotationMode.Uninstall(&t.SetFreeRotationMode),
		d.updatePlayer.Uninstall(&t.UpdatePlayer),
	)
}

// Installed reports whether all slots are redirected.
func (d *Dispatcher) Installed() bool {
	return d.updateRotation.Installed() && d.updateOffsets.Installed() &&
		d.setFreeRotationMode.Installed() && d.updatePlayer.Installed()
}

// UpdateRotation builds the rotation from the orbit pitch and the engine's
// current yaw while the orbit session is active.
func (d *Dispatcher) UpdateRotation(s *host.ThirdPersonState) {
	if !d.orbit.Active() {
		d.updateRotation.Original()(s)
		return
	}
	s.Rotation = d.orbit.Rotation(s.CurrentYaw)
}

// UpdateOffsets runs the orbit interpolation in place of the engine's chase.
func (d *Dispatcher) UpdateOffsets(s *host.ThirdPersonState) {
	if !d.orbit.Active() {
		d.updateOffsets.Original()(s)
		return
	}
	d.orbit.Advance(s, d.clock.ElapsedSeconds())
}

// SetFreeRotationMode is dropped while following so the engine can't turn
// free rotation off under the session.
func (d *Dispatcher) SetFreeRotationMode(s *host.ThirdPersonState, enabled bool) {
	if d.follow.Active() {
		return
	}
	d.setFreeRotationMode.Original()(s, enabled)
}

// UpdatePlayer runs the engine's player update, then pins the player to the
// followed actor.
func (d *Dispatcher) UpdatePlayer(player host.Actor, delta float32) {
	d.updatePlayer.Original()(player, delta)
	if d.follow.Active() {
		d.follow.PinPlayer(player)
	}
}
