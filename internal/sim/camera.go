package sim

import (
	"math"

	"smoothcam/internal/host"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Camera is the simulated player camera.
type Camera struct {
	thirdPerson bool
	target      host.ActorRef
	state       host.ThirdPersonState

	// Pitch is the native third-person pitch, used when nothing overrides it.
	Pitch float32
	// Zoom is how far behind the focus point the eye sits.
	Zoom float32
	// POVSwitches counts first/third person changes.
	POVSwitches int
}

func newCamera() *Camera {
	return &Camera{
		thirdPerson: true,
		Zoom:        150,
		state: host.ThirdPersonState{
			Rotation:          rl.QuaternionIdentity(),
			PosOffsetExpected: rl.Vector3{X: 0, Y: 0, Z: 120},
			PosOffsetActual:   rl.Vector3{X: 0, Y: 0, Z: 120},
		},
	}
}

func (c *Camera) IsThirdPerson() bool {
	return c.thirdPerson
}

func (c *Camera) ForceThirdPerson() {
	if !c.thirdPerson {
		c.thirdPerson = true
		c.POVSwitches++
	}
}

func (c *Camera) ForceFirstPerson() {
	if c.thirdPerson {
		c.thirdPerson = false
		c.POVSwitches++
	}
}

func (c *Camera) Target() host.ActorRef {
	return c.target
}

func (c *Camera) SetTarget(ref host.ActorRef) {
	c.target = ref
}

func (c *Camera) ThirdPerson() *host.ThirdPersonState {
	return &c.state
}

// rotation composes yaw about +Z after pitch about +X.
func rotation(pitch, yaw float32) rl.Quaternion {
	return rl.QuaternionMultiply(
		rl.QuaternionFromAxisAngle(rl.Vector3{Z: 1}, yaw),
		rl.QuaternionFromAxisAngle(rl.Vector3{X: 1}, pitch),
	)
}

// chase moves current toward target by a fraction of the remaining arc, the
// way the engine's native chase camera eases yaw.
func chase(current, target, speed, dt float32) float32 {
	diff := math.Remainder(float64(target-current), 2*math.Pi)
	t := float64(speed * dt)
	if t >= 1 || math.Abs(diff) < 1e-4 {
		return wrap(target)
	}
	return wrap(current + float32(diff*t))
}

func wrap(a float32) float32 {
	r := math.Mod(float64(a), 2*math.Pi)
	if r < 0 {
		r += 2 * math.Pi
	}
	return float32(r)
}
