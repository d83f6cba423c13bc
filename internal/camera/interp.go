package camera

import (
	"smoothcam/internal/host"
	"smoothcam/internal/polar"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Speeds are the interpolation rates: radians per second for yaw and pitch,
// world units per second for the offset.
type Speeds struct {
	Yaw   float32
	Pitch float32
	Move  float32
}

// Pose is the interpolated camera state for one frame.
type Pose struct {
	Offset       host.Vec3
	TargetOffset host.Vec3
	Yaw          float32
	TargetYaw    float32
	Pitch        float32
	TargetPitch  float32
}

// Advance moves the pose one frame of dt seconds toward its targets.
func (p *Pose) Advance(sp Speeds, dt float32) {
	p.Offset = StepOffset(p.Offset, p.TargetOffset, sp.Move, dt)
	p.Yaw = polar.StepToward(p.Yaw, p.TargetYaw, sp.Yaw*dt)
	p.Pitch = polar.StepToward(p.Pitch, p.TargetPitch, sp.Pitch*dt)
}

// StepOffset moves actual toward expected at moveSpeed units per second and
// lands exactly on expected once a step would pass it.
func StepOffset(actual, expected host.Vec3, moveSpeed, dt float32) host.Vec3 {
	if actual == expected {
		return actual
	}
	step := moveSpeed * dt
	if step <= 0 {
		return actual
	}

	v := rl.Vector3Subtract(expected, actual)
	if rl.Vector3Length(v) == 0 {
		return expected
	}
	dv := rl.Vector3Scale(rl.Vector3Normalize(v), step)
	if rl.Vector3DotProduct(dv, dv) > rl.Vector3DotProduct(v, v) {
		return expected
	}
	return rl.Vector3Add(actual, dv)
}
