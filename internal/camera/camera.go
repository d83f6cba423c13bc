// Package camera holds the camera override sessions and the per-frame
// interpolation that drives them.
package camera

import (
	"math"

	"smoothcam/internal/host"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Angles is a camera orientation in radians. Yaw turns about +Z, pitch lifts
// the view above the horizon.
type Angles struct {
	Yaw   float32
	Pitch float32
}

var (
	axisX   = rl.Vector3{X: 1}
	axisY   = rl.Vector3{Y: 1}
	axisZ   = rl.Vector3{Z: 1}
	forward = axisY
)

// AimAngles decomposes a direction into yaw and pitch. Yaw is in (-π, π] and
// pitch in [-π/2, π/2]; a zero vector yields zero angles.
func AimAngles(dir host.Vec3) (yaw, pitch float32) {
	x, y, z := float64(dir.X), float64(dir.Y), float64(dir.Z)
	horizontal := math.Hypot(x, y)
	if horizontal == 0 {
		switch {
		case z > 0:
			return 0, math.Pi / 2
		case z < 0:
			return 0, -math.Pi / 2
		}
		return 0, 0
	}
	return float32(math.Atan2(-x, y)), float32(math.Atan2(z, horizontal))
}

// Forward is the unit view direction for the given angles.
func Forward(yaw, pitch float32) host.Vec3 {
	sy, cy := math.Sincos(float64(yaw))
	sp, cp := math.Sincos(float64(pitch))
	return rl.Vector3{
		X: float32(-sy * cp),
		Y: float32(cy * cp),
		Z: float32(sp),
	}
}

// Rotation builds the camera rotation from Euler angles, applied roll first
// (about +Y), then pitch (about +X), then yaw (about +Z).
func Rotation(pitch, roll, yaw float32) rl.Quaternion {
	qYaw := rl.QuaternionFromAxisAngle(axisZ, yaw)
	qPitch := rl.QuaternionFromAxisAngle(axisX, pitch)
	qRoll := rl.QuaternionFromAxisAngle(axisY, roll)
	return rl.QuaternionMultiply(qYaw, rl.QuaternionMultiply(qPitch, qRoll))
}

// Orientation recovers aim angles from a camera rotation.
func Orientation(q rl.Quaternion) Angles {
	yaw, pitch := AimAngles(rl.Vector3RotateByQuaternion(forward, q))
	return Angles{Yaw: yaw, Pitch: pitch}
}
