package camera

import (
	"math"
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const eps = 1e-4

func approx(a, b float32) bool {
	return math.Abs(float64(a-b)) <= eps
}

func vecApprox(a, b rl.Vector3) bool {
	return approx(a.X, b.X) && approx(a.Y, b.Y) && approx(a.Z, b.Z)
}

func TestAimAngles(t *testing.T) {
	tests := []struct {
		name       string
		dir        rl.Vector3
		yaw, pitch float32
	}{
		{"forward", rl.Vector3{Y: 1}, 0, 0},
		{"left", rl.Vector3{X: -1}, math.Pi / 2, 0},
		{"right", rl.Vector3{X: 1}, -math.Pi / 2, 0},
		{"up 45", rl.Vector3{Y: 1, Z: 1}, 0, math.Pi / 4},
		{"down", rl.Vector3{Z: -3}, 0, -math.Pi / 2},
		{"zero", rl.Vector3{}, 0, 0},
		{"scaled", rl.Vector3{Y: 10, Z: -10}, 0, -math.Pi / 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			yaw, pitch := AimAngles(tt.dir)
			if !approx(yaw, tt.yaw) || !approx(pitch, tt.pitch) {
				t.Errorf("Expected (%v, %v), got (%v, %v)", tt.yaw, tt.pitch, yaw, pitch)
			}
		})
	}
}

func TestForwardMatchesAimAngles(t *testing.T) {
	for _, yaw := range []float32{-3, -1.2, 0, 0.4, 2.5} {
		for _, pitch := range []float32{-1.2, -0.3, 0, 0.7, 1.5} {
			f := Forward(yaw, pitch)
			if !approx(rl.Vector3Length(f), 1) {
				t.Errorf("Forward(%v, %v) is not unit length: %v", yaw, pitch, f)
			}
			gotYaw, gotPitch := AimAngles(f)
			if !approx(gotYaw, yaw) || !approx(gotPitch, pitch) {
				t.Errorf("Expected (%v, %v), got (%v, %v)", yaw, pitch, gotYaw, gotPitch)
			}
		}
	}
}

func TestRotationOrientationRoundTrip(t *testing.T) {
	for _, yaw := range []float32{-2.5, -0.5, 0, 1, 3} {
		for _, pitch := range []float32{-1, -0.2, 0, 0.3, 1.2} {
			got := Orientation(Rotation(pitch, 0, yaw))
			if !approx(got.Yaw, yaw) || !approx(got.Pitch, pitch) {
				t.Errorf("Expected (%v, %v), got (%v, %v)", yaw, pitch, got.Yaw, got.Pitch)
			}
		}
	}
}

func TestRotationForward(t *testing.T) {
	yaw, pitch := float32(0.8), float32(-0.4)
	got := rl.Vector3RotateByQuaternion(forward, Rotation(pitch, 0, yaw))
	if !vecApprox(got, Forward(yaw, pitch)) {
		t.Errorf("Expected %v, got %v", Forward(yaw, pitch), got)
	}
}

func TestRotationRollKeepsForward(t *testing.T) {
	got := rl.Vector3RotateByQuaternion(forward, Rotation(0, 1.1, 0))
	if !vecApprox(got, forward) {
		t.Errorf("Roll should not move the view direction, got %v", got)
	}
}

func TestIdentityOrientation(t *testing.T) {
	got := Orientation(rl.QuaternionIdentity())
	if !approx(got.Yaw, 0) || !approx(got.Pitch, 0) {
		t.Errorf("Expected zero angles, got %+v", got)
	}
}
