package camera

import (
	"math"
	"testing"

	"smoothcam/internal/polar"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func TestStepOffset(t *testing.T) {
	expected := rl.Vector3{X: 10}
	tests := []struct {
		dt   float32
		want rl.Vector3
	}{
		{1, rl.Vector3{X: 3}},
		{2, rl.Vector3{X: 6}},
		{10, rl.Vector3{X: 10}},
		{0, rl.Vector3{}},
	}
	for _, tt := range tests {
		got := StepOffset(rl.Vector3{}, expected, 3, tt.dt)
		if !vecApprox(got, tt.want) {
			t.Errorf("dt=%v: expected %v, got %v", tt.dt, tt.want, got)
		}
	}
}

func TestStepOffsetSnapsExactly(t *testing.T) {
	expected := rl.Vector3{X: 1, Y: -2, Z: 3}
	got := StepOffset(rl.Vector3{X: 1, Y: -2, Z: 2.9}, expected, 3, 1)
	if got != expected {
		t.Errorf("Expected exact snap to %v, got %v", expected, got)
	}
}

func TestStepOffsetAtTarget(t *testing.T) {
	v := rl.Vector3{X: 4, Y: 5, Z: 6}
	if got := StepOffset(v, v, 3, 1); got != v {
		t.Errorf("Expected %v unchanged, got %v", v, got)
	}
}

func TestStepOffsetConverges(t *testing.T) {
	actual := rl.Vector3{X: -50, Y: 20, Z: 120}
	expected := rl.Vector3{X: 0, Y: -20, Z: -20}
	for i := 0; i < 10000 && actual != expected; i++ {
		prev := rl.Vector3Distance(actual, expected)
		actual = StepOffset(actual, expected, 3, 1.0/60)
		if d := rl.Vector3Distance(actual, expected); d > prev {
			t.Fatalf("Frame %d moved away from target: %v -> %v", i, prev, d)
		}
	}
	if actual != expected {
		t.Errorf("Expected to land on %v, got %v", expected, actual)
	}
}

func TestPoseAdvance(t *testing.T) {
	p := Pose{
		Offset:       rl.Vector3{},
		TargetOffset: rl.Vector3{Z: 100},
		Yaw:          0.1,
		TargetYaw:    5.0,
		Pitch:        0,
		TargetPitch:  1,
	}
	p.Advance(Speeds{Yaw: 1, Pitch: 0.1, Move: 3}, 0.5)

	if !vecApprox(p.Offset, rl.Vector3{Z: 1.5}) {
		t.Errorf("Expected offset (0,0,1.5), got %v", p.Offset)
	}
	// 0.1 -> 5.0 is shorter going down through 0
	if !approx(p.Yaw, polar.Normalize(0.1-0.5)) {
		t.Errorf("Expected yaw %v, got %v", polar.Normalize(-0.4), p.Yaw)
	}
	if !approx(p.Pitch, 0.05) {
		t.Errorf("Expected pitch 0.05, got %v", p.Pitch)
	}
}

func TestPoseAdvanceConverges(t *testing.T) {
	p := Pose{TargetOffset: rl.Vector3{X: 3}, Yaw: 4, TargetYaw: 1, Pitch: 5.5, TargetPitch: 0.3}
	sp := DefaultSpeeds
	for i := 0; i < 100000; i++ {
		p.Advance(sp, 1.0/60)
	}
	if p.Offset != p.TargetOffset {
		t.Errorf("Expected offset %v, got %v", p.TargetOffset, p.Offset)
	}
	if p.Yaw != p.TargetYaw {
		t.Errorf("Expected yaw %v, got %v", p.TargetYaw, p.Yaw)
	}
	if p.Pitch != p.TargetPitch {
		t.Errorf("Expected pitch %v, got %v", p.TargetPitch, p.Pitch)
	}
}

func TestPoseAdvanceNeverOvershoots(t *testing.T) {
	p := Pose{Yaw: 0, TargetYaw: 0.5}
	sp := Speeds{Yaw: 2}
	for i := 0; i < 10; i++ {
		p.Advance(sp, 1.0/60)
		if polar.Distance(p.Yaw, p.TargetYaw) > 0.5+1e-6 {
			t.Fatalf("Frame %d overshot: yaw %v", i, p.Yaw)
		}
	}
	if d := polar.Distance(p.Yaw, p.TargetYaw); math.Abs(float64(d)-(0.5-10*2.0/60)) > 1e-4 {
		t.Errorf("Expected yaw to close in at full speed, distance %v", d)
	}
}
