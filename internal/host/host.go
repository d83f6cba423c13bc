// Package host describes the capabilities the camera extension consumes from
// the engine it runs inside. Nothing here is implemented by the extension:
// a real integration adapts the engine to these interfaces, and package sim
// provides an in-memory engine for tests and the demo.
//
// World space is Z-up. A heading of 0 looks along +Y and grows toward -X.
package host

import rl "github.com/gen2brain/raylib-go/raylib"

// Vec3 is the engine's point/vector type.
type Vec3 = rl.Vector3

// Clock reports frame timing.
type Clock interface {
	// ElapsedSeconds is the wall-clock time since the previous frame.
	ElapsedSeconds() float32
}

// Actor is a live entity in the engine's scene.
type Actor interface {
	Ref() ActorRef
	Position() Vec3
	// SetPosition moves the actor. absolute marks a teleport rather than a
	// relative move, so the engine skips collision and smoothing.
	SetPosition(p Vec3, absolute bool)
	// Heading is the actor's world yaw in radians.
	Heading() float32
}

// ActorLookup resolves weak actor references.
type ActorLookup interface {
	// LookupActor returns nil when the reference does not resolve, for example
	// because the actor was unloaded.
	LookupActor(ref ActorRef) Actor
}

// ThirdPersonState is the engine's third-person camera state. The engine owns
// it; overrides write into it in place.
type ThirdPersonState struct {
	Rotation          rl.Quaternion
	PosOffsetExpected Vec3
	PosOffsetActual   Vec3
	TargetYaw         float32
	CurrentYaw        float32
	FreeRotation      bool
}

// Camera is the engine's player camera.
type Camera interface {
	IsThirdPerson() bool
	ForceThirdPerson()
	ForceFirstPerson()
	// Target is the actor the camera is focused on.
	Target() ActorRef
	SetTarget(ref ActorRef)
	ThirdPerson() *ThirdPersonState
}

// Host bundles every capability the extension needs at runtime.
type Host interface {
	Clock
	ActorLookup
	Camera() Camera
	Controls() Controls
	Settings() Settings
	Player() Actor
	Hooks() *HookTable
	Messaging() Messaging
	Scripts() ScriptRegistry
	Info() Info
}
