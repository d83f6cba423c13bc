package sim

import (
	"smoothcam/internal/host"

	rl "github.com/gen2brain/raylib-go/raylib"
)

type Transform struct {
	Position rl.Vector3
	Heading  float32 // radians about +Z
}

// Actor is a scene entity. Velocity is applied by the native update each frame.
type Actor struct {
	FormID    uint32
	Name      string
	Tags      []string
	Color     string
	Transform Transform
	Velocity  rl.Vector3

	// Teleports counts absolute SetPosition calls.
	Teleports int

	world *World
}

func NewActor(name string) *Actor {
	return &Actor{Name: name}
}

func (a *Actor) Ref() host.ActorRef {
	return host.ActorRef{ID: a.FormID}
}

func (a *Actor) Position() rl.Vector3 {
	return a.Transform.Position
}

func (a *Actor) SetPosition(p rl.Vector3, absolute bool) {
	if absolute {
		a.Teleports++
		a.Transform.Position = p
		return
	}
	a.Transform.Position = rl.Vector3Add(a.Transform.Position, p)
}

func (a *Actor) Heading() float32 {
	return a.Transform.Heading
}

func (a *Actor) HasTag(tag string) bool {
	for _, t := range a.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// World returns the world the actor was spawned into, or nil.
func (a *Actor) World() *World {
	return a.world
}

func (a *Actor) move(delta float32) {
	if a.Velocity == (rl.Vector3{}) {
		return
	}
	a.Transform.Position = rl.Vector3Add(a.Transform.Position, rl.Vector3Scale(a.Velocity, delta))
}
