package game

import (
	"math"

	"smoothcam/internal/sim"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	groundHalf  = 2000
	groundCell  = 100
	actorWidth  = 60
	actorHeight = 180
)

// drawGround draws a grid on the z=0 plane. rl.DrawGrid assumes a Y-up world.
func drawGround() {
	lineColor := rl.NewColor(60, 60, 75, 255)
	for v := float32(-groundHalf); v <= groundHalf; v += groundCell {
		rl.DrawLine3D(rl.Vector3{X: v, Y: -groundHalf}, rl.Vector3{X: v, Y: groundHalf}, lineColor)
		rl.DrawLine3D(rl.Vector3{X: -groundHalf, Y: v}, rl.Vector3{X: groundHalf, Y: v}, lineColor)
	}
	rl.DrawLine3D(rl.Vector3{}, rl.Vector3{X: groundCell}, rl.Red)
	rl.DrawLine3D(rl.Vector3{}, rl.Vector3{Y: groundCell}, rl.Green)
	rl.DrawLine3D(rl.Vector3{}, rl.Vector3{Z: groundCell}, rl.Blue)
}

// drawActor draws a as a standing box with a nose showing its heading.
func drawActor(a *sim.Actor, focused bool) {
	pos := a.Position()
	center := rl.Vector3{X: pos.X, Y: pos.Y, Z: pos.Z + actorHeight/2}
	color := colorByName(a.Color)

	rl.DrawCube(center, actorWidth, actorWidth, actorHeight, color)
	wire := rl.DarkGray
	if focused {
		wire = colorAccentLight
	}
	rl.DrawCubeWires(center, actorWidth, actorWidth, actorHeight, wire)

	head := rl.Vector3{X: pos.X, Y: pos.Y, Z: pos.Z + actorHeight*0.8}
	nose := rl.Vector3Add(head, rl.Vector3Scale(headingVector(a.Heading()), actorWidth))
	rl.DrawLine3D(head, nose, rl.White)
}

func sin(a float32) float32 { return float32(math.Sin(float64(a))) }
func cos(a float32) float32 { return float32(math.Cos(float64(a))) }
