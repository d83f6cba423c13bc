// Package game is the interactive demo host: it renders a sim world with
// raylib, lets the player walk around and exposes the camera API through a
// raygui debug panel.
package game

import (
	"fmt"
	"time"

	"smoothcam/internal/api"
	"smoothcam/internal/config"
	"smoothcam/internal/host"
	"smoothcam/internal/log"
	"smoothcam/internal/plugin"
	"smoothcam/internal/sim"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	walkSpeed = 300 // units per second
	turnSpeed = 2.5 // radians per second
)

type Game struct {
	World  *sim.World
	Ctx    *plugin.Context
	Script api.Script

	cfg   config.Demo
	panel *debugPanel

	// Debug timing (ms)
	updateMs float64
	drawMs   float64
}

func New(w *sim.World, ctx *plugin.Context, cfg config.Demo) *Game {
	return &Game{
		World: w,
		Ctx:   ctx,
		cfg:   cfg,
		panel: newDebugPanel(ctx.API(), w),
	}
}

func (g *Game) Run() {
	rl.SetConfigFlags(rl.FlagWindowHighdpi | rl.FlagMsaa4xHint)
	rl.InitWindow(g.cfg.Width, g.cfg.Height, "SmoothCam")
	defer rl.CloseWindow()

	rl.SetTargetFPS(g.cfg.TargetFPS)
	initRayguiStyle()

	for !rl.WindowShouldClose() {
		g.Update()
		g.Draw()
	}
}

func (g *Game) Update() {
	updateStart := time.Now()
	deltaTime := rl.GetFrameTime()

	if rl.IsKeyPressed(g.cfg.ToggleHotkey) {
		g.panel.Visible = !g.panel.Visible
	}
	if rl.IsKeyPressed(g.cfg.HideHotkey) {
		g.panel.Visible = false
	}

	g.handleInput(deltaTime)

	if g.Script != nil {
		if err := g.Script.RunFrame(g.World.Frame, float32(rl.GetTime())); err != nil {
			log.Error("camera script failed, disabling", "error", err)
			g.Script = nil
		}
	}

	g.World.Step(deltaTime)
	g.updateMs = float64(time.Since(updateStart).Microseconds()) / 1000.0
}

// handleInput drives the player the way the engine's control map allows.
func (g *Game) handleInput(deltaTime float32) {
	controls := g.World.Controls().EnabledControls()
	player := g.World.PlayerActor()

	if controls.Has(host.InputLooking) {
		if rl.IsKeyDown(rl.KeyQ) {
			player.Transform.Heading += turnSpeed * deltaTime
		}
		if rl.IsKeyDown(rl.KeyE) {
			player.Transform.Heading -= turnSpeed * deltaTime
		}
	}

	player.Velocity = rl.Vector3{}
	if controls.Has(host.InputMovement) {
		var fwd, side float32
		if rl.IsKeyDown(rl.KeyW) {
			fwd++
		}
		if rl.IsKeyDown(rl.KeyS) {
			fwd--
		}
		if rl.IsKeyDown(rl.KeyD) {
			side++
		}
		if rl.IsKeyDown(rl.KeyA) {
			side--
		}
		if fwd != 0 || side != 0 {
			forward := headingVector(player.Heading())
			right := rl.Vector3{X: forward.Y, Y: -forward.X}
			dir := rl.Vector3Add(rl.Vector3Scale(forward, fwd), rl.Vector3Scale(right, side))
			player.Velocity = rl.Vector3Scale(rl.Vector3Normalize(dir), walkSpeed)
		}
	}

	if controls.Has(host.InputPOVSwitch) && rl.IsKeyPressed(rl.KeyV) {
		cam := g.World.Camera()
		if cam.IsThirdPerson() {
			cam.ForceFirstPerson()
		} else {
			cam.ForceThirdPerson()
		}
	}

	// Alt+F toggles free look around the player
	if rl.IsKeyDown(rl.KeyLeftAlt) && rl.IsKeyPressed(rl.KeyF) {
		s := g.World.Camera().ThirdPerson()
		g.World.Hooks().SetFreeRotationMode(s, !s.FreeRotation)
	}
}

func (g *Game) Draw() {
	position, target := g.World.Eye()
	camera := rl.Camera3D{
		Position:   position,
		Target:     target,
		Up:         rl.Vector3{Z: 1},
		Fovy:       60,
		Projection: rl.CameraPerspective,
	}

	rl.BeginDrawing()
	rl.ClearBackground(rl.NewColor(20, 20, 30, 255))

	drawStart := time.Now()
	rl.BeginMode3D(camera)
	drawGround()
	for _, a := range g.World.Actors {
		drawActor(a, a == g.World.Focus())
	}
	rl.EndMode3D()
	g.drawMs = float64(time.Since(drawStart).Microseconds()) / 1000.0

	g.DrawUI()
	rl.EndDrawing()
}

func (g *Game) DrawUI() {
	rl.DrawText("WASD to move, Q/E to turn, V to switch view, Alt+F free look", 10, 10, 20, rl.DarkGray)
	rl.DrawText("Home toggles the camera panel, End hides it", 10, 35, 20, rl.DarkGray)
	rl.DrawFPS(10, 60)

	s := g.World.Camera().ThirdPerson()
	orbit := g.Ctx.Orbit()
	rl.DrawText(fmt.Sprintf("Yaw %.2f -> %.2f", s.CurrentYaw, s.TargetYaw), 10, 85, 16, rl.Yellow)
	rl.DrawText(fmt.Sprintf("Pitch %.2f -> %.2f", orbit.CurrentPitch(), orbit.TargetAngles().Pitch), 10, 105, 16, rl.Yellow)
	rl.DrawText(fmt.Sprintf("Offset (%.0f, %.0f, %.0f)", s.PosOffsetActual.X, s.PosOffsetActual.Y, s.PosOffsetActual.Z), 10, 125, 16, rl.Yellow)
	rl.DrawText(fmt.Sprintf("Controls: %s", g.World.Controls().EnabledControls()), 10, 145, 16, rl.Green)
	rl.DrawText(fmt.Sprintf("Update: %.2f ms  Draw: %.2f ms", g.updateMs, g.drawMs), 10, 165, 16, rl.Green)

	g.panel.Draw()
}

// headingVector is the horizontal facing for a heading: 0 is +Y, growing
// toward -X.
func headingVector(heading float32) rl.Vector3 {
	return rl.Vector3{X: -sin(heading), Y: cos(heading)}
}
