package game

import (
	"fmt"

	"smoothcam/internal/api"
	"smoothcam/internal/sim"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	panelW  = int32(280)
	rowH    = int32(26)
	padding = int32(10)
)

// debugPanel is the in-game camera panel: shop controls, presets and the
// actor picker for follow mode.
type debugPanel struct {
	api   *api.Surface
	world *sim.World

	Visible bool
}

func newDebugPanel(s *api.Surface, w *sim.World) *debugPanel {
	return &debugPanel{api: s, world: w}
}

func (p *debugPanel) Draw() {
	if !p.Visible {
		return
	}

	panelX := int32(rl.GetScreenWidth()) - panelW
	panelY := int32(0)
	panelH := int32(rl.GetScreenHeight())

	rl.DrawRectangle(panelX, panelY, panelW, panelH, colorBgPanel)
	rl.DrawRectangle(panelX, panelY, 2, panelH, colorBorder)

	x := panelX + padding
	w := panelW - 2*padding
	y := panelY + padding

	rl.DrawText("Shop", x, y, 18, colorTextSecondary)
	y += rowH

	y = p.drawShop(x, y, w)
	y += padding

	rl.DrawText("Follow", x, y, 18, colorTextSecondary)
	y += rowH

	p.drawFollow(x, y, w)
}

func (p *debugPanel) drawShop(x, y, w int32) int32 {
	orbit := p.api.Orbit()

	if orbit.Active() {
		if gui.Button(rect(x, y, w, rowH), "End") {
			p.api.ShopEnd()
		}
	} else if gui.Button(rect(x, y, w, rowH), "Start") {
		p.api.ShopStart()
	}
	y += rowH + 4

	sp := orbit.Speeds()
	labelW := int32(80)
	sliderW := w - labelW - 40

	rl.DrawText("Yaw", x, y+6, 14, colorTextMuted)
	if v := gui.Slider(rect(x+labelW, y, sliderW, rowH-6), "", fmt.Sprintf("%.2f", sp.Yaw), sp.Yaw, 0, 10); v != sp.Yaw {
		p.api.ShopSetYawSpeed(v)
	}
	y += rowH

	rl.DrawText("Pitch", x, y+6, 14, colorTextMuted)
	if v := gui.Slider(rect(x+labelW, y, sliderW, rowH-6), "", fmt.Sprintf("%.2f", sp.Pitch), sp.Pitch, 0, 2); v != sp.Pitch {
		p.api.ShopSetPitchSpeed(v)
	}
	y += rowH

	rl.DrawText("Move", x, y+6, 14, colorTextMuted)
	if v := gui.Slider(rect(x+labelW, y, sliderW, rowH-6), "", fmt.Sprintf("%.0f", sp.Move), sp.Move, 0, 300); v != sp.Move {
		p.api.ShopSetMoveSpeed(v)
	}
	y += rowH + 4

	names := api.PresetNames()
	btnW := (w - int32(len(names)-1)*4) / int32(len(names))
	for i, name := range names {
		if gui.Button(rect(x+int32(i)*(btnW+4), y, btnW, rowH), name) {
			p.api.ShopPreset(name)
		}
	}
	y += rowH + 4

	pos := orbit.TargetPosition()
	angles := orbit.TargetAngles()
	rl.DrawText(fmt.Sprintf("pos (%.0f, %.0f, %.0f)", pos.X, pos.Y, pos.Z), x, y, 14, colorTextMuted)
	y += 18
	rl.DrawText(fmt.Sprintf("yaw %.2f pitch %.2f", angles.Yaw, angles.Pitch), x, y, 14, colorTextMuted)
	return y + 18
}

func (p *debugPanel) drawFollow(x, y, w int32) {
	follow := p.api.Follow()

	if follow.Active() {
		name := follow.Target().String()
		if a := p.world.FindByID(follow.Target().ID); a != nil {
			name = a.Name
		}
		rl.DrawText("Following "+name, x, y+6, 14, colorAccentLight)
		y += rowH
		if gui.Button(rect(x, y, w, rowH), "Back") {
			p.api.FollowEnd()
		}
		return
	}

	player := p.world.PlayerActor()
	for _, a := range p.world.Actors {
		if a == player {
			continue
		}
		if gui.Button(rect(x, y, w, rowH), fmt.Sprintf("%s [%s]", a.Name, a.Ref())) {
			p.api.FollowStart(a.Ref())
		}
		y += rowH + 2
	}
}

func rect(x, y, w, h int32) rl.Rectangle {
	return rl.Rectangle{X: float32(x), Y: float32(y), Width: float32(w), Height: float32(h)}
}
