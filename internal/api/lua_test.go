package api

import (
	"strings"
	"testing"

	"smoothcam/internal/sim"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const shopLua = `
function update(frame, time)
  if frame == 0 then
    Shop.Start()
    Shop.SetYawSpeed(2)
    Shop.SetPitchSpeed(0.5)
  elseif frame == 1 then
    Shop.SetPos(0, -20, -20, 0, -10, -2)
  elseif frame == 2 and Shop.Active() then
    Shop.End()
  end
end
`

func TestLuaScript(t *testing.T) {
	w, s := newSurface()
	script, err := s.LoadLua(shopLua)
	if err != nil {
		t.Fatalf("LoadLua failed: %v", err)
	}

	if err := script.RunFrame(0, 0); err != nil {
		t.Fatalf("frame 0: %v", err)
	}
	if !s.Orbit().Active() {
		t.Fatal("Script should have started the orbit session")
	}
	if sp := s.Orbit().Speeds(); sp.Yaw != 2 || sp.Pitch != 0.5 {
		t.Errorf("Expected yaw 2 and pitch 0.5, got %+v", sp)
	}
	w.Step(1.0 / 60)

	if err := script.RunFrame(1, 1.0/60); err != nil {
		t.Fatalf("frame 1: %v", err)
	}
	if s.Orbit().TargetPosition() != (rl.Vector3{Y: -20, Z: -20}) {
		t.Errorf("Expected target (0,-20,-20), got %v", s.Orbit().TargetPosition())
	}

	if err := script.RunFrame(2, 2.0/60); err != nil {
		t.Fatalf("frame 2: %v", err)
	}
	if s.Orbit().Active() {
		t.Error("Script should have ended the orbit session")
	}
}

func TestLuaFollowAndPreset(t *testing.T) {
	w, s := newSurface()
	npc := sim.NewActor("Trader")
	npc.FormID = 300
	w.Spawn(npc)

	script, err := s.LoadLua(`
results = {}
function update(frame, time)
  results.missing = Follow.Start(99999)
  results.found = Follow.Start(300)
  Shop.Start()
  results.preset = Shop.Preset("Armor")
  results.unknown = Shop.Preset("Boots")
  assert(results.found and not results.missing)
  assert(results.preset and not results.unknown)
  assert(Follow.Active())
  Follow.End()
end
`)
	if err != nil {
		t.Fatalf("LoadLua failed: %v", err)
	}
	if err := script.RunFrame(0, 0); err != nil {
		t.Fatalf("RunFrame failed: %v", err)
	}
	if s.Follow().Active() {
		t.Error("Script should have ended the follow session")
	}
	if s.Orbit().TargetPosition() != Presets["Armor"].Pos {
		t.Errorf("Expected %v, got %v", Presets["Armor"].Pos, s.Orbit().TargetPosition())
	}
}

func TestLuaErrors(t *testing.T) {
	_, s := newSurface()

	if _, err := s.LoadLua(`x = `); err == nil {
		t.Error("Expected syntax error")
	}
	if _, err := s.LoadLua(`x = 1`); err == nil || !strings.Contains(err.Error(), "update") {
		t.Errorf("Expected missing update error, got %v", err)
	}

	tests := []struct {
		name string
		src  string
	}{
		{"raised", `function update() error("boom") end`},
		{"bad speed", `function update() Shop.SetYawSpeed("fast") end`},
		{"short pos", `function update() Shop.SetPos(1, 2, 3) end`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			script, err := s.LoadLua(tt.src)
			if err != nil {
				t.Fatalf("LoadLua failed: %v", err)
			}
			if err := script.RunFrame(0, 0); err == nil {
				t.Error("Expected runtime error")
			}
		})
	}
}
