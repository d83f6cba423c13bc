package sim

import (
	"testing"

	"smoothcam/internal/host"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func TestNewWorld(t *testing.T) {
	w := New()
	p := w.PlayerActor()
	if p.FormID != 0x14 {
		t.Errorf("Expected player form ID 0x14, got %X", p.FormID)
	}
	if w.Camera().Target() != p.Ref() {
		t.Error("Camera should start on the player")
	}
	if !w.Camera().IsThirdPerson() {
		t.Error("Camera should start in third person")
	}
	if w.Controls().EnabledControls() != host.InputAll {
		t.Errorf("Expected all controls enabled, got %s", w.Controls().EnabledControls())
	}
	if got := w.Settings().Setting(host.SettingChaseCameraSpeed); got != 500 {
		t.Errorf("Expected chase speed 500, got %v", got)
	}
	if w.Info().Runtime != DefaultRuntime {
		t.Errorf("Expected runtime %s, got %s", DefaultRuntime, w.Info().Runtime)
	}
}

func TestSpawnDespawn(t *testing.T) {
	w := New()
	a := NewActor("A")
	w.Spawn(a)

	if a.FormID != 0x15 {
		t.Errorf("Expected form ID 0x15, got %X", a.FormID)
	}
	if w.LookupActor(a.Ref()) != a {
		t.Error("LookupActor should find the spawned actor")
	}

	w.Despawn(a)
	if w.LookupActor(a.Ref()) != nil {
		t.Error("LookupActor should not find a despawned actor")
	}
	if a.World() != nil {
		t.Error("Despawned actor should have no world")
	}
	if len(w.Actors) != 1 {
		t.Errorf("Expected only the player left, got %d actors", len(w.Actors))
	}
}

func TestActorSetPosition(t *testing.T) {
	a := NewActor("A")
	a.SetPosition(rl.Vector3{X: 1}, false)
	a.SetPosition(rl.Vector3{X: 1, Y: 2}, false)
	if a.Position() != (rl.Vector3{X: 2, Y: 2}) {
		t.Errorf("Expected relative moves to add up, got %v", a.Position())
	}
	if a.Teleports != 0 {
		t.Error("Relative moves should not count as teleports")
	}

	a.SetPosition(rl.Vector3{Z: 9}, true)
	if a.Position() != (rl.Vector3{Z: 9}) || a.Teleports != 1 {
		t.Errorf("Expected teleport to (0,0,9), got %v after %d teleports", a.Position(), a.Teleports)
	}
}

func TestBroadcast(t *testing.T) {
	w := New()
	var got []host.MessageType
	if !w.RegisterListener(Sender, func(m host.Message) { got = append(got, m.Type) }) {
		t.Fatal("RegisterListener failed")
	}
	w.RegisterListener("other", func(m host.Message) { t.Error("Listener for another sender was called") })

	w.Broadcast(host.MessagePostLoad)
	w.Broadcast(host.MessageDataLoaded)

	if len(got) != 2 || got[1] != host.MessageDataLoaded {
		t.Errorf("Expected PostLoad then DataLoaded, got %v", got)
	}

	w.RefuseListeners = true
	if w.RegisterListener(Sender, func(host.Message) {}) {
		t.Error("RegisterListener should fail when refused")
	}
}

func TestStepNativeCamera(t *testing.T) {
	w := New()
	w.PlayerActor().Transform.Heading = 1
	w.SimCamera().Pitch = 0.2

	w.Step(1)

	s := w.Camera().ThirdPerson()
	if s.TargetYaw != 1 {
		t.Errorf("Expected target yaw to follow heading, got %v", s.TargetYaw)
	}
	if s.CurrentYaw != 1 {
		t.Errorf("Expected chase at speed 5 to land in one second, got %v", s.CurrentYaw)
	}
	if s.Rotation != rotation(0.2, 1) {
		t.Errorf("Expected native rotation, got %v", s.Rotation)
	}
	if w.Frame != 1 {
		t.Errorf("Expected frame 1, got %d", w.Frame)
	}
	if w.ElapsedSeconds() != 1 {
		t.Errorf("Expected elapsed 1, got %v", w.ElapsedSeconds())
	}
}

func TestStepFirstPersonSkipsCamera(t *testing.T) {
	w := New()
	w.Camera().ForceFirstPerson()
	w.PlayerActor().Transform.Heading = 1
	w.Step(1)
	if w.Camera().ThirdPerson().TargetYaw != 0 {
		t.Error("Third-person state should not update in first person")
	}
}

func TestWalkingDropsFreeRotation(t *testing.T) {
	w := New()
	w.Camera().ThirdPerson().FreeRotation = true
	w.PlayerActor().Velocity = rl.Vector3{Y: 100}

	w.Step(0.5)

	if w.Camera().ThirdPerson().FreeRotation {
		t.Error("Walking should turn free rotation off")
	}
	if w.FreeRotationToggles != 1 {
		t.Errorf("Expected one toggle, got %d", w.FreeRotationToggles)
	}
	if w.PlayerActor().Position() != (rl.Vector3{Y: 50}) {
		t.Errorf("Expected player at (0,50,0), got %v", w.PlayerActor().Position())
	}
}

func TestFocusAndEye(t *testing.T) {
	w := New()
	npc := NewActor("NPC")
	npc.Transform.Position = rl.Vector3{X: 300}
	w.Spawn(npc)

	if w.Focus() != w.PlayerActor() {
		t.Error("Focus should default to the player")
	}
	w.Camera().SetTarget(npc.Ref())
	if w.Focus() != npc {
		t.Error("Focus should follow the camera target")
	}

	pos, target := w.Eye()
	if target != (rl.Vector3{X: 300, Z: 120}) {
		t.Errorf("Expected pivot above the NPC, got %v", target)
	}
	if pos.Y >= target.Y {
		t.Errorf("Eye should sit behind the pivot, got %v", pos)
	}

	w.Despawn(npc)
	if w.Focus() != w.PlayerActor() {
		t.Error("Focus should fall back to the player")
	}
}

func TestScriptVM(t *testing.T) {
	w := New()
	r := w.Scripts()
	fn := func() {}
	if !r.RegisterFunction("API_Test", "Game", fn) {
		t.Fatal("RegisterFunction failed")
	}
	if w.ScriptVM.Native("Game", "API_Test") == nil || w.ScriptVM.Len() != 1 {
		t.Error("Registered native not found")
	}
	if r.RegisterFunction("API_Nil", "Game", nil) {
		t.Error("Registering nil should fail")
	}

	w.ScriptVM.Refuse = true
	if r.RegisterFunction("API_Other", "Game", fn) {
		t.Error("Refusing VM should reject registrations")
	}
}
