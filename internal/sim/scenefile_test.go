package sim

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const testScene = `
player:
  name: Player
  position: [10, 20, 0]
  heading: 1.5
actors:
  - name: Trader
    formID: 0x100
    tags: [vendor]
    color: gold
    position: [100, 200, 0]
  - name: Brahmin
    position: [-50, 0, 0]
    velocity: [0, 5, 0]
`

func TestParseScene(t *testing.T) {
	w, err := ParseScene([]byte(testScene))
	if err != nil {
		t.Fatalf("ParseScene failed: %v", err)
	}

	p := w.PlayerActor()
	if p.Position() != (rl.Vector3{X: 10, Y: 20}) {
		t.Errorf("Expected player at (10,20,0), got %v", p.Position())
	}
	if p.Heading() != 1.5 {
		t.Errorf("Expected heading 1.5, got %v", p.Heading())
	}

	trader := w.FindByName("Trader")
	if trader == nil {
		t.Fatal("Trader not found")
	}
	if trader.FormID != 0x100 {
		t.Errorf("Expected form ID 0x100, got %X", trader.FormID)
	}
	if !trader.HasTag("vendor") || trader.HasTag("guard") {
		t.Errorf("Unexpected tags %v", trader.Tags)
	}
	if w.FindByID(0x100) != trader {
		t.Error("FindByID should return the trader")
	}

	brahmin := w.FindByName("Brahmin")
	if brahmin == nil {
		t.Fatal("Brahmin not found")
	}
	if brahmin.FormID != 0x101 {
		t.Errorf("Expected next free form ID 0x101, got %X", brahmin.FormID)
	}
	if brahmin.Velocity != (rl.Vector3{Y: 5}) {
		t.Errorf("Expected velocity (0,5,0), got %v", brahmin.Velocity)
	}
	if brahmin.World() != w {
		t.Error("Spawned actor should know its world")
	}
}

func TestParseSceneErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
		want string
	}{
		{"bad yaml", "actors: [", "parse scene"},
		{"missing name", "actors:\n  - position: [0, 0, 0]\n", "missing name"},
		{"duplicate id", "actors:\n  - name: A\n    formID: 0x200\n  - name: B\n    formID: 0x200\n", "already used"},
		{"player id", "actors:\n  - name: A\n    formID: 0x14\n", "already used"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseScene([]byte(tt.data))
			if err == nil {
				t.Fatal("Expected error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("Expected error containing %q, got %v", tt.want, err)
			}
		})
	}
}

func TestLoadScene(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scene.yaml")
	if err := os.WriteFile(path, []byte(testScene), 0o644); err != nil {
		t.Fatal(err)
	}
	w, err := LoadScene(path)
	if err != nil {
		t.Fatalf("LoadScene failed: %v", err)
	}
	if len(w.Actors) != 3 {
		t.Errorf("Expected 3 actors, got %d", len(w.Actors))
	}

	if _, err := LoadScene(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("Expected error for a missing file")
	}
}
