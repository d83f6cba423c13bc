package api

import (
	"os"
	"path/filepath"
	"testing"
)

func TestIsScriptFile(t *testing.T) {
	tests := map[string]bool{
		"shop.tengo":    true,
		"follow.lua":    true,
		"UPPER.LUA":     true,
		"scene.yaml":    false,
		"noext":         false,
		"dir.lua/a.txt": false,
	}
	for path, want := range tests {
		if got := IsScriptFile(path); got != want {
			t.Errorf("IsScriptFile(%q): expected %v, got %v", path, want, got)
		}
	}
}

func TestLoadScript(t *testing.T) {
	_, s := newSurface()
	dir := t.TempDir()

	write := func(name, src string) string {
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, []byte(src), 0o644); err != nil {
			t.Fatal(err)
		}
		return path
	}

	tengoPath := write("start.tengo", `import("camera").shop_start()`)
	luaPath := write("end.lua", `function update(frame, time) Shop.End() end`)
	txtPath := write("notes.txt", `hello`)

	script, err := s.LoadScript(tengoPath)
	if err != nil {
		t.Fatalf("LoadScript(tengo) failed: %v", err)
	}
	if err := script.RunFrame(0, 0); err != nil {
		t.Fatalf("tengo RunFrame failed: %v", err)
	}
	if !s.Orbit().Active() {
		t.Error("tengo script should have started the orbit session")
	}

	script, err = s.LoadScript(luaPath)
	if err != nil {
		t.Fatalf("LoadScript(lua) failed: %v", err)
	}
	if err := script.RunFrame(1, 0); err != nil {
		t.Fatalf("lua RunFrame failed: %v", err)
	}
	if s.Orbit().Active() {
		t.Error("lua script should have ended the orbit session")
	}

	if _, err := s.LoadScript(txtPath); err == nil {
		t.Error("Expected error for unsupported extension")
	}
	if _, err := s.LoadScript(filepath.Join(dir, "missing.lua")); err == nil {
		t.Error("Expected error for missing file")
	}
}
