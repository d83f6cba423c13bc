package hook

import (
	"errors"
	"testing"
)

func TestPointInstall(t *testing.T) {
	calls := ""
	slot := func(s string) { calls += "native:" + s + " " }

	p := NewPoint[func(string)]("Test")
	err := p.Install(&slot, func(s string) {
		calls += "detour "
		p.Original()(s)
	})
	if err != nil {
		t.Fatalf("Install() failed: %v", err)
	}
	if !p.Installed() {
		t.Error("Point should report installed")
	}

	slot("x")
	if calls != "detour native:x " {
		t.Errorf("Expected detour to run before native, got %q", calls)
	}
}

func TestPointInstallTwice(t *testing.T) {
	slot := func() {}
	p := NewPoint[func()]("Twice")
	if err := p.Install(&slot, func() {}); err != nil {
		t.Fatalf("First Install() failed: %v", err)
	}
	if err := p.Install(&slot, func() {}); !errors.Is(err, ErrAlreadyInstalled) {
		t.Errorf("Expected ErrAlreadyInstalled, got %v", err)
	}
}

func TestPointInstallEmptySlot(t *testing.T) {
	var slot func()
	p := NewPoint[func()]("Empty")
	if err := p.Install(&slot, func() {}); !errors.Is(err, ErrEmptySlot) {
		t.Errorf("Expected ErrEmptySlot, got %v", err)
	}
	if err := p.Install(nil, func() {}); !errors.Is(err, ErrEmptySlot) {
		t.Errorf("Expected ErrEmptySlot for nil slot, got %v", err)
	}
	if p.Installed() {
		t.Error("Point should not be installed")
	}
}

func TestPointInstallNilDetour(t *testing.T) {
	slot := func() {}
	p := NewPoint[func()]("NilDetour")
	if err := p.Install(&slot, nil); err == nil {
		t.Error("Expected error for nil detour")
	}
	if p.Installed() {
		t.Error("Point should not be installed")
	}
}

func TestPointUninstall(t *testing.T) {
	hits := 0
	slot := func() { hits++ }
	p := NewPoint[func()]("Uninstall")

	if err := p.Uninstall(&slot); !errors.Is(err, ErrNotInstalled) {
		t.Errorf("Expected ErrNotInstalled, got %v", err)
	}

	_ = p.Install(&slot, func() {})
	slot()
	if hits != 0 {
		t.Errorf("Expected detour to replace native, got %d native calls", hits)
	}

	if err := p.Uninstall(&slot); err != nil {
		t.Fatalf("Uninstall() failed: %v", err)
	}
	slot()
	if hits != 1 {
		t.Errorf("Expected native restored, got %d calls", hits)
	}
	if p.Installed() || p.Original() != nil {
		t.Error("Uninstall() should clear the point")
	}

	// can be installed again
	if err := p.Install(&slot, func() {}); err != nil {
		t.Errorf("Reinstall failed: %v", err)
	}
}
