// Package hook redirects engine entry points to the camera overrides.
package hook

import (
	"errors"
	"fmt"
	"reflect"
)

var (
	ErrAlreadyInstalled = errors.New("hook already installed")
	ErrNotInstalled     = errors.New("hook not installed")
	ErrEmptySlot        = errors.New("engine slot is empty")
)

// Point is one interception point. Install swaps a detour into an engine slot
// and keeps the engine's function so the detour can fall through to it.
type Point[F any] struct {
	Name string

	original  F
	installed bool
}

func NewPoint[F any](name string) *Point[F] {
	return &Point[F]{Name: name}
}

// Install replaces *slot with detour.
func (p *Point[F]) Install(slot *F, detour F) error {
	if p.installed {
		return fmt.Errorf("%s: %w", p.Name, ErrAlreadyInstalled)
	}
	if slot == nil || isNil(*slot) {
		return fmt.Errorf("%s: %w", p.Name, ErrEmptySlot)
	}
	if isNil(detour) {
		return fmt.Errorf("%s: nil detour", p.Name)
	}
	p.original = *slot
	*slot = detour
	p.installed = true
	return nil
}

// Uninstall puts the engine's function back into *slot.
func (p *Point[F]) Uninstall(slot *F) error {
	if !p.installed {
		return fmt.Errorf("%s: %w", p.Name, ErrNotInstalled)
	}
	if slot == nil {
		return fmt.Errorf("%s: %w", p.Name, ErrEmptySlot)
	}
	*slot = p.original
	var zero F
	p.original = zero
	p.installed = false
	return nil
}

// Original is the engine function the detour replaced. It is the zero value
// until Install succeeds.
func (p *Point[F]) Original() F {
	return p.original
}

func (p *Point[F]) Installed() bool {
	return p.installed
}

func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Func, reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Chan:
		return rv.IsNil()
	}
	return false
}
