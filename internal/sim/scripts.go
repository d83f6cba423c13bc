package sim

import "smoothcam/internal/host"

// ScriptVM records native functions registered by extensions.
type ScriptVM struct {
	natives map[string]any
	// Refuse makes every registration fail.
	Refuse bool
}

func (vm *ScriptVM) RegisterFunction(name, class string, fn any) bool {
	if vm.Refuse || fn == nil {
		return false
	}
	if vm.natives == nil {
		vm.natives = make(map[string]any)
	}
	vm.natives[class+"."+name] = fn
	return true
}

// Native returns the function registered as class.name, or nil.
func (vm *ScriptVM) Native(class, name string) any {
	return vm.natives[class+"."+name]
}

func (vm *ScriptVM) Len() int {
	return len(vm.natives)
}

// Scripts implements host.Host.
func (w *World) Scripts() host.ScriptRegistry {
	return &w.ScriptVM
}
