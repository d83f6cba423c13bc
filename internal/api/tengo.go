package api

import (
	"fmt"

	"smoothcam/internal/host"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// TengoModuleName is the import name scripts use: cam := import("camera").
const TengoModuleName = "camera"

// TengoModule exposes the surface as a tengo builtin module.
func (s *Surface) TengoModule() map[string]tengo.Object {
	return map[string]tengo.Object{
		"shop_start": tengoFunc("shop_start", 0, func(args []tengo.Object) (tengo.Object, error) {
			s.ShopStart()
			return tengo.UndefinedValue, nil
		}),
		"shop_end": tengoFunc("shop_end", 0, func(args []tengo.Object) (tengo.Object, error) {
			s.ShopEnd()
			return tengo.UndefinedValue, nil
		}),
		"shop_set_yaw_speed":   tengoSpeed("shop_set_yaw_speed", s.ShopSetYawSpeed),
		"shop_set_pitch_speed": tengoSpeed("shop_set_pitch_speed", s.ShopSetPitchSpeed),
		"shop_set_move_speed":  tengoSpeed("shop_set_move_speed", s.ShopSetMoveSpeed),
		"shop_set_pos": tengoFunc("shop_set_pos", 2, func(args []tengo.Object) (tengo.Object, error) {
			pos, err := objectToVec3("pos", args[0])
			if err != nil {
				return nil, err
			}
			dir, err := objectToVec3("dir", args[1])
			if err != nil {
				return nil, err
			}
			s.ShopSetPos(pos, dir)
			return tengo.UndefinedValue, nil
		}),
		"shop_preset": tengoFunc("shop_preset", 1, func(args []tengo.Object) (tengo.Object, error) {
			name, ok := tengo.ToString(args[0])
			if !ok {
				return nil, tengo.ErrInvalidArgumentType{Name: "name", Expected: "string", Found: args[0].TypeName()}
			}
			return boolObject(s.ShopPreset(name)), nil
		}),
		"shop_active": tengoFunc("shop_active", 0, func(args []tengo.Object) (tengo.Object, error) {
			return boolObject(s.orbit.Active()), nil
		}),
		"follow_start": tengoFunc("follow_start", 1, func(args []tengo.Object) (tengo.Object, error) {
			id, ok := tengo.ToInt64(args[0])
			if !ok {
				return nil, tengo.ErrInvalidArgumentType{Name: "formID", Expected: "int", Found: args[0].TypeName()}
			}
			s.FollowStart(host.ActorRef{ID: uint32(id)})
			return boolObject(s.follow.Active()), nil
		}),
		"follow_end": tengoFunc("follow_end", 0, func(args []tengo.Object) (tengo.Object, error) {
			s.FollowEnd()
			return tengo.UndefinedValue, nil
		}),
		"follow_active": tengoFunc("follow_active", 0, func(args []tengo.Object) (tengo.Object, error) {
			return boolObject(s.follow.Active()), nil
		}),
	}
}

// TengoScript is a compiled per-frame script. The script body runs once per
// frame with frame and time set.
type TengoScript struct {
	compiled *tengo.Compiled
}

// CompileTengo compiles src with the camera module and the tengo stdlib
// importable.
func (s *Surface) CompileTengo(src []byte) (*TengoScript, error) {
	script := tengo.NewScript(src)
	_ = script.Add("frame", 0)
	_ = script.Add("time", 0.0)

	modules := stdlib.GetModuleMap(stdlib.AllModuleNames()...)
	modules.AddBuiltinModule(TengoModuleName, s.TengoModule())
	script.SetImports(modules)

	compiled, err := script.Compile()
	if err != nil {
		return nil, fmt.Errorf("compile tengo: %w", err)
	}
	return &TengoScript{compiled: compiled}, nil
}

// RunFrame runs the script body for one frame.
func (ts *TengoScript) RunFrame(frame int, t float32) error {
	if err := ts.compiled.Set("frame", frame); err != nil {
		return err
	}
	if err := ts.compiled.Set("time", float64(t)); err != nil {
		return err
	}
	return ts.compiled.Run()
}

func tengoFunc(name string, arity int, fn func(args []tengo.Object) (tengo.Object, error)) *tengo.UserFunction {
	return &tengo.UserFunction{Name: name, Value: func(args ...tengo.Object) (tengo.Object, error) {
		if len(args) != arity {
			return nil, tengo.ErrWrongNumArguments
		}
		return fn(args)
	}}
}

func tengoSpeed(name string, set func(float32)) *tengo.UserFunction {
	return tengoFunc(name, 1, func(args []tengo.Object) (tengo.Object, error) {
		v, ok := tengo.ToFloat64(args[0])
		if !ok {
			return nil, tengo.ErrInvalidArgumentType{Name: "speed", Expected: "float", Found: args[0].TypeName()}
		}
		set(float32(v))
		return tengo.UndefinedValue, nil
	})
}

func objectToVec3(name string, obj tengo.Object) (host.Vec3, error) {
	var items []tengo.Object
	switch v := obj.(type) {
	case *tengo.Array:
		items = v.Value
	case *tengo.ImmutableArray:
		items = v.Value
	}
	if len(items) != 3 {
		return host.Vec3{}, tengo.ErrInvalidArgumentType{Name: name, Expected: "array of 3 numbers", Found: obj.TypeName()}
	}

	var xyz [3]float32
	for i, item := range items {
		f, ok := tengo.ToFloat64(item)
		if !ok {
			return host.Vec3{}, tengo.ErrInvalidArgumentType{Name: name, Expected: "number", Found: item.TypeName()}
		}
		xyz[i] = float32(f)
	}
	return rl.Vector3{X: xyz[0], Y: xyz[1], Z: xyz[2]}, nil
}

func boolObject(b bool) tengo.Object {
	if b {
		return tengo.TrueValue
	}
	return tengo.FalseValue
}
