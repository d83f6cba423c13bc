package api

import (
	"fmt"

	"smoothcam/internal/host"

	"github.com/Shopify/go-lua"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// OpenLua installs the Shop and Follow global tables into state.
func (s *Surface) OpenLua(state *lua.State) {
	state.NewTable()
	lua.SetFunctions(state, s.shopFunctions(), 0)
	state.SetGlobal("Shop")

	state.NewTable()
	lua.SetFunctions(state, s.followFunctions(), 0)
	state.SetGlobal("Follow")
}

func (s *Surface) shopFunctions() []lua.RegistryFunction {
	return []lua.RegistryFunction{
		{Name: "Start", Function: func(state *lua.State) int {
			s.ShopStart()
			return 0
		}},
		{Name: "End", Function: func(state *lua.State) int {
			s.ShopEnd()
			return 0
		}},
		{Name: "SetYawSpeed", Function: func(state *lua.State) int {
			s.ShopSetYawSpeed(float32(lua.CheckNumber(state, 1)))
			return 0
		}},
		{Name: "SetPitchSpeed", Function: func(state *lua.State) int {
			s.ShopSetPitchSpeed(float32(lua.CheckNumber(state, 1)))
			return 0
		}},
		{Name: "SetMoveSpeed", Function: func(state *lua.State) int {
			s.ShopSetMoveSpeed(float32(lua.CheckNumber(state, 1)))
			return 0
		}},
		{Name: "SetPos", Function: func(state *lua.State) int {
			pos := checkVec3(state, 1)
			dir := checkVec3(state, 4)
			s.ShopSetPos(pos, dir)
			return 0
		}},
		{Name: "Preset", Function: func(state *lua.State) int {
			state.PushBoolean(s.ShopPreset(lua.CheckString(state, 1)))
			return 1
		}},
		{Name: "Active", Function: func(state *lua.State) int {
			state.PushBoolean(s.orbit.Active())
			return 1
		}},
	}
}

func (s *Surface) followFunctions() []lua.RegistryFunction {
	return []lua.RegistryFunction{
		{Name: "Start", Function: func(state *lua.State) int {
			s.FollowStart(host.ActorRef{ID: uint32(lua.CheckInteger(state, 1))})
			state.PushBoolean(s.follow.Active())
			return 1
		}},
		{Name: "End", Function: func(state *lua.State) int {
			s.FollowEnd()
			return 0
		}},
		{Name: "Active", Function: func(state *lua.State) int {
			state.PushBoolean(s.follow.Active())
			return 1
		}},
	}
}

// checkVec3 reads three numbers starting at stack index i.
func checkVec3(state *lua.State, i int) host.Vec3 {
	return rl.Vector3{
		X: float32(lua.CheckNumber(state, i)),
		Y: float32(lua.CheckNumber(state, i+1)),
		Z: float32(lua.CheckNumber(state, i+2)),
	}
}

// LuaScript is a loaded Lua chunk that defines update(frame, time), called
// once per frame.
type LuaScript struct {
	state *lua.State
}

// LoadLua runs src once with the standard libraries and the camera tables
// open, and checks that it defines update.
func (s *Surface) LoadLua(src string) (*LuaScript, error) {
	state := lua.NewState()
	lua.OpenLibraries(state)
	s.OpenLua(state)

	if err := lua.DoString(state, src); err != nil {
		return nil, fmt.Errorf("run lua: %w", err)
	}
	state.Global("update")
	defined := state.IsFunction(-1)
	state.Pop(1)
	if !defined {
		return nil, fmt.Errorf("lua script must define update(frame, time)")
	}
	return &LuaScript{state: state}, nil
}

// RunFrame calls update(frame, time).
func (ls *LuaScript) RunFrame(frame int, t float32) error {
	ls.state.Global("update")
	ls.state.PushInteger(frame)
	ls.state.PushNumber(float64(t))
	if err := ls.state.ProtectedCall(2, 0, 0); err != nil {
		return fmt.Errorf("lua update: %w", err)
	}
	return nil
}
