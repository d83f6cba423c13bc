package host

import "fmt"

// SettingID identifies a numeric engine setting. The values are the engine's
// own identifiers and are opaque to the extension.
type SettingID uint32

const (
	SettingAutoVanityModeDelay SettingID = 509848
	SettingPitchZoomOutMaxDist SettingID = 509905
	SettingChaseCameraSpeed    SettingID = 509911
)

func (id SettingID) String() string {
	switch id {
	case SettingAutoVanityModeDelay:
		return "fAutoVanityModeDelay:Camera"
	case SettingPitchZoomOutMaxDist:
		return "fPitchZoomOutMaxDist:Camera"
	case SettingChaseCameraSpeed:
		return "fChaseCameraSpeed:Camera"
	}
	return fmt.Sprintf("setting(%d)", uint32(id))
}

// Settings is key-value access to numeric engine settings.
type Settings interface {
	Setting(id SettingID) float32
	SetSetting(id SettingID, v float32)
}

// SwapSetting writes v and returns the value it replaced.
func SwapSetting(s Settings, id SettingID, v float32) float32 {
	old := s.Setting(id)
	s.SetSetting(id, v)
	return old
}
