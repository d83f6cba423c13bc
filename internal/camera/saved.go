package camera

import "smoothcam/internal/host"

// SavedSetting is one engine setting value captured before an override.
type SavedSetting struct {
	ID    host.SettingID
	Value float32
}

// SavedHostState is the engine state an orbit session overrides, captured on
// Start and written back on End.
type SavedHostState struct {
	Settings       []SavedSetting
	Controls       host.InputFlags
	WasFirstPerson bool
}

// swapSettings applies overrides and returns the values they replaced, in the
// same order.
func swapSettings(s host.Settings, overrides []SavedSetting) []SavedSetting {
	saved := make([]SavedSetting, 0, len(overrides))
	for _, o := range overrides {
		saved = append(saved, SavedSetting{ID: o.ID, Value: host.SwapSetting(s, o.ID, o.Value)})
	}
	return saved
}

func restoreSettings(s host.Settings, saved []SavedSetting) {
	for _, v := range saved {
		s.SetSetting(v.ID, v.Value)
	}
}

// disableControls turns off the session-blocked input categories and returns
// the full mask that was in effect before.
func disableControls(c host.Controls) host.InputFlags {
	return c.SetEnabledControls(c.EnabledControls() &^ host.SessionBlocked)
}
