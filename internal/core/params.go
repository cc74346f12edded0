package core

// SettingKey identifies a boolean setting shown on the settings screen.
type SettingKey string

const (
	// SettingInvertScroll flips the wheel zoom direction.
	SettingInvertScroll SettingKey = "invert_scroll"
	// SettingGridLines draws cell borders when zoomed in far enough.
	SettingGridLines SettingKey = "grid_lines"
	// SettingShowStats shows the generation/population readout.
	SettingShowStats SettingKey = "show_stats"
)

// Toggle describes a single on/off setting for presentation purposes.
type Toggle struct {
	Key   SettingKey
	Label string
	Value bool
}

// Settings holds the user-adjustable toggles.
type Settings struct {
	InvertScroll bool
	GridLines    bool
	ShowStats    bool
}

// DefaultSettings returns the settings a fresh session starts with.
func DefaultSettings() Settings {
	return Settings{GridLines: true, ShowStats: true}
}

// Toggles lists the settings in display order.
func (s *Settings) Toggles() []Toggle {
	return []Toggle{
		{Key: SettingInvertScroll, Label: "Invert Mouse Scrolling", Value: s.InvertScroll},
		{Key: SettingGridLines, Label: "Show Grid Lines", Value: s.GridLines},
		{Key: SettingShowStats, Label: "Show Statistics", Value: s.ShowStats},
	}
}

// Flip inverts the named setting and reports whether the key was known.
func (s *Settings) Flip(key SettingKey) bool {
	switch key {
	case SettingInvertScroll:
		s.InvertScroll = !s.InvertScroll
	case SettingGridLines:
		s.GridLines = !s.GridLines
	case SettingShowStats:
		s.ShowStats = !s.ShowStats
	default:
		return false
	}
	return true
}
