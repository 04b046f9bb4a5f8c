package ui

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Icons (emojis/symbols)
const (
	IconSettings = "⚙"
	IconFolder   = "📂"
	IconFile     = "📄"
	IconConvert  = "🎬"
	IconPreview  = "💡"
	IconSuccess  = "✅"
	IconWarning  = "⚠"
	IconError    = "❌"
)

// Text fragments
const (
	MiddleDotSeparator = " · "
)

// Window sizing
const (
	WindowWidth     float32 = 600
	WindowHeight    float32 = 480
	DetailMinHeight float32 = 100
	SettingsWidth   float32 = 460
	SettingsHeight  float32 = 260
)
