package ui

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Icons (emojis/symbols)
const (
	IconSettings = "⚙"
	IconFolder   = "📁"
	IconOpen     = "🖼"
	IconClose    = "×"
	IconOK       = "✔"
	IconError    = "❌"
)

// Text fragments
const (
	TitleSeparator = " — "
)

// Layout sizing (CheckRow / lists)
const (
	StatusLabelWidth float32 = 220
	SizeLabelWidth   float32 = 80

	RowMinWidth  float32 = 400
	RowMinHeight float32 = 44

	LogoSize float32 = 32
)

// Dialog sizing
const (
	SettingsDialogWidth  float32 = 460
	SettingsDialogHeight float32 = 260
	FileDialogWidth      float32 = 720
	FileDialogHeight     float32 = 520
)

// BytesPerKiB converts between the settings dialog unit and bytes
const BytesPerKiB = 1024

// FileScheme is the URI scheme of local files
const FileScheme = "file"
