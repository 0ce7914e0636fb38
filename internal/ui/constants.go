package ui

import "time"

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Icons (emojis/symbols)
const (
	IconSearch = "🔍"
	IconCopy   = "📋"
	IconRetry  = "↻"
	IconCheck  = "✓"
)

// Text fragments
const (
	MiddleDotSeparator = " · "
	AddedText          = "ADDED!"
	SelectedFormat     = "%d selected"
)

// Layout sizing
const (
	ArtworkSize     float32 = 56
	HeroArtworkSize float32 = 96
	CardArtworkSize float32 = 72
	StatusDotSize   float32 = 12

	WindowWidth  float32 = 1000
	WindowHeight float32 = 720

	ArtistDialogWidth  float32 = 760
	ArtistDialogHeight float32 = 600
	LoginDialogWidth   float32 = 360
	ScriptDialogWidth  float32 = 560
	ScriptDialogHeight float32 = 420
)

// Timers
const (
	TipInterval   = 3 * time.Second
	FlashDuration = 2 * time.Second
	ShakeDuration = 400 * time.Millisecond
	ShakeDistance = 8
)
