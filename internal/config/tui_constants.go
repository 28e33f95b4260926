package config

// Layout constants.
const (
	// MinProgressWidth is the narrowest the progress bar is drawn.
	MinProgressWidth = 20

	// TargetProgressWidth is the preferred progress bar width.
	TargetProgressWidth = 40

	// CompactModeThreshold triggers compact rendering below this width.
	CompactModeThreshold = 60
)

// Display limits.
const (
	// MaxSubjectWidth truncates long subject labels.
	MaxSubjectWidth = 32

	// MaxStatusWidth truncates the status line.
	MaxStatusWidth = 60

	// TruncationSuffix appended to truncated strings.
	TruncationSuffix = "…"
)
