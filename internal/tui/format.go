package tui

import (
	"github.com/akyairhashvil/studyfocus/internal/config"
	"github.com/charmbracelet/x/ansi"
)

// truncate shortens text to max cells, measuring ANSI-aware width.
func truncate(text string, max int) string {
	if max <= 0 || ansi.StringWidth(text) <= max {
		return text
	}
	return ansi.Truncate(text, max, config.TruncationSuffix)
}

// progressWidth fits the bar into the window, clamped to the layout limits.
func progressWidth(windowWidth int) int {
	if windowWidth <= 0 {
		return config.TargetProgressWidth
	}
	w := windowWidth - 12
	if w > config.TargetProgressWidth {
		w = config.TargetProgressWidth
	}
	if w < config.MinProgressWidth {
		w = config.MinProgressWidth
	}
	return w
}
