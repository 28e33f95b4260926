package util

import "fmt"

// IntToBool converts 0/1 to boolean.
func IntToBool(i int) bool {
	return i != 0
}

// Ptr returns a pointer to the value.
func Ptr[T any](v T) *T {
	return &v
}

// Clamp constrains a value to a range.
func Clamp(value, min, max int) int {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}

// FormatClock renders seconds as MM:SS. Minutes are not wrapped at 60.
func FormatClock(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}

// FormatMinutes renders a minute total as "1h 05m" or "25m".
func FormatMinutes(minutes int) string {
	if minutes < 60 {
		return fmt.Sprintf("%dm", minutes)
	}
	return fmt.Sprintf("%dh %02dm", minutes/60, minutes%60)
}
