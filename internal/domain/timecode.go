package domain

import "fmt"

// FormatTimecode converts a seconds offset into a clock string for
// display: "M:SS" below one hour, "H:MM:SS" above. Fractional seconds
// are truncated; the numeric time stays the identity key.
func FormatTimecode(seconds float64) string {
	if seconds < 0 {
		seconds = 0
	}
	total := int(seconds)

	h := total / 3600
	m := (total % 3600) / 60
	s := total % 60

	if h > 0 {
		return fmt.Sprintf("%d:%02d:%02d", h, m, s)
	}
	return fmt.Sprintf("%d:%02d", m, s)
}
