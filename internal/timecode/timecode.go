// Package timecode converts between human-readable clock strings
// ("MM:SS" or "HH:MM:SS") and seconds.
package timecode

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Parse converts a colon-delimited clock string to seconds.
// Accepts 2 fields (MM:SS) or 3 fields (HH:MM:SS); a fractional seconds
// field is accepted but the fraction is discarded. Anything unparseable
// yields 0: the input comes from untrusted model output, and a malformed
// timestamp must never take down the caller.
func Parse(clock string) float64 {
	parts := strings.Split(strings.TrimSpace(clock), ":")
	if len(parts) < 2 || len(parts) > 3 {
		return 0
	}

	var total float64
	for _, part := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil || v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
			return 0
		}
		total = total*60 + v
	}

	return math.Trunc(total)
}

// Format renders seconds as a WebVTT clock string, always 3-field with
// milliseconds: HH:MM:SS.mmm. Negative or NaN input formats as zero.
func Format(seconds float64) string {
	if math.IsNaN(seconds) || seconds < 0 {
		seconds = 0
	}

	totalMillis := int64(math.Round(seconds * 1000))
	hours := totalMillis / 3600000
	minutes := totalMillis % 3600000 / 60000
	secs := totalMillis % 60000 / 1000
	millis := totalMillis % 1000

	return fmt.Sprintf("%02d:%02d:%02d.%03d", hours, minutes, secs, millis)
}
