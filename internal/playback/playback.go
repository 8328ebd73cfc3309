// Package playback keeps a caption/marker display synchronized with the
// current video position. Everything here is a pure function of the
// current annotation sequence plus a position, called once per playback
// time-update event.
package playback

import (
	"github.com/b08x/video-annotator/internal/annotation"
	"github.com/b08x/video-annotator/internal/timecode"
)

// State is a read-only snapshot of the playback surface.
type State struct {
	PositionSeconds float64
	DurationSeconds float64
}

// ActiveCaption returns the caption active at the given position, scanning
// the sequence in reverse order and picking the first entry whose time has
// been reached. Captions are sticky: once a timecode passes, its caption
// stays active until a later timecode is reached. The reverse scan makes
// the result independent of whether the sequence is time-sorted.
func ActiveCaption(anns []annotation.Annotation, positionSeconds float64) (string, bool) {
	for i := len(anns) - 1; i >= 0; i-- {
		if timecode.Parse(anns[i].Time) <= positionSeconds {
			return anns[i].Text, true
		}
	}
	return "", false
}

// MarkerPercent returns the marker position for an entry as a percentage of
// the total duration. When the duration is zero or unknown the position is
// undefined and ok is false; the caller omits the marker rather than
// rendering NaN.
func MarkerPercent(ann annotation.Annotation, durationSeconds float64) (float64, bool) {
	if durationSeconds <= 0 {
		return 0, false
	}
	return timecode.Parse(ann.Time) / durationSeconds * 100, true
}
