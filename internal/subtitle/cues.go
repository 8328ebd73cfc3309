package subtitle

import (
	"strings"

	"github.com/b08x/video-annotator/internal/annotation"
	"github.com/b08x/video-annotator/internal/timecode"
)

const (
	// minimum cue length forced onto degenerate intervals; some subtitle
	// renderers reject zero or negative-duration cues outright
	degenerateCuePadding = 0.5

	// display window for the last annotation, which has no "next" boundary
	lastCueWindow = 5.0
)

// CuesFromAnnotations infers [start,end) intervals for a timecode-annotation
// sequence. Each entry ends where the next one starts; a degenerate boundary
// is pushed out by half a second. The last entry gets a fixed 5-second
// window, clipped to the media length when totalDurationSeconds is known
// (> 0), so the final caption never outlives the video.
func CuesFromAnnotations(anns []annotation.Annotation, totalDurationSeconds float64) []Cue {
	cues := make([]Cue, 0, len(anns))

	for i, ann := range anns {
		start := timecode.Parse(ann.Time)

		var end float64
		if i < len(anns)-1 {
			end = timecode.Parse(anns[i+1].Time)
			if end <= start {
				end = start + degenerateCuePadding
			}
		} else if totalDurationSeconds > 0 && start < totalDurationSeconds {
			end = min(start+lastCueWindow, totalDurationSeconds)
		} else {
			end = start + lastCueWindow
		}

		cues = append(cues, Cue{
			Index: i + 1,
			Start: start,
			End:   end,
			Text:  cueText(ann.DisplayText()),
		})
	}

	return cues
}

// CuesFromSegments converts topic segments, which carry both boundaries
// already; only the degenerate-interval guard applies.
func CuesFromSegments(segments []annotation.TopicSegment) []Cue {
	cues := make([]Cue, 0, len(segments))

	for i, seg := range segments {
		start := timecode.Parse(seg.StartTime)
		end := timecode.Parse(seg.EndTime)
		if end <= start {
			end = start + degenerateCuePadding
		}

		cues = append(cues, Cue{
			Index: i + 1,
			Start: start,
			End:   end,
			Text:  cueText(seg.TopicDescription),
		})
	}

	return cues
}

// cue text is single-line by contract
func cueText(s string) string {
	return strings.ReplaceAll(s, "\n", " ")
}
