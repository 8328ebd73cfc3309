// Package subtitle turns a finalized annotation or topic-segment sequence
// into subtitle cues with inferred intervals and serializes them to
// standard subtitle text formats.
package subtitle

// represents single subtitle cue: positional index, time interval, text
type Cue struct {
	Index int
	Start float64
	End   float64
	Text  string
}

// represents supported output formats
type Format string

const (
	FormatVTT Format = "vtt"
	FormatSRT Format = "srt"
)

// file extension for a format
func ExtensionForFormat(format Format) string {
	switch format {
	case FormatSRT:
		return ".srt"
	default:
		return ".vtt"
	}
}
