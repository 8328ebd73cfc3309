package subtitle

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/b08x/video-annotator/internal/timecode"
)

// RenderVTT serializes cues as WebVTT text: the literal header, then one
// block per cue in original sequence order.
func RenderVTT(cues []Cue) string {
	var sb strings.Builder

	// VTT header
	sb.WriteString("WEBVTT\n\n")

	for _, cue := range cues {
		// cue identifier (1-based, positional)
		sb.WriteString(fmt.Sprintf("%d\n", cue.Index))

		// timestamps: 00:00:00.000 --> 00:00:00.000
		sb.WriteString(fmt.Sprintf("%s --> %s\n",
			timecode.Format(cue.Start),
			timecode.Format(cue.End)))

		sb.WriteString(cue.Text)
		sb.WriteString("\n\n")
	}

	return sb.String()
}

// RenderSRT serializes cues as SubRip text, for players that do not take
// WebVTT. Same layout, no header, comma millisecond separator.
func RenderSRT(cues []Cue) string {
	var sb strings.Builder

	for _, cue := range cues {
		sb.WriteString(fmt.Sprintf("%d\n", cue.Index))

		// timestamps: 00:00:00,000 --> 00:00:00,000
		sb.WriteString(fmt.Sprintf("%s --> %s\n",
			formatSRTTime(cue.Start),
			formatSRTTime(cue.End)))

		sb.WriteString(cue.Text)
		sb.WriteString("\n\n")
	}

	return sb.String()
}

// Render serializes cues in the requested format.
func Render(format Format, cues []Cue) (string, error) {
	switch format {
	case FormatVTT:
		return RenderVTT(cues), nil
	case FormatSRT:
		return RenderSRT(cues), nil
	default:
		return "", fmt.Errorf("unsupported format: %s", format)
	}
}

func formatSRTTime(seconds float64) string {
	return strings.Replace(timecode.Format(seconds), ".", ",", 1)
}

// WriteFile writes rendered subtitle content to disk, creating parent
// directories as needed.
func WriteFile(path, content string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	return os.WriteFile(path, []byte(content), 0644)
}
