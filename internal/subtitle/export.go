package subtitle

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/b08x/video-annotator/internal/annotation"
)

var unsafeNameChars = regexp.MustCompile(`[^A-Za-z0-9_.-]`)

// ExportAnnotations renders a timecode-annotation sequence to subtitle file
// content, returning the derived filename alongside it. An empty sequence or
// a missing source filename is a user-facing error: no file is produced.
func ExportAnnotations(
	format Format,
	anns []annotation.Annotation,
	totalDurationSeconds float64,
	displayName string,
) (filename, content string, err error) {
	if displayName == "" {
		return "", "", fmt.Errorf("no video file name available to derive an export name from")
	}
	if len(anns) == 0 {
		return "", "", fmt.Errorf("no annotations available to export")
	}

	content, err = Render(format, CuesFromAnnotations(anns, totalDurationSeconds))
	if err != nil {
		return "", "", err
	}

	return exportBaseName(displayName) + "_annotations" + ExtensionForFormat(format), content, nil
}

// ExportSegments renders a topic-segment sequence the same way, with the
// segment filename suffix.
func ExportSegments(
	format Format,
	segments []annotation.TopicSegment,
	displayName string,
) (filename, content string, err error) {
	if displayName == "" {
		return "", "", fmt.Errorf("no video file name available to derive an export name from")
	}
	if len(segments) == 0 {
		return "", "", fmt.Errorf("no topic segments available to export")
	}

	content, err = Render(format, CuesFromSegments(segments))
	if err != nil {
		return "", "", err
	}

	return exportBaseName(displayName) + "_segments" + ExtensionForFormat(format), content, nil
}

// sanitize first, then cut at the first dot: "my clip.v2.mp4" -> "my_clip"
func exportBaseName(displayName string) string {
	safe := unsafeNameChars.ReplaceAllString(displayName, "_")
	if i := strings.Index(safe, "."); i >= 0 {
		safe = safe[:i]
	}
	return safe
}
