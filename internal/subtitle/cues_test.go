package subtitle

import (
	"testing"

	"github.com/b08x/video-annotator/internal/annotation"
)

func TestCuesFromAnnotationsNextEntryBoundary(t *testing.T) {
	anns := []annotation.Annotation{
		{Time: "0:00", Text: "a"},
		{Time: "0:03", Text: "b"},
	}

	cues := CuesFromAnnotations(anns, 0)
	if len(cues) != 2 {
		t.Fatalf("expected 2 cues, got %d", len(cues))
	}

	if cues[0].Start != 0 || cues[0].End != 3 {
		t.Errorf("cue 0: expected [0,3), got [%v,%v)", cues[0].Start, cues[0].End)
	}
	// last entry, duration unknown: fixed 5-second window
	if cues[1].Start != 3 || cues[1].End != 8 {
		t.Errorf("cue 1: expected [3,8), got [%v,%v)", cues[1].Start, cues[1].End)
	}
}

func TestCuesFromAnnotationsLastEntryClampedToDuration(t *testing.T) {
	anns := []annotation.Annotation{
		{Time: "0:10", Text: "a"},
		{Time: "0:55", Text: "b"},
	}

	cues := CuesFromAnnotations(anns, 57)
	if cues[1].End != 57 {
		t.Errorf("expected last cue clipped to 57, got %v", cues[1].End)
	}

	// start at or past the known duration: clamp does not apply
	late := []annotation.Annotation{{Time: "1:00", Text: "x"}}
	cues = CuesFromAnnotations(late, 60)
	if cues[0].End != 65 {
		t.Errorf("expected 65 for start at duration, got %v", cues[0].End)
	}
}

func TestCuesFromAnnotationsDegenerateBoundary(t *testing.T) {
	// next entry is earlier than this one; the half-second guard fires
	anns := []annotation.Annotation{
		{Time: "0:10", Text: "a"},
		{Time: "0:05", Text: "b"},
	}

	cues := CuesFromAnnotations(anns, 0)
	if cues[0].Start != 10 || cues[0].End != 10.5 {
		t.Errorf("expected [10,10.5), got [%v,%v)", cues[0].Start, cues[0].End)
	}
}

func TestCuesFromAnnotationsValuePrecedence(t *testing.T) {
	v := 7.0
	anns := []annotation.Annotation{
		{Time: "0:00", Text: "ignored", Value: &v},
	}

	cues := CuesFromAnnotations(anns, 0)
	if cues[0].Text != "7" {
		t.Errorf("expected numeric value to win, got %q", cues[0].Text)
	}
}

func TestCuesFromAnnotationsCollapsesNewlines(t *testing.T) {
	anns := []annotation.Annotation{
		{Time: "0:00", Text: "line one\nline two\nline three"},
	}

	cues := CuesFromAnnotations(anns, 0)
	if cues[0].Text != "line one line two line three" {
		t.Errorf("newlines not collapsed: %q", cues[0].Text)
	}
}

func TestCuesFromAnnotationsMalformedTime(t *testing.T) {
	// malformed time fails closed to 0; the run keeps going
	anns := []annotation.Annotation{
		{Time: "??", Text: "a"},
		{Time: "0:04", Text: "b"},
	}

	cues := CuesFromAnnotations(anns, 0)
	if cues[0].Start != 0 || cues[0].End != 4 {
		t.Errorf("expected [0,4), got [%v,%v)", cues[0].Start, cues[0].End)
	}
}

func TestCuesFromSegments(t *testing.T) {
	segments := []annotation.TopicSegment{
		{StartTime: "0:00", EndTime: "1:30", TopicDescription: "intro"},
		{StartTime: "1:30", EndTime: "3:00", TopicDescription: "demo"},
	}

	cues := CuesFromSegments(segments)
	if len(cues) != 2 {
		t.Fatalf("expected 2 cues, got %d", len(cues))
	}
	if cues[0].Start != 0 || cues[0].End != 90 {
		t.Errorf("cue 0: expected [0,90), got [%v,%v)", cues[0].Start, cues[0].End)
	}
	if cues[1].Index != 2 {
		t.Errorf("expected index 2, got %d", cues[1].Index)
	}
}

func TestCuesFromSegmentsDegenerateInterval(t *testing.T) {
	segments := []annotation.TopicSegment{
		{StartTime: "0:10", EndTime: "0:10", TopicDescription: "blink"},
	}

	cues := CuesFromSegments(segments)
	if cues[0].End != 10.5 {
		t.Errorf("expected the +0.5s guard to fire, got end %v", cues[0].End)
	}
}
