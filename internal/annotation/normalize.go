package annotation

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Function names the model-invocation collaborator may return.
const (
	FuncSetTimecodes                  = "set_timecodes"
	FuncSetTimecodesWithObjects       = "set_timecodes_with_objects"
	FuncSetTimecodesWithNumericValues = "set_timecodes_with_numeric_values"
	FuncSetRegisterAnalysisResult     = "set_register_analysis_result"
	FuncSetTopicSegments              = "set_topic_segments"
)

// Normalize converts a single function call into a Result. An unknown
// function name yields KindUnrecognized (the caller logs it and moves on).
// Entries that fail to decode are skipped individually: one bad entry must
// not take out the rest of the batch.
func Normalize(call FunctionCall) (Result, error) {
	switch call.Name {
	case FuncSetTimecodes:
		return decodeTimecodes(call.Args, KindCaptions, true)
	case FuncSetTimecodesWithObjects:
		return decodeTimecodes(call.Args, KindCaptionsWithObjects, true)
	case FuncSetTimecodesWithNumericValues:
		// no free text field, nothing to un-escape
		return decodeTimecodes(call.Args, KindNumericSeries, false)
	case FuncSetRegisterAnalysisResult:
		return decodeRegisterResult(call.Args)
	case FuncSetTopicSegments:
		return decodeTopicSegments(call.Args)
	default:
		return Result{Kind: KindUnrecognized}, nil
	}
}

func decodeTimecodes(args json.RawMessage, kind Kind, unescape bool) (Result, error) {
	var payload struct {
		Timecodes []json.RawMessage `json:"timecodes"`
	}
	if err := json.Unmarshal(args, &payload); err != nil {
		return Result{Kind: kind}, fmt.Errorf("failed to decode timecodes payload: %w", err)
	}

	result := Result{
		Kind:        kind,
		Annotations: make([]Annotation, 0, len(payload.Timecodes)),
	}

	for _, raw := range payload.Timecodes {
		var ann Annotation
		if err := json.Unmarshal(raw, &ann); err != nil {
			result.Skipped++
			continue
		}
		if unescape {
			ann.Text = unescapeQuotes(ann.Text)
		}
		result.Annotations = append(result.Annotations, ann)
	}

	return result, nil
}

func decodeRegisterResult(args json.RawMessage) (Result, error) {
	var payload struct {
		AnalysisResult json.RawMessage `json:"analysisResult"`
	}
	if err := json.Unmarshal(args, &payload); err != nil {
		return Result{Kind: KindStructured}, fmt.Errorf("failed to decode register payload: %w", err)
	}
	if len(payload.AnalysisResult) == 0 {
		return Result{Kind: KindStructured}, fmt.Errorf("register payload missing analysisResult")
	}

	// opaque by contract: no timing semantics, no further interpretation
	return Result{Kind: KindStructured, Structured: payload.AnalysisResult}, nil
}

func decodeTopicSegments(args json.RawMessage) (Result, error) {
	var payload struct {
		Segments []json.RawMessage `json:"segments"`
	}
	if err := json.Unmarshal(args, &payload); err != nil {
		return Result{Kind: KindTopicSegments}, fmt.Errorf("failed to decode segments payload: %w", err)
	}

	result := Result{
		Kind:     KindTopicSegments,
		Segments: make([]TopicSegment, 0, len(payload.Segments)),
	}

	for _, raw := range payload.Segments {
		var seg TopicSegment
		if err := json.Unmarshal(raw, &seg); err != nil {
			result.Skipped++
			continue
		}
		seg.TopicDescription = unescapeQuotes(seg.TopicDescription)
		result.Segments = append(result.Segments, seg)
	}

	return result, nil
}

// The model sometimes over-escapes apostrophes in free text (don\'t).
// Required normalization, not cleanup.
func unescapeQuotes(s string) string {
	return strings.ReplaceAll(s, `\'`, `'`)
}
