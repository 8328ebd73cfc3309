// Package annotation defines the canonical in-memory representation of
// model-produced video annotations and the normalizer that converts the
// external function-call payloads into it.
package annotation

import (
	"encoding/json"
	"strconv"
)

// single timecoded entry of an analysis result
type Annotation struct {
	Time    string   `json:"time"`
	Text    string   `json:"text,omitempty"`
	Objects []string `json:"objects,omitempty"`
	Value   *float64 `json:"value,omitempty"`
}

// DisplayText returns the text shown for this entry. A numeric value takes
// precedence over the caption text, rendered in its shortest decimal form.
func (a Annotation) DisplayText() string {
	if a.Value != nil {
		return strconv.FormatFloat(*a.Value, 'f', -1, 64)
	}
	return a.Text
}

// labeled time range summarizing a thematic portion of the video
type TopicSegment struct {
	StartTime        string `json:"startTime"`
	EndTime          string `json:"endTime"`
	TopicDescription string `json:"topicDescription"`
}

// Kind discriminates the normalized result variants, one per external
// payload shape.
type Kind string

const (
	KindCaptions            Kind = "captions"
	KindCaptionsWithObjects Kind = "captions_with_objects"
	KindNumericSeries       Kind = "numeric_series"
	KindStructured          Kind = "structured"
	KindTopicSegments       Kind = "topic_segments"
	KindUnrecognized        Kind = "unrecognized"
)

// Result is the tagged union produced by Normalize. Exactly one of
// Annotations, Segments, or Structured is populated, selected by Kind.
type Result struct {
	Kind        Kind
	Annotations []Annotation
	Segments    []TopicSegment
	Structured  json.RawMessage

	// Skipped counts entries dropped because they could not be decoded.
	Skipped int
}

// one "function call" returned by the model-invocation collaborator
type FunctionCall struct {
	Name string
	Args json.RawMessage
}
