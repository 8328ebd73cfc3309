package annotation

import (
	"encoding/json"
	"testing"
)

func TestNormalizeCaptions(t *testing.T) {
	call := FunctionCall{
		Name: FuncSetTimecodes,
		Args: json.RawMessage(`{"timecodes":[
			{"time":"0:05","text":"a person don\\'t wave"},
			{"time":"0:12","text":"a dog barks"}
		]}`),
	}

	result, err := Normalize(call)
	if err != nil {
		t.Fatalf("Normalize returned error: %v", err)
	}
	if result.Kind != KindCaptions {
		t.Errorf("expected KindCaptions, got %s", result.Kind)
	}
	if len(result.Annotations) != 2 {
		t.Fatalf("expected 2 annotations, got %d", len(result.Annotations))
	}
	if result.Annotations[0].Text != "a person don't wave" {
		t.Errorf("apostrophe not un-escaped: %q", result.Annotations[0].Text)
	}
	if result.Annotations[1].Time != "0:12" {
		t.Errorf("expected time 0:12, got %q", result.Annotations[1].Time)
	}
}

func TestNormalizeCaptionsWithObjects(t *testing.T) {
	call := FunctionCall{
		Name: FuncSetTimecodesWithObjects,
		Args: json.RawMessage(`{"timecodes":[
			{"time":"1:00","text":"kitchen scene","objects":["🍳 pan","🔪 knife"]}
		]}`),
	}

	result, err := Normalize(call)
	if err != nil {
		t.Fatalf("Normalize returned error: %v", err)
	}
	if result.Kind != KindCaptionsWithObjects {
		t.Errorf("expected KindCaptionsWithObjects, got %s", result.Kind)
	}
	if len(result.Annotations) != 1 {
		t.Fatalf("expected 1 annotation, got %d", len(result.Annotations))
	}
	if len(result.Annotations[0].Objects) != 2 {
		t.Errorf("expected 2 objects, got %v", result.Annotations[0].Objects)
	}
}

func TestNormalizeNumericSeries(t *testing.T) {
	call := FunctionCall{
		Name: FuncSetTimecodesWithNumericValues,
		Args: json.RawMessage(`{"timecodes":[
			{"time":"0:10","value":7},
			{"time":"0:20","value":3.5}
		]}`),
	}

	result, err := Normalize(call)
	if err != nil {
		t.Fatalf("Normalize returned error: %v", err)
	}
	if result.Kind != KindNumericSeries {
		t.Errorf("expected KindNumericSeries, got %s", result.Kind)
	}
	if len(result.Annotations) != 2 {
		t.Fatalf("expected 2 annotations, got %d", len(result.Annotations))
	}
	if result.Annotations[0].Value == nil || *result.Annotations[0].Value != 7 {
		t.Errorf("expected value 7, got %v", result.Annotations[0].Value)
	}
	if result.Annotations[0].DisplayText() != "7" {
		t.Errorf("expected display text 7, got %q", result.Annotations[0].DisplayText())
	}
	if result.Annotations[1].DisplayText() != "3.5" {
		t.Errorf("expected display text 3.5, got %q", result.Annotations[1].DisplayText())
	}
}

func TestNormalizeRegisterResult(t *testing.T) {
	call := FunctionCall{
		Name: FuncSetRegisterAnalysisResult,
		Args: json.RawMessage(`{"analysisResult":{"topic":"deploys","keywords":["ssh","systemd"],"confidence":85}}`),
	}

	result, err := Normalize(call)
	if err != nil {
		t.Fatalf("Normalize returned error: %v", err)
	}
	if result.Kind != KindStructured {
		t.Errorf("expected KindStructured, got %s", result.Kind)
	}

	// stays opaque: whatever the model sent comes back out untouched
	var decoded map[string]any
	if err := json.Unmarshal(result.Structured, &decoded); err != nil {
		t.Fatalf("structured payload not valid JSON: %v", err)
	}
	if decoded["topic"] != "deploys" {
		t.Errorf("expected topic deploys, got %v", decoded["topic"])
	}
}

func TestNormalizeRegisterResultMissingPayload(t *testing.T) {
	call := FunctionCall{
		Name: FuncSetRegisterAnalysisResult,
		Args: json.RawMessage(`{}`),
	}
	if _, err := Normalize(call); err == nil {
		t.Error("expected error for missing analysisResult")
	}
}

func TestNormalizeTopicSegments(t *testing.T) {
	call := FunctionCall{
		Name: FuncSetTopicSegments,
		Args: json.RawMessage(`{"segments":[
			{"startTime":"0:00","endTime":"1:30","topicDescription":"intro that don\\'t drag"},
			{"startTime":"1:30","endTime":"3:00","topicDescription":"main demo"}
		]}`),
	}

	result, err := Normalize(call)
	if err != nil {
		t.Fatalf("Normalize returned error: %v", err)
	}
	if result.Kind != KindTopicSegments {
		t.Errorf("expected KindTopicSegments, got %s", result.Kind)
	}
	if len(result.Segments) != 2 {
		t.Fatalf("expected 2 segments, got %d", len(result.Segments))
	}
	if result.Segments[0].TopicDescription != "intro that don't drag" {
		t.Errorf("apostrophe not un-escaped: %q", result.Segments[0].TopicDescription)
	}
}

func TestNormalizeUnknownFunction(t *testing.T) {
	call := FunctionCall{
		Name: "set_unheard_of_thing",
		Args: json.RawMessage(`{"whatever":true}`),
	}

	result, err := Normalize(call)
	if err != nil {
		t.Fatalf("unknown function should not error: %v", err)
	}
	if result.Kind != KindUnrecognized {
		t.Errorf("expected KindUnrecognized, got %s", result.Kind)
	}
}

func TestNormalizeSkipsMalformedEntries(t *testing.T) {
	// second entry has a numeric time; it is dropped, the rest survive
	call := FunctionCall{
		Name: FuncSetTimecodes,
		Args: json.RawMessage(`{"timecodes":[
			{"time":"0:05","text":"good"},
			{"time":42,"text":"bad"},
			{"time":"0:15","text":"also good"}
		]}`),
	}

	result, err := Normalize(call)
	if err != nil {
		t.Fatalf("Normalize returned error: %v", err)
	}
	if len(result.Annotations) != 2 {
		t.Fatalf("expected 2 surviving annotations, got %d", len(result.Annotations))
	}
	if result.Skipped != 1 {
		t.Errorf("expected 1 skipped entry, got %d", result.Skipped)
	}
	if result.Annotations[1].Text != "also good" {
		t.Errorf("unexpected surviving entry: %q", result.Annotations[1].Text)
	}
}

func TestNormalizeMalformedArgs(t *testing.T) {
	call := FunctionCall{
		Name: FuncSetTimecodes,
		Args: json.RawMessage(`not json at all`),
	}
	if _, err := Normalize(call); err == nil {
		t.Error("expected error for undecodable args")
	}
}
