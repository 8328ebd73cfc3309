// Package translate rewrites annotation captions and topic descriptions in
// another language before display or export. Timecodes are never touched.
package translate

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"github.com/b08x/video-annotator/internal/annotation"
)

// single caption to translate
type Item struct {
	Index int    `json:"index"`
	Text  string `json:"text"`
}

// translated caption
type Result struct {
	Index int    `json:"index"`
	Text  string `json:"text"`
}

// interface for caption translation
type Translator interface {
	Translate(ctx context.Context, items []Item) ([]Result, error)
}

// translation service provider
type Provider string

const (
	ProviderGemini    Provider = "gemini"
	ProviderOpenAI    Provider = "openai"
	ProviderAnthropic Provider = "anthropic"
)

const DefaultBatchSize = 50

type Options struct {
	TargetLanguage string
	Model          string
	BatchSize      int // items per API request (default 50)
}

// creates Translator based on provider
func Factory(
	ctx context.Context,
	provider Provider,
	apiKey string,
	opts Options,
) (Translator, error) {
	if opts.TargetLanguage == "" {
		return nil, fmt.Errorf("target language is required")
	}

	switch provider {
	case ProviderGemini:
		return NewGeminiTranslator(ctx, apiKey, opts)
	case ProviderOpenAI:
		return NewOpenAITranslator(ctx, apiKey, opts)
	case ProviderAnthropic:
		return NewAnthropicTranslator(ctx, apiKey, opts)
	default:
		return nil, fmt.Errorf("unsupported translation provider: %s", provider)
	}
}

// Annotations translates the caption text of a sequence, returning a new
// sequence; entries without text (numeric series) pass through unchanged.
func Annotations(
	ctx context.Context,
	t Translator,
	anns []annotation.Annotation,
) ([]annotation.Annotation, error) {
	items := make([]Item, 0, len(anns))
	for i, ann := range anns {
		if ann.Text == "" {
			continue
		}
		items = append(items, Item{Index: i, Text: ann.Text})
	}

	results, err := t.Translate(ctx, items)
	if err != nil {
		return nil, err
	}

	out := append([]annotation.Annotation(nil), anns...)
	for _, r := range results {
		if r.Index < 0 || r.Index >= len(out) {
			return nil, fmt.Errorf("translation result index %d out of range", r.Index)
		}
		out[r.Index].Text = r.Text
	}
	return out, nil
}

// Segments translates topic descriptions, preserving the time boundaries.
func Segments(
	ctx context.Context,
	t Translator,
	segments []annotation.TopicSegment,
) ([]annotation.TopicSegment, error) {
	items := make([]Item, 0, len(segments))
	for i, seg := range segments {
		items = append(items, Item{Index: i, Text: seg.TopicDescription})
	}

	results, err := t.Translate(ctx, items)
	if err != nil {
		return nil, err
	}

	out := append([]annotation.TopicSegment(nil), segments...)
	for _, r := range results {
		if r.Index < 0 || r.Index >= len(out) {
			return nil, fmt.Errorf("translation result index %d out of range", r.Index)
		}
		out[r.Index].TopicDescription = r.Text
	}
	return out, nil
}

// BuildPrompt creates the translation prompt for LLM providers
func BuildPrompt(opts Options, items []Item) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf(
		"Translate the following video annotation captions to %s.\n\n",
		opts.TargetLanguage,
	))

	sb.WriteString("IMPORTANT INSTRUCTIONS:\n")
	sb.WriteString("1. Translate ONLY the text content, preserving the meaning.\n")
	sb.WriteString("2. Keep quoted speech in quotation marks, translated.\n")
	sb.WriteString("3. Return ONLY a JSON array with the same structure.\n")
	sb.WriteString("4. Each object must have 'index' and 'text' fields.\n")
	sb.WriteString("5. The 'index' values must match the input indices exactly.\n")
	sb.WriteString("6. Do not add any explanation or markdown formatting.\n\n")

	sb.WriteString("Input JSON:\n")
	inputJSON, _ := json.MarshalIndent(items, "", "  ")
	sb.Write(inputJSON)

	sb.WriteString("\n\nOutput the translated JSON array only:")

	return sb.String()
}

// removes markdown formatting from a model response
func cleanJSONResponse(s string) string {
	s = strings.TrimSpace(s)

	jsonBlockRegex := regexp.MustCompile("```(?:json)?\\s*")
	s = jsonBlockRegex.ReplaceAllString(s, "")
	s = strings.ReplaceAll(s, "```", "")

	return strings.TrimSpace(s)
}

func truncateString(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}

// extractResults pulls the first decodable result array out of a model
// response that may carry prose or wrapper objects around it.
func extractResults(text string) ([]Result, error) {
	for i := 0; i < len(text); i++ {
		if text[i] != '[' && text[i] != '{' {
			continue
		}
		decoder := json.NewDecoder(strings.NewReader(text[i:]))
		var raw json.RawMessage
		if err := decoder.Decode(&raw); err != nil {
			continue
		}
		if results, ok := tryExtractResults(raw); ok && len(results) > 0 {
			return results, nil
		}
	}
	return nil, fmt.Errorf("no valid translation JSON found in response")
}

func tryExtractResults(raw json.RawMessage) ([]Result, bool) {
	var results []Result
	if err := json.Unmarshal(raw, &results); err == nil && validateResults(results) {
		return results, true
	}

	var wrapper map[string]json.RawMessage
	if err := json.Unmarshal(raw, &wrapper); err != nil {
		return nil, false
	}

	for _, key := range []string{"results", "translations", "data", "items"} {
		if fieldRaw, exists := wrapper[key]; exists {
			var fieldResults []Result
			if err := json.Unmarshal(fieldRaw, &fieldResults); err == nil &&
				validateResults(fieldResults) {
				return fieldResults, true
			}
		}
	}

	return nil, false
}

func validateResults(results []Result) bool {
	for _, r := range results {
		if r.Text == "" {
			return false
		}
	}
	return len(results) > 0
}

func parseTranslationText(responseText string, expectedCount int) ([]Result, error) {
	responseText = cleanJSONResponse(responseText)

	results, err := extractResults(responseText)
	if err != nil {
		return nil, fmt.Errorf(
			"failed to parse JSON response: %w (response: %s)",
			err,
			truncateString(responseText, 200),
		)
	}

	if len(results) != expectedCount {
		return nil, fmt.Errorf("expected %d results, got %d", expectedCount, len(results))
	}

	return results, nil
}
