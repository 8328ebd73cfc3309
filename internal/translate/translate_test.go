package translate

import (
	"context"
	"strings"
	"testing"

	"github.com/b08x/video-annotator/internal/annotation"
)

func TestFactory(t *testing.T) {
	ctx := context.Background()
	opts := Options{TargetLanguage: "Spanish"}

	tests := []struct {
		name     string
		provider Provider
		wantType string
	}{
		{"gemini provider", ProviderGemini, "*translate.GeminiTranslator"},
		{"openai provider", ProviderOpenAI, "*translate.OpenAITranslator"},
		{"anthropic provider", ProviderAnthropic, "*translate.AnthropicTranslator"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			translator, err := Factory(ctx, tt.provider, "test-key", opts)
			if err != nil {
				t.Fatalf("Factory() error = %v", err)
			}

			switch tt.provider {
			case ProviderGemini:
				if _, ok := translator.(*GeminiTranslator); !ok {
					t.Errorf("Factory() returned %T, want %s", translator, tt.wantType)
				}
			case ProviderOpenAI:
				if _, ok := translator.(*OpenAITranslator); !ok {
					t.Errorf("Factory() returned %T, want %s", translator, tt.wantType)
				}
			case ProviderAnthropic:
				if _, ok := translator.(*AnthropicTranslator); !ok {
					t.Errorf("Factory() returned %T, want %s", translator, tt.wantType)
				}
			}
		})
	}
}

func TestFactoryUnsupportedProvider(t *testing.T) {
	_, err := Factory(context.Background(), Provider("deepl"), "key", Options{
		TargetLanguage: "French",
	})
	if err == nil {
		t.Fatal("Factory() expected error for unsupported provider")
	}
}

func TestFactoryMissingTargetLanguage(t *testing.T) {
	_, err := Factory(context.Background(), ProviderGemini, "key", Options{})
	if err == nil {
		t.Fatal("Factory() expected error when target language is empty")
	}
}

func TestFactoryMissingAPIKey(t *testing.T) {
	_, err := Factory(context.Background(), ProviderGemini, "", Options{
		TargetLanguage: "German",
	})
	if err == nil {
		t.Fatal("Factory() expected error when API key is empty")
	}
}

func TestBuildPrompt(t *testing.T) {
	items := []Item{
		{Index: 0, Text: "A dog runs across the field."},
		{Index: 2, Text: "The crowd cheers loudly."},
	}
	prompt := BuildPrompt(Options{TargetLanguage: "Japanese"}, items)

	if !strings.Contains(prompt, "Japanese") {
		t.Error("prompt missing target language")
	}
	if !strings.Contains(prompt, "A dog runs across the field.") {
		t.Error("prompt missing item text")
	}
	if !strings.Contains(prompt, "\"index\": 2") {
		t.Error("prompt missing item index")
	}
	if !strings.Contains(prompt, "JSON array") {
		t.Error("prompt missing output format instructions")
	}
}

func TestCleanJSONResponse(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "markdown json block",
			input: "```json\n[{\"index\":0,\"text\":\"hola\"}]\n```",
			want:  "[{\"index\":0,\"text\":\"hola\"}]",
		},
		{
			name:  "plain markdown block",
			input: "```\n[{\"index\":0,\"text\":\"hola\"}]\n```",
			want:  "[{\"index\":0,\"text\":\"hola\"}]",
		},
		{
			name:  "no markdown",
			input: "  [{\"index\":0,\"text\":\"hola\"}]  ",
			want:  "[{\"index\":0,\"text\":\"hola\"}]",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := cleanJSONResponse(tt.input); got != tt.want {
				t.Errorf("cleanJSONResponse() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestParseTranslationText(t *testing.T) {
	tests := []struct {
		name     string
		response string
		expected int
		want     []Result
		wantErr  bool
	}{
		{
			name:     "bare array",
			response: `[{"index":0,"text":"hola"},{"index":1,"text":"adios"}]`,
			expected: 2,
			want: []Result{
				{Index: 0, Text: "hola"},
				{Index: 1, Text: "adios"},
			},
		},
		{
			name:     "array with surrounding prose",
			response: "Here is your translation:\n[{\"index\":0,\"text\":\"hola\"}]\nDone.",
			expected: 1,
			want:     []Result{{Index: 0, Text: "hola"}},
		},
		{
			name:     "wrapped in results object",
			response: `{"results":[{"index":0,"text":"hola"}]}`,
			expected: 1,
			want:     []Result{{Index: 0, Text: "hola"}},
		},
		{
			name:     "wrapped in translations object",
			response: `{"translations":[{"index":0,"text":"hola"}]}`,
			expected: 1,
			want:     []Result{{Index: 0, Text: "hola"}},
		},
		{
			name:     "markdown fenced",
			response: "```json\n[{\"index\":0,\"text\":\"hola\"}]\n```",
			expected: 1,
			want:     []Result{{Index: 0, Text: "hola"}},
		},
		{
			name:     "count mismatch",
			response: `[{"index":0,"text":"hola"}]`,
			expected: 2,
			wantErr:  true,
		},
		{
			name:     "no json at all",
			response: "I cannot translate that.",
			expected: 1,
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseTranslationText(tt.response, tt.expected)
			if tt.wantErr {
				if err == nil {
					t.Fatal("parseTranslationText() expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("parseTranslationText() error = %v", err)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("got %d results, want %d", len(got), len(tt.want))
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("result[%d] = %+v, want %+v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

// echoes items back uppercased, recording what it saw
type fakeTranslator struct {
	seen []Item
}

func (f *fakeTranslator) Translate(ctx context.Context, items []Item) ([]Result, error) {
	f.seen = items
	results := make([]Result, len(items))
	for i, item := range items {
		results[i] = Result{Index: item.Index, Text: strings.ToUpper(item.Text)}
	}
	return results, nil
}

func TestAnnotations(t *testing.T) {
	value := 3.0
	anns := []annotation.Annotation{
		{Time: "0:00", Text: "a dog appears"},
		{Time: "0:05", Value: &value},
		{Time: "0:10", Text: "the dog barks"},
	}

	fake := &fakeTranslator{}
	out, err := Annotations(context.Background(), fake, anns)
	if err != nil {
		t.Fatalf("Annotations() error = %v", err)
	}

	if len(fake.seen) != 2 {
		t.Fatalf("translator saw %d items, want 2 (numeric entry skipped)", len(fake.seen))
	}
	if out[0].Text != "A DOG APPEARS" {
		t.Errorf("out[0].Text = %q", out[0].Text)
	}
	if out[1].Value == nil || *out[1].Value != 3.0 {
		t.Error("numeric entry should pass through unchanged")
	}
	if out[2].Text != "THE DOG BARKS" {
		t.Errorf("out[2].Text = %q", out[2].Text)
	}
	if out[0].Time != "0:00" || out[2].Time != "0:10" {
		t.Error("timecodes must not change")
	}
	if anns[0].Text != "a dog appears" {
		t.Error("input sequence must not be mutated")
	}
}

func TestSegments(t *testing.T) {
	segments := []annotation.TopicSegment{
		{StartTime: "0:00", EndTime: "0:30", TopicDescription: "intro"},
		{StartTime: "0:30", EndTime: "1:00", TopicDescription: "main topic"},
	}

	fake := &fakeTranslator{}
	out, err := Segments(context.Background(), fake, segments)
	if err != nil {
		t.Fatalf("Segments() error = %v", err)
	}

	if out[0].TopicDescription != "INTRO" || out[1].TopicDescription != "MAIN TOPIC" {
		t.Errorf("descriptions = %q, %q", out[0].TopicDescription, out[1].TopicDescription)
	}
	if out[0].StartTime != "0:00" || out[1].EndTime != "1:00" {
		t.Error("segment boundaries must not change")
	}
}

func TestAnnotationsIndexOutOfRange(t *testing.T) {
	bad := translatorFunc(func(ctx context.Context, items []Item) ([]Result, error) {
		return []Result{{Index: 99, Text: "oops"}}, nil
	})

	_, err := Annotations(context.Background(), bad, []annotation.Annotation{
		{Time: "0:00", Text: "hello"},
	})
	if err == nil {
		t.Fatal("expected error for out-of-range result index")
	}
}

type translatorFunc func(ctx context.Context, items []Item) ([]Result, error)

func (f translatorFunc) Translate(ctx context.Context, items []Item) ([]Result, error) {
	return f(ctx, items)
}
