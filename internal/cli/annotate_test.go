package cli

import (
	"strings"
	"testing"

	"github.com/b08x/video-annotator/internal/modes"
)

func TestResolvePrompt(t *testing.T) {
	captions, _ := modes.Lookup("A/V captions")
	chart, _ := modes.Lookup("Chart")
	custom, _ := modes.Lookup("Custom")

	tests := []struct {
		name     string
		modeName string
		mode     modes.Mode
		input    string
		chartBy  string
		contains string
		wantErr  bool
	}{
		{
			name:     "static mode ignores input",
			modeName: "A/V captions",
			mode:     captions,
			input:    "ignored",
			contains: "caption",
		},
		{
			name:     "chart with sub-mode",
			modeName: "Chart",
			mode:     chart,
			chartBy:  "Excitement",
			contains: "excitement",
		},
		{
			name:     "chart with unknown sub-mode",
			modeName: "Chart",
			mode:     chart,
			chartBy:  "Sadness",
			wantErr:  true,
		},
		{
			name:     "chart with free text",
			modeName: "Chart",
			mode:     chart,
			input:    "the number of dogs visible",
			contains: "the number of dogs visible",
		},
		{
			name:     "custom requires input",
			modeName: "Custom",
			mode:     custom,
			wantErr:  true,
		},
		{
			name:     "custom with input",
			modeName: "Custom",
			mode:     custom,
			input:    "List every scene change",
			contains: "List every scene change",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			prompt, err := resolvePrompt(tt.modeName, tt.mode, tt.input, tt.chartBy)
			if tt.wantErr {
				if err == nil {
					t.Fatal("resolvePrompt() expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("resolvePrompt() error = %v", err)
			}
			if !strings.Contains(strings.ToLower(prompt), strings.ToLower(tt.contains)) {
				t.Errorf("prompt missing %q:\n%s", tt.contains, prompt)
			}
		})
	}
}
