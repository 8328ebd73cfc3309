package analyze

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/b08x/video-annotator/internal/annotation"
	"github.com/b08x/video-annotator/internal/video"
	"google.golang.org/genai"
)

const systemInstruction = "You are an AI assistant that analyzes video content. " +
	"You MUST use the provided function calling tools to respond. Do NOT output " +
	"any text, explanations, or markdown code blocks. Your entire response must " +
	"be through function calls. If the user query can be addressed by a " +
	"function, call it. Adhere strictly to the function's parameter schema."

const (
	maxUploadPolls         = 10
	initialUploadPollDelay = time.Second
)

// implements Analyzer using Google Gemini function calling
type GeminiAnalyzer struct {
	client  *genai.Client
	model   string
	options Options
}

func NewGeminiAnalyzer(ctx context.Context, apiKey string, opts Options) (*GeminiAnalyzer, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("API key is required")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey: apiKey,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	model := opts.Model
	if model == "" {
		model = "gemini-2.5-flash"
	}

	return &GeminiAnalyzer{
		client:  client,
		model:   model,
		options: opts,
	}, nil
}

// Upload sends the video to the Files API and polls with exponential
// backoff until processing completes; the file must be ACTIVE before it can
// be referenced from a prompt.
func (a *GeminiAnalyzer) Upload(ctx context.Context, path string) (*File, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("video file not found: %s", path)
	}

	uploaded, err := a.client.Files.UploadFromPath(ctx, path, &genai.UploadFileConfig{
		DisplayName: filepath.Base(path),
		MIMEType:    video.MIMEType(path),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to upload video file: %w", err)
	}

	file := uploaded
	delay := initialUploadPollDelay
	for polls := 0; file.State == genai.FileStateProcessing && polls < maxUploadPolls; polls++ {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(delay):
		}

		file, err = a.client.Files.Get(ctx, uploaded.Name, nil)
		if err != nil {
			return nil, fmt.Errorf("failed to check upload state: %w", err)
		}
		delay *= 2
	}

	switch file.State {
	case genai.FileStateActive:
	case genai.FileStateFailed:
		return nil, fmt.Errorf("file processing failed: %s", file.Name)
	default:
		return nil, fmt.Errorf("file did not become active (state %s): %s", file.State, file.Name)
	}

	displayName := file.DisplayName
	if displayName == "" {
		displayName = filepath.Base(path)
	}

	return &File{
		Name:        file.Name,
		DisplayName: displayName,
		URI:         file.URI,
		MIMEType:    file.MIMEType,
	}, nil
}

// Analyze runs one annotation prompt against an uploaded video and collects
// the returned function calls, each exactly once.
func (a *GeminiAnalyzer) Analyze(ctx context.Context, file *File, prompt string) (*Response, error) {
	if file == nil || file.URI == "" {
		return nil, fmt.Errorf("no uploaded file to analyze")
	}

	parts := []*genai.Part{
		genai.NewPartFromText(prompt),
		genai.NewPartFromURI(file.URI, file.MIMEType),
	}
	contents := []*genai.Content{
		genai.NewContentFromParts(parts, genai.RoleUser),
	}
	config := &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(systemInstruction, genai.RoleUser),
		Temperature:       genai.Ptr[float32](0.5),
		Tools: []*genai.Tool{
			{FunctionDeclarations: functionDeclarations()},
		},
	}

	result, err := a.client.Models.GenerateContent(ctx, a.model, contents, config)
	if err != nil {
		return nil, fmt.Errorf("analysis request failed: %w", err)
	}

	return responseFromGenerate(result)
}

// Delete removes the uploaded file from the provider once analysis is done.
func (a *GeminiAnalyzer) Delete(ctx context.Context, file *File) error {
	if file == nil || file.Name == "" {
		return nil
	}
	_, err := a.client.Files.Delete(ctx, file.Name, nil)
	return err
}

func responseFromGenerate(result *genai.GenerateContentResponse) (*Response, error) {
	if result == nil || len(result.Candidates) == 0 {
		return nil, fmt.Errorf("empty response from Gemini")
	}

	resp := &Response{}
	for _, candidate := range result.Candidates {
		if candidate.Content == nil {
			continue
		}
		for _, part := range candidate.Content.Parts {
			if part.Text != "" {
				resp.Text += part.Text
			}
			if part.FunctionCall == nil {
				continue
			}

			args, err := json.Marshal(part.FunctionCall.Args)
			if err != nil {
				return nil, fmt.Errorf("failed to encode args of %s: %w", part.FunctionCall.Name, err)
			}
			resp.Calls = append(resp.Calls, annotation.FunctionCall{
				Name: part.FunctionCall.Name,
				Args: args,
			})
		}
	}

	return resp, nil
}
