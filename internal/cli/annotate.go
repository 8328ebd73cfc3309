package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/b08x/video-annotator/internal/analyze"
	"github.com/b08x/video-annotator/internal/annotation"
	"github.com/b08x/video-annotator/internal/modes"
	"github.com/b08x/video-annotator/internal/session"
	"github.com/b08x/video-annotator/internal/subtitle"
	"github.com/b08x/video-annotator/internal/translate"
	"github.com/b08x/video-annotator/internal/video"
)

var annotateCmd = &cobra.Command{
	Use:   "annotate [video_file]",
	Short: "Analyze a video and produce timecoded annotations",
	Long: `Analyze the specified video file with a multimodal model using one of
the built-in analysis modes.

The video is uploaded, analyzed with the mode's prompt, and the model's
structured reply is normalized into timecoded annotations. Use --export
to write the result as a subtitle file.

Examples:
  annotator annotate video.mp4
  annotator annotate video.mp4 --mode "Key moments"
  annotator annotate video.mp4 --mode Chart --chart-by Excitement
  annotator annotate video.mp4 --mode Custom --input "List every scene change"
  annotator annotate video.mp4 --export --format srt
  annotator annotate video.mp4 --export --translate-to Spanish`,
	Args: cobra.ExactArgs(1),
	RunE: runAnnotate,
}

func init() {
	rootCmd.AddCommand(annotateCmd)

	annotateCmd.Flags().
		StringP("mode", "m", modes.Default(), "Analysis mode (see 'annotator modes')")
	annotateCmd.Flags().
		StringP("input", "i", "", "Custom prompt text for modes that require it")
	annotateCmd.Flags().
		String("chart-by", "", "Chart sub-mode (Excitement, Importance, Number of people)")
	annotateCmd.Flags().
		StringP("api-key", "k", "", "Gemini API key (or set GEMINI_API_KEY env var)")
	annotateCmd.Flags().
		String("model", "gemini-2.5-flash", "Gemini model to use for analysis")
	annotateCmd.Flags().
		Bool("export", false, "Export the result as a subtitle file")
	annotateCmd.Flags().
		StringP("format", "f", "vtt", "Export subtitle format (vtt, srt)")
	annotateCmd.Flags().
		String("translate-to", "", "Translate captions to this language before display/export")
	annotateCmd.Flags().
		String("translate-provider", "gemini", "Translation provider (gemini, openai, anthropic)")
}

func runAnnotate(cmd *cobra.Command, args []string) error {
	videoPath := args[0]
	ctx := context.Background()

	if _, err := os.Stat(videoPath); os.IsNotExist(err) {
		return fmt.Errorf("file not found: %s", videoPath)
	}
	if !video.IsVideoFile(videoPath) {
		return fmt.Errorf("unsupported file type: %s (expected a video file)", filepath.Ext(videoPath))
	}

	modeName, _ := cmd.Flags().GetString("mode")
	input, _ := cmd.Flags().GetString("input")
	chartBy, _ := cmd.Flags().GetString("chart-by")
	apiKey, _ := cmd.Flags().GetString("api-key")
	model, _ := cmd.Flags().GetString("model")
	doExport, _ := cmd.Flags().GetBool("export")
	formatStr, _ := cmd.Flags().GetString("format")
	translateTo, _ := cmd.Flags().GetString("translate-to")
	translateProvider, _ := cmd.Flags().GetString("translate-provider")
	outputDir, _ := cmd.Flags().GetString("output")

	if apiKey == "" {
		apiKey = os.Getenv("GEMINI_API_KEY")
	}
	if apiKey == "" {
		return fmt.Errorf("Gemini API key is required: use --api-key flag or set GEMINI_API_KEY environment variable")
	}

	mode, ok := modes.Lookup(modeName)
	if !ok {
		return fmt.Errorf("unknown mode %q: run 'annotator modes' to list them", modeName)
	}

	prompt, err := resolvePrompt(modeName, mode, input, chartBy)
	if err != nil {
		return err
	}

	var format subtitle.Format
	switch strings.ToLower(formatStr) {
	case "vtt":
		format = subtitle.FormatVTT
	case "srt":
		format = subtitle.FormatSRT
	default:
		return fmt.Errorf("unsupported format %q: use vtt or srt", formatStr)
	}

	logger.Infow("Starting video annotation",
		"input", videoPath,
		"mode", modeName,
		"model", model,
	)

	var duration float64
	if info, err := video.Probe(videoPath); err != nil {
		logger.Warnw("could not probe video duration, intervals will not be clamped",
			"error", err,
		)
	} else {
		duration = info.DurationSeconds
	}

	analyzer, err := analyze.NewGeminiAnalyzer(ctx, apiKey, analyze.Options{Model: model})
	if err != nil {
		return fmt.Errorf("failed to create analyzer: %w", err)
	}

	logger.Infow("Uploading video")
	file, err := analyzer.Upload(ctx, videoPath)
	if err != nil {
		return fmt.Errorf("failed to upload video: %w", err)
	}
	defer func() {
		if err := analyzer.Delete(ctx, file); err != nil {
			logger.Warnw("failed to delete uploaded file", "error", err)
		}
	}()

	sess := session.New(logger)
	sess.LoadVideo(session.Video{
		DisplayName:     file.DisplayName,
		URI:             file.URI,
		MIMEType:        file.MIMEType,
		DurationSeconds: duration,
	})

	token := sess.BeginAnalysis(modeName)

	logger.Infow("Analyzing video")
	resp, err := analyzer.Analyze(ctx, file, prompt)
	if err != nil {
		return fmt.Errorf("analysis failed: %w", err)
	}

	sess.CompleteAnalysis(token, resp)

	if sess.Skipped() > 0 {
		logger.Warnw("some entries could not be decoded", "skipped", sess.Skipped())
	}

	if translateTo != "" {
		if err := translateResults(ctx, cmd, sess, translateTo, translateProvider); err != nil {
			return err
		}
	}

	printResults(sess)

	if doExport {
		filename, content, err := sess.Export(format)
		if err != nil {
			return fmt.Errorf("export failed: %w", err)
		}
		outPath := filename
		if outputDir != "" {
			outPath = filepath.Join(outputDir, filename)
		}
		if err := subtitle.WriteFile(outPath, content); err != nil {
			return fmt.Errorf("failed to write subtitle file: %w", err)
		}
		absOutput, _ := filepath.Abs(outPath)
		fmt.Printf("Subtitles exported: %s\n", absOutput)
	}

	return nil
}

// resolvePrompt combines the mode with any user-supplied instructions.
// Chart mode splices a sub-mode instruction or free text; Custom always
// needs free text.
func resolvePrompt(modeName string, mode modes.Mode, input, chartBy string) (string, error) {
	if !mode.NeedsInput() {
		return mode.Prompt(""), nil
	}

	if chartBy != "" {
		instruction, ok := mode.SubModes[chartBy]
		if !ok {
			return "", fmt.Errorf("unknown chart sub-mode %q for mode %q", chartBy, modeName)
		}
		return mode.Prompt(instruction), nil
	}

	if input == "" {
		return "", fmt.Errorf("mode %q requires --input (or --chart-by for Chart)", modeName)
	}
	return mode.Prompt(input), nil
}

func translateResults(
	ctx context.Context,
	cmd *cobra.Command,
	sess *session.Session,
	targetLanguage, providerName string,
) error {
	provider := translate.Provider(strings.ToLower(providerName))

	translateKey, err := translateAPIKey(cmd, provider)
	if err != nil {
		return err
	}

	translator, err := translate.Factory(ctx, provider, translateKey, translate.Options{
		TargetLanguage: targetLanguage,
	})
	if err != nil {
		return fmt.Errorf("failed to create translator: %w", err)
	}

	logger.Infow("Translating results",
		"language", targetLanguage,
		"provider", providerName,
	)

	if segments := sess.Segments(); len(segments) > 0 {
		translated, err := translate.Segments(ctx, translator, segments)
		if err != nil {
			return fmt.Errorf("translation failed: %w", err)
		}
		if err := sess.ReplaceSegments(translated); err != nil {
			return err
		}
	}

	if anns := sess.Annotations(); len(anns) > 0 {
		translated, err := translate.Annotations(ctx, translator, anns)
		if err != nil {
			return fmt.Errorf("translation failed: %w", err)
		}
		if err := sess.ReplaceAnnotations(translated); err != nil {
			return err
		}
	}

	return nil
}

func translateAPIKey(cmd *cobra.Command, provider translate.Provider) (string, error) {
	switch provider {
	case translate.ProviderOpenAI:
		key := os.Getenv("OPENAI_API_KEY")
		if key == "" {
			return "", fmt.Errorf("OPENAI_API_KEY environment variable is required for OpenAI translation")
		}
		return key, nil
	case translate.ProviderAnthropic:
		key := os.Getenv("ANTHROPIC_API_KEY")
		if key == "" {
			return "", fmt.Errorf("ANTHROPIC_API_KEY environment variable is required for Anthropic translation")
		}
		return key, nil
	default:
		key, _ := cmd.Flags().GetString("api-key")
		if key == "" {
			key = os.Getenv("GEMINI_API_KEY")
		}
		return key, nil
	}
}

func printResults(sess *session.Session) {
	if segments := sess.Segments(); len(segments) > 0 {
		fmt.Println("Topic segments:")
		for _, seg := range segments {
			fmt.Printf("  %s - %s  %s\n", seg.StartTime, seg.EndTime, seg.TopicDescription)
		}
	}

	if anns := sess.Annotations(); len(anns) > 0 {
		switch sess.Kind() {
		case annotation.KindNumericSeries:
			fmt.Println("Values:")
			for _, ann := range anns {
				fmt.Printf("  %s  %s\n", ann.Time, ann.DisplayText())
			}
		case annotation.KindCaptionsWithObjects:
			fmt.Println("Annotations:")
			for _, ann := range anns {
				fmt.Printf("  %s  %s", ann.Time, ann.Text)
				if len(ann.Objects) > 0 {
					fmt.Printf("  [%s]", strings.Join(ann.Objects, ", "))
				}
				fmt.Println()
			}
		default:
			fmt.Println("Annotations:")
			for _, ann := range anns {
				fmt.Printf("  %s  %s\n", ann.Time, ann.Text)
			}
		}
	}

	if structured := sess.Structured(); structured != nil {
		var buf any
		if err := json.Unmarshal(structured, &buf); err == nil {
			if out, err := json.MarshalIndent(buf, "", "  "); err == nil {
				fmt.Println("Analysis result:")
				fmt.Println(string(out))
			}
		} else {
			fmt.Println("Analysis result:")
			fmt.Println(string(structured))
		}
	}

	if text := sess.ModelText(); text != "" &&
		len(sess.Annotations()) == 0 && len(sess.Segments()) == 0 && sess.Structured() == nil {
		fmt.Println("Model response:")
		fmt.Println(text)
	}
}
