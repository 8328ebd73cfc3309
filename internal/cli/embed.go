package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/b08x/video-annotator/internal/video"
)

var embedCmd = &cobra.Command{
	Use:   "embed [video_file] [subtitle_file]",
	Short: "Mux a subtitle file into a video as a soft track",
	Long: `Mux an exported subtitle file into the video container as a soft
subtitle track. Video and audio streams are copied without re-encoding.

Examples:
  annotator embed video.mp4 video_annotations.vtt
  annotator embed video.mkv video_segments.vtt -o subtitled/`,
	Args: cobra.ExactArgs(2),
	RunE: runEmbed,
}

func init() {
	rootCmd.AddCommand(embedCmd)
}

func runEmbed(cmd *cobra.Command, args []string) error {
	videoPath := args[0]
	subtitlePath := args[1]

	if !video.IsVideoFile(videoPath) {
		return fmt.Errorf("unsupported file type: %s (expected a video file)", filepath.Ext(videoPath))
	}

	outputDir, _ := cmd.Flags().GetString("output")

	ext := filepath.Ext(videoPath)
	base := strings.TrimSuffix(filepath.Base(videoPath), ext)
	outPath := base + "_subtitled" + ext
	if outputDir != "" {
		if err := os.MkdirAll(outputDir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
		outPath = filepath.Join(outputDir, outPath)
	}

	logger.Infow("Embedding subtitles",
		"video", videoPath,
		"subtitles", subtitlePath,
		"output", outPath,
	)

	if err := video.EmbedSubtitles(videoPath, subtitlePath, outPath); err != nil {
		return err
	}

	absOutput, _ := filepath.Abs(outPath)
	fmt.Printf("Subtitled video written: %s\n", absOutput)
	return nil
}
