// Package video inspects source files with ffprobe and burns exported
// subtitle tracks back into containers with ffmpeg.
package video

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	ffmpeg "github.com/u2takey/ffmpeg-go"
)

// video file information
type Info struct {
	Path            string
	DurationSeconds float64
	Width           int
	Height          int
	Codec           string
	HasAudio        bool
}

var videoExtensions = map[string]bool{
	".mp4":  true,
	".mov":  true,
	".mkv":  true,
	".webm": true,
	".avi":  true,
	".m4v":  true,
	".mpg":  true,
	".mpeg": true,
}

// IsVideoFile reports whether the path has a supported video extension.
func IsVideoFile(path string) bool {
	return videoExtensions[strings.ToLower(filepath.Ext(path))]
}

// MIMEType maps a video path to the content type used for uploads.
func MIMEType(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".mov":
		return "video/quicktime"
	case ".mkv":
		return "video/x-matroska"
	case ".webm":
		return "video/webm"
	case ".avi":
		return "video/x-msvideo"
	case ".mpg", ".mpeg":
		return "video/mpeg"
	default:
		return "video/mp4"
	}
}

func ffprobePath() (string, error) {
	if p := os.Getenv("ANNOTATOR_FFPROBE_PATH"); p != "" {
		return p, nil
	}
	found, err := exec.LookPath("ffprobe")
	if err != nil {
		return "", fmt.Errorf(
			"ffprobe not found in PATH (set ANNOTATOR_FFPROBE_PATH to override): %w",
			err,
		)
	}
	return found, nil
}

// JSON output from ffprobe
type ffprobeOutput struct {
	Format struct {
		Duration string `json:"duration"`
	} `json:"format"`
	Streams []struct {
		CodecType string `json:"codec_type"`
		CodecName string `json:"codec_name"`
		Width     int    `json:"width"`
		Height    int    `json:"height"`
	} `json:"streams"`
}

// Probe reads container and stream metadata for a video file.
func Probe(path string) (*Info, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("video file not found: %s", path)
	}

	probePath, err := ffprobePath()
	if err != nil {
		return nil, err
	}

	cmd := exec.Command(probePath,
		"-v", "quiet",
		"-print_format", "json",
		"-show_format",
		"-show_streams",
		path,
	)

	var out bytes.Buffer
	cmd.Stdout = &out

	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf("ffprobe failed: %w", err)
	}

	var probe ffprobeOutput
	if err := json.Unmarshal(out.Bytes(), &probe); err != nil {
		return nil, fmt.Errorf("failed to parse ffprobe output: %w", err)
	}

	info := &Info{Path: path}

	if probe.Format.Duration != "" {
		if _, err := fmt.Sscanf(probe.Format.Duration, "%f", &info.DurationSeconds); err != nil {
			return nil, fmt.Errorf("failed to parse duration: %w", err)
		}
	}

	for _, stream := range probe.Streams {
		switch stream.CodecType {
		case "video":
			if info.Codec == "" {
				info.Codec = stream.CodecName
				info.Width = stream.Width
				info.Height = stream.Height
			}
		case "audio":
			info.HasAudio = true
		}
	}

	return info, nil
}

// EmbedSubtitles muxes a subtitle file into the video as a soft track,
// copying the existing streams. MP4 output uses mov_text, everything else
// keeps the subtitle codec as-is.
func EmbedSubtitles(videoPath, subtitlePath, outputPath string) error {
	if _, err := os.Stat(videoPath); os.IsNotExist(err) {
		return fmt.Errorf("video file not found: %s", videoPath)
	}
	if _, err := os.Stat(subtitlePath); os.IsNotExist(err) {
		return fmt.Errorf("subtitle file not found: %s", subtitlePath)
	}

	outputDir := filepath.Dir(outputPath)
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	subtitleCodec := "copy"
	if strings.EqualFold(filepath.Ext(outputPath), ".mp4") {
		subtitleCodec = "mov_text"
	}

	vin := ffmpeg.Input(videoPath)
	sin := ffmpeg.Input(subtitlePath)

	stream := ffmpeg.Output(
		[]*ffmpeg.Stream{vin, sin},
		outputPath,
		ffmpeg.KwArgs{
			"c:v": "copy",
			"c:a": "copy",
			"c:s": subtitleCodec,
		},
	).OverWriteOutput()

	if p := os.Getenv("ANNOTATOR_FFMPEG_PATH"); p != "" {
		stream = stream.SetFfmpegPath(p)
	}

	if err := stream.Run(); err != nil {
		return fmt.Errorf("ffmpeg mux failed: %w", err)
	}

	return nil
}
