package cli

import (
	"github.com/b08x/video-annotator/internal/logging"
	"github.com/spf13/cobra"
)

var (
	verbose bool
	logger  *logging.Logger
)

var rootCmd = &cobra.Command{
	Use:   "annotator",
	Short: "AI-powered timecode annotation for videos",
	Long: `Annotator sends a video to a multimodal model and turns the model's
structured replies into timecoded annotations: captions, key-moment
lists, numeric series, and topic segments.

Results can be exported as WebVTT or SRT subtitle files and muxed back
into the video as a soft subtitle track.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger = logging.NewLogger(verbose)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().
		BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().StringP("output", "o", "", "Output directory for exported files")
}
