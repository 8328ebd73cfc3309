package cli

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/b08x/video-annotator/internal/modes"
)

var modesCmd = &cobra.Command{
	Use:   "modes",
	Short: "List the available analysis modes",
	Run:   runModes,
}

func init() {
	rootCmd.AddCommand(modesCmd)
}

func runModes(cmd *cobra.Command, args []string) {
	defaultName := modes.Default()

	for _, name := range modes.Names() {
		mode, _ := modes.Lookup(name)

		line := fmt.Sprintf("%s %s", mode.Emoji, name)
		if name == defaultName {
			line += " (default)"
		}
		if mode.NeedsInput() {
			line += " [requires --input]"
		}
		fmt.Println(line)

		if len(mode.SubModes) > 0 {
			subModes := make([]string, 0, len(mode.SubModes))
			for sub := range mode.SubModes {
				subModes = append(subModes, sub)
			}
			sort.Strings(subModes)
			fmt.Printf("    sub-modes: %s\n", strings.Join(subModes, ", "))
		}
	}
}
