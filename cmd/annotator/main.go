package main

import (
	"os"

	"github.com/b08x/video-annotator/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
