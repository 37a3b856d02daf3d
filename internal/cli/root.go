// Package cli implements the sounder command-line interface.
package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "sounder",
	Short: "Play, inspect and generate audio from the terminal",
	Long: `sounder plays audio files with an interactive single-line progress display,
reads and writes tag metadata, and generates sine tones.

Supported playback formats: FLAC, WAV, MP3 and OGG.`,
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func handleErr(err error) {
	if err != nil {
		fmt.Fprintf(os.Stderr, "sounder: %s\n", strings.Trim(err.Error(), " \n"))
		os.Exit(1)
	}
}
