package cli

import (
	"github.com/spf13/cobra"

	"github.com/sounder-audio/sounder/internal/wavegen"
)

func init() {
	rootCmd.AddCommand(beepCmd)
}

var beepCmd = &cobra.Command{
	Use:   "beep",
	Short: "Play a short notification beep",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		handleErr(wavegen.Beep())
	},
}
