package cli

import (
	"fmt"
	"strconv"
	"time"

	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/sounder-audio/sounder/internal/wavegen"
)

func init() {
	rootCmd.AddCommand(makeCmd)

	makeCmd.Flags().Float64P("amplify", "a", 1, "Amplify or attenuate the tone (e.g. 0.5 for half volume)")
	makeCmd.Flags().BoolP("data", "d", false, "Write WAV data to stdout instead of playing")
}

// makeCmd generates a sine tone and either plays it or emits WAV data.
var makeCmd = &cobra.Command{
	Use:   "make <frequency> <duration>",
	Short: "Generate a sine tone",
	Args:  cobra.ExactArgs(2),
	Example: `  sounder make 1000 200ms
  sounder make 1000 200ms -a 0.5
  sounder make 440 1s --data > tone.wav`,
	Run: func(cmd *cobra.Command, args []string) {
		freq, err := strconv.ParseFloat(args[0], 64)
		if err != nil {
			handleErr(fmt.Errorf("invalid frequency %q: %w", args[0], err))
		}
		dur, err := time.ParseDuration(args[1])
		if err != nil {
			handleErr(fmt.Errorf("invalid duration %q: %w", args[1], err))
		}

		tone, err := wavegen.Tone(freq, dur, lo.Must(cmd.Flags().GetFloat64("amplify")))
		handleErr(err)

		if lo.Must(cmd.Flags().GetBool("data")) {
			handleErr(wavegen.EncodeWAV(cmd.OutOrStdout(), tone))
			return
		}
		handleErr(wavegen.Play(tone))
	},
}
