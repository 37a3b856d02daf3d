package cli

import (
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/sounder-audio/sounder/internal/config"
	"github.com/sounder-audio/sounder/internal/icons"
	"github.com/sounder-audio/sounder/internal/meta"
	"github.com/sounder-audio/sounder/internal/session"
	"github.com/sounder-audio/sounder/internal/sink"
	"github.com/sounder-audio/sounder/internal/termctl"
)

func init() {
	rootCmd.AddCommand(playCmd)

	playCmd.Flags().DurationP("duration", "d", 0, "Playback length override for formats whose duration cannot be decoded")
	playCmd.Flags().Float64P("volume", "a", 1, "Initial volume, 0 to 2 (e.g. 0.5 for half volume)")
	playCmd.Flags().String("icons", "", "Icon set: nerd, unicode or ascii")
	lo.Must0(playCmd.RegisterFlagCompletionFunc("icons", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return []string{"nerd", "unicode", "ascii"}, cobra.ShellCompDirectiveDefault
	}))
	playCmd.Flags().BoolP("quiet", "q", false, "Suppress the progress display and keyboard controls")
}

// playCmd drives an interactive playback session on the terminal.
var playCmd = &cobra.Command{
	Use:   "play <file>",
	Short: "Play an audio file with an interactive progress display",
	Args:  cobra.ExactArgs(1),
	Example: `  sounder play audio.mp3
  sounder play audio.mp3 -d 5m
  sounder play audio.mp3 -a 0.5
  sounder play audio.mp3 --quiet`,
	Run: func(cmd *cobra.Command, args []string) {
		path := args[0]

		cfg, err := config.Load()
		handleErr(err)

		volume := cfg.Volume
		if cmd.Flags().Changed("volume") {
			volume = lo.Must(cmd.Flags().GetFloat64("volume"))
		}
		iconStyle := lo.Must(cmd.Flags().GetString("icons"))
		if iconStyle == "" {
			iconStyle = cfg.Icons
		}

		snk, err := sink.Open(path)
		handleErr(err)

		// Tags are a best-effort source: the display header and a
		// secondary duration candidate for streams the decoder
		// cannot size.
		var (
			header    string
			headerDur time.Duration
		)
		if info, err := meta.Read(path); err == nil {
			header = info.Header()
			headerDur = info.Duration
		}

		total := session.ResolveTotal(
			lo.Must(cmd.Flags().GetDuration("duration")),
			snk.TotalDuration(),
			headerDur,
		)

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		s := session.New(snk, session.Options{
			Total:    total,
			Header:   header,
			Icons:    icons.Resolve(iconStyle),
			Volume:   volume,
			Quiet:    lo.Must(cmd.Flags().GetBool("quiet")),
			SeekStep: time.Duration(cfg.SeekStep) * time.Second,
			Terminal: termctl.NewGuard(os.Stdin, os.Stderr),
		})
		handleErr(s.Run(ctx))
	},
}
