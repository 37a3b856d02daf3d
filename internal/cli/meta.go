package cli

import (
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/sounder-audio/sounder/internal/meta"
)

func init() {
	rootCmd.AddCommand(metaCmd)
	metaCmd.AddCommand(metaSetCmd)

	metaCmd.Flags().BoolP("all", "a", false, "List every supported tag key and its ID3 frame ID")

	metaSetCmd.Flags().StringP("key", "k", "", "Tag key to write (see `sounder meta --all`)")
	metaSetCmd.Flags().StringP("value", "v", "", "Value to write")
	lo.Must0(metaSetCmd.MarkFlagRequired("key"))
	lo.Must0(metaSetCmd.MarkFlagRequired("value"))
}

// metaCmd inspects tag metadata and stream properties.
var metaCmd = &cobra.Command{
	Use:   "meta <file>",
	Short: "Show duration and metadata of an audio file",
	Args:  cobra.MaximumNArgs(1),
	Example: `  sounder meta audio.mp3
  sounder meta --all`,
	Run: func(cmd *cobra.Command, args []string) {
		if lo.Must(cmd.Flags().GetBool("all")) {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			for _, kf := range meta.KeyFrames() {
				fmt.Fprintf(w, "%s\t%s\n", kf[0], kf[1])
			}
			handleErr(w.Flush())
			return
		}
		if len(args) == 0 {
			handleErr(fmt.Errorf("a file path is required unless --all is given"))
		}

		info, err := meta.Read(args[0])
		handleErr(err)
		printInfo(cmd, info)
	},
}

// metaSetCmd writes one ID3v2.4 text frame to an MP3 file.
var metaSetCmd = &cobra.Command{
	Use:     "set <file>",
	Short:   "Write a tag value to an MP3 file",
	Args:    cobra.ExactArgs(1),
	Example: `  sounder meta set audio.mp3 -k title -v "New Title"`,
	Run: func(cmd *cobra.Command, args []string) {
		info, err := meta.SetFrame(args[0],
			lo.Must(cmd.Flags().GetString("key")),
			lo.Must(cmd.Flags().GetString("value")))
		handleErr(err)
		printInfo(cmd, info)
	},
}

func printInfo(cmd *cobra.Command, info *meta.Info) {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)

	fmt.Fprintf(w, "file\t%s\n", info.Path)
	fmt.Fprintf(w, "size\t%s\n", humanize.Bytes(uint64(info.Size)))
	fmt.Fprintf(w, "format\t%s\n", info.Format)
	if info.Duration > 0 {
		fmt.Fprintf(w, "duration\t%s\n", info.Duration.Round(time.Millisecond))
	}
	fmt.Fprintf(w, "sample rate\t%d Hz\n", info.SampleRate)
	fmt.Fprintf(w, "channels\t%d\n", info.Channels)
	if info.Bitrate > 0 {
		fmt.Fprintf(w, "bitrate\t%d kb/s\n", info.Bitrate)
	}

	for _, f := range []struct {
		label, value string
	}{
		{"title", info.Title},
		{"artist", info.Artist},
		{"album artist", info.AlbumArtist},
		{"album", info.Album},
		{"genre", info.Genre},
		{"composer", info.Composer},
		{"comment", info.Comment},
	} {
		if f.value != "" {
			fmt.Fprintf(w, "%s\t%s\n", f.label, f.value)
		}
	}
	if info.Year > 0 {
		fmt.Fprintf(w, "year\t%d\n", info.Year)
	}
	if info.Track > 0 {
		fmt.Fprintf(w, "track\t%s\n", ofTotal(info.Track, info.TotalTracks))
	}
	if info.Disc > 0 {
		fmt.Fprintf(w, "disc\t%s\n", ofTotal(info.Disc, info.TotalDiscs))
	}

	handleErr(w.Flush())
}

func ofTotal(n, total int) string {
	if total > 0 {
		return fmt.Sprintf("%d/%d", n, total)
	}
	return fmt.Sprintf("%d", n)
}
