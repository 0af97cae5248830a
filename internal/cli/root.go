package cli

import (
	"github.com/mgpai22/recut/internal/logging"
	"github.com/spf13/cobra"
)

var (
	verbose bool
	logger  *logging.Logger
)

var rootCmd = &cobra.Command{
	Use:   "recut",
	Short: "Edit video by deleting lines from its transcript",
	Long: `Recut turns transcript editing into video editing.

It transcribes a video into an editable subtitle file, then compares your
edited copy against the original snapshot to work out which time ranges you
deleted, and cuts those ranges out of the video.`,
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
	rootCmd.PersistentFlags().
		StringP("language", "l", "", "Language code (e.g., en, es, fr)")
}
