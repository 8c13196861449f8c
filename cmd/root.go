package cmd

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

var debug bool

// logger is replaced by initLogger before any command runs.
var logger = slog.Default()

var rootCmd = &cobra.Command{
	Use:   "movements",
	Short: "Contrary motion chord instrument",
	Long: `movements turns pad touches and a tilt sensor into chords from scales of
chords, voiced in contrary motion around a pivot note, and plays them over MIDI.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		initLogger(debug)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "log debug messages")
}

func initLogger(debug bool) {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	h := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	logger = slog.New(h)
	slog.SetDefault(logger)
}

func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}
