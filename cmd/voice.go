package cmd

import (
	"fmt"
	"strconv"

	"github.com/jsphweid/movements/chord"
	"github.com/jsphweid/movements/model"
	"github.com/jsphweid/movements/scale"
	"github.com/spf13/cobra"
)

var (
	voiceScale string
	voiceRoot  int
)

func init() {
	voiceCmd.Flags().StringVar(&voiceScale, "scale", scale.MajorSixthDiminished.String(), "scale of chords to voice in")
	voiceCmd.Flags().IntVar(&voiceRoot, "root", 0, "root of the scale of chords")
	rootCmd.AddCommand(voiceCmd)
}

var voiceCmd = &cobra.Command{
	Use:   "voice <pivot> <input>",
	Short: "Voices a single chord",
	Long:  `Voices the contrary motion chord running from input towards pivot, without touching any MIDI port.`,
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		pitches := make([]model.Pitch, len(args))
		for i, arg := range args {
			n, err := strconv.Atoi(arg)
			if err != nil {
				return fmt.Errorf("pitch %q: %w", arg, err)
			}
			pitches[i] = model.Pitch(n)
		}
		s, err := scale.ByName(voiceScale)
		if err != nil {
			return err
		}
		c, err := chord.Voice(s.Degrees(), model.Pitch(voiceRoot), pitches[0], pitches[1])
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		fmt.Fprintln(out, chord.CreateChordKey(c))
		for _, p := range c {
			fmt.Fprintf(out, "  %v\t%v\n", int(p), p.Name())
		}
		return nil
	},
}
