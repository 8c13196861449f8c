package cmd

import (
	"fmt"

	"github.com/jsphweid/movements/chord"
	"github.com/jsphweid/movements/midi"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(inspectCmd)
}

var inspectCmd = &cobra.Command{
	Use:   "inspect <file.mid>",
	Short: "Inspects a recorded session",
	Long:  `Prints the chords of a session written by play --record, in the order they were played.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := midi.ReadMidiFile(args[0])
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		for i, c := range midi.RecordedChords(s) {
			fmt.Fprintf(out, "%v\t%v\n", i+1, chord.CreateChordKey(c))
		}
		return nil
	},
}
