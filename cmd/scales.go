package cmd

import (
	"fmt"

	"github.com/jsphweid/movements/scale"
	"github.com/spf13/cobra"
)

var scalesRoot int

func init() {
	scalesCmd.Flags().IntVar(&scalesRoot, "root", 0, "root used to print off chords")
	rootCmd.AddCommand(scalesCmd)
}

var scalesCmd = &cobra.Command{
	Use:   "scales",
	Short: "Lists the scales of chords",
	Long:  `Lists every scale of chords with its degrees, off chord and family moves.`,
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		for _, s := range scale.All() {
			fmt.Fprintf(out, "%v\n", s)
			fmt.Fprintf(out, "  family: %v (%v)\n", s.Family(), s.Rotation())
			fmt.Fprintf(out, "  degrees: %v\n", s.Degrees())
			fmt.Fprintf(out, "  off chord: %v\n", s.OffChord(scalesRoot))
			for _, d := range scale.Directions {
				step := scale.Move(s, d)
				fmt.Fprintf(out, "  %v: %v (%+d)\n", d, step.Scale, int(step.RootDelta))
			}
		}
	},
}
