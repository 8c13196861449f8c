package cmd

import (
	"fmt"

	"github.com/jsphweid/movements/midi"
	"github.com/spf13/cobra"
	"gitlab.com/gomidi/midi/v2/drivers/rtmididrv"
)

func init() {
	rootCmd.AddCommand(portsCmd)
}

var portsCmd = &cobra.Command{
	Use:   "ports",
	Short: "Lists MIDI ports",
	Long:  `Lists the MIDI output and input ports the play command can use.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		drv, err := rtmididrv.New()
		if err != nil {
			return fmt.Errorf("rtmididrv: %w", err)
		}
		defer drv.Close()

		outs, ins, err := midi.PortNames(drv)
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		fmt.Fprintln(out, "outputs:")
		for _, name := range outs {
			fmt.Fprintf(out, "  %v\n", name)
		}
		fmt.Fprintln(out, "inputs:")
		for _, name := range ins {
			fmt.Fprintf(out, "  %v\n", name)
		}
		return nil
	},
}
