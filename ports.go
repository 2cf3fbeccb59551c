package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"staff-trainer/midi"
)

var portsTimeout time.Duration

var portsCmd = &cobra.Command{
	Use:   "ports",
	Short: "List MIDI ports and how staff-trainer would use them",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ports, err := midi.GetPorts(portsTimeout)
		if err != nil {
			return fmt.Errorf("%w (on macOS try: sudo killall coreaudiod midiserver)", err)
		}

		w := cmd.OutOrStdout()
		fmt.Fprintln(w, "=== MIDI Input Ports ===")
		for i, p := range ports.In {
			fmt.Fprintf(w, "  %d: %-40s %s\n", i, p.String(), midi.Classify(p.String()))
		}
		fmt.Fprintln(w, "\n=== MIDI Output Ports ===")
		for i, p := range ports.Out {
			fmt.Fprintf(w, "  %d: %s\n", i, p.String())
		}
		return nil
	},
}

func init() {
	portsCmd.Flags().DurationVar(&portsTimeout, "timeout", 3*time.Second, "give up listing ports after this long")
}
