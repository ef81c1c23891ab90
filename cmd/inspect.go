package cmd

import (
	"fmt"

	"github.com/jsphweid/abcsmith/midi"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(inspectCmd)
}

var inspectCmd = &cobra.Command{
	Use:   "inspect <midi file>",
	Short: "Inspects a rendered MIDI file",
	Long:  `Prints track, note, control change and tempo counts of a rendered MIDI file.`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		s, err := midi.ReadMidiFile(args[0])
		cobra.CheckErr(err)
		fmt.Printf("%v: %v\n", args[0], midi.Summarize(s))
	},
}
