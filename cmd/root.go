package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "abcsmith",
	Short: "Assembles ABC parts from bar-checked sections",
	Long: `Assembles ABC notation documents from named sections, checks that every
section has the number of bars it claims, and renders the result to MIDI.`,
}

func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}
