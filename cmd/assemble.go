package cmd

import (
	"fmt"

	"github.com/jsphweid/abcsmith/constants"
	"github.com/jsphweid/abcsmith/manifest"
	"github.com/spf13/cobra"
)

var (
	outDir      string
	instrument  string
	countChords bool
)

func init() {
	for _, c := range []*cobra.Command{assembleCmd, renderCmd, watchCmd} {
		c.Flags().StringVarP(&outDir, "out", "o", "", "output directory (default $OUT_DIR)")
	}
	for _, c := range []*cobra.Command{assembleCmd, renderCmd, validateCmd, watchCmd} {
		c.Flags().StringVarP(&instrument, "instrument", "i", "", "only this instrument")
		c.Flags().BoolVar(&countChords, "chords", false, "count chord groups toward bar lengths")
	}
	rootCmd.AddCommand(assembleCmd)
}

var assembleCmd = &cobra.Command{
	Use:   "assemble <manifest>",
	Short: "Assembles ABC files",
	Long:  `Assembles one ABC file per instrument in the manifest.`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := constants.Load()
		cobra.CheckErr(err)
		if outDir != "" {
			cfg.OutDir = outDir
		}

		paths, err := Assemble(args[0], cfg)
		cobra.CheckErr(err)
		for _, p := range paths {
			fmt.Printf("Written to: %v\n", p)
		}
	},
}

// Assemble writes every part of the manifest at path and returns the files
// written.
func Assemble(path string, cfg constants.Config) ([]string, error) {
	song, err := manifest.Load(path)
	if err != nil {
		return nil, err
	}
	parts, err := assembleParts(song, instrument, countChords, cfg.OutDir)
	if err != nil {
		return nil, err
	}
	if err := writeParts(parts); err != nil {
		return nil, err
	}

	var res []string
	for _, p := range parts {
		res = append(res, p.Path)
	}
	return res, nil
}
