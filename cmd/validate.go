package cmd

import (
	"fmt"

	"github.com/jsphweid/abcsmith/assemble"
	"github.com/jsphweid/abcsmith/manifest"
	"github.com/jsphweid/abcsmith/model"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(validateCmd)
}

var validateCmd = &cobra.Command{
	Use:   "validate <manifest>",
	Short: "Checks bar counts",
	Long:  `Checks every section of every instrument against its declared bar count.`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		song, err := manifest.Load(args[0])
		cobra.CheckErr(err)

		reports, err := validateSong(song, instrument, countChords)
		cobra.CheckErr(err)

		var failed int
		for _, r := range reports {
			fmt.Printf("%v:\n", r.instrument)
			for _, res := range r.results {
				if res.OK {
					fmt.Printf("  ok    %v (%.2f bars)\n", res.Name, res.ActualBars)
				} else {
					failed += 1
					fmt.Printf("  FAIL  %v\n", res.Detail)
				}
			}
			for _, name := range r.unknown {
				failed += 1
				fmt.Printf("  FAIL  structure names unknown section %v\n", name)
			}
		}
		if failed > 0 {
			cobra.CheckErr(errors.Errorf("%d problems found", failed))
		}
	},
}

type instrumentReport struct {
	instrument string
	results    []model.SectionResult
	unknown    []string
}

func validateSong(song *manifest.Song, only string, chords bool) ([]instrumentReport, error) {
	a := assemble.Assembler{CountChords: chords || song.CountChords}
	var res []instrumentReport
	for _, inst := range song.Instruments {
		if only != "" && inst.Name != only {
			continue
		}
		results, err := a.Report(inst.Sections, song.HeaderFor(inst))
		if err != nil {
			return nil, errors.Wrapf(err, "instrument %s", inst.Name)
		}
		r := instrumentReport{instrument: inst.Name, results: results}

		declared := make(map[string]bool)
		for _, s := range inst.Sections {
			declared[s.Name] = true
		}
		for _, name := range song.StructureFor(inst) {
			if !declared[name] {
				r.unknown = append(r.unknown, name)
			}
		}
		res = append(res, r)
	}
	return res, nil
}
