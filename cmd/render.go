package cmd

import (
	"context"
	"fmt"

	"github.com/jsphweid/abcsmith/constants"
	"github.com/jsphweid/abcsmith/manifest"
	"github.com/jsphweid/abcsmith/render"
	"github.com/spf13/cobra"
)

var keepTempo bool

func init() {
	renderCmd.Flags().BoolVar(&keepTempo, "keep-tempo", false, "leave tempo events in the MIDI output")
	rootCmd.AddCommand(renderCmd)
}

var renderCmd = &cobra.Command{
	Use:   "render <manifest>",
	Short: "Assembles and renders to MIDI",
	Long:  `Assembles every part and renders each one to MIDI with the external renderer ($ABC_RENDERER).`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := constants.Load()
		cobra.CheckErr(err)
		if outDir != "" {
			cfg.OutDir = outDir
		}
		if keepTempo {
			cfg.StripTempo = false
		}

		song, err := manifest.Load(args[0])
		cobra.CheckErr(err)
		parts, err := assembleParts(song, instrument, countChords, cfg.OutDir)
		cobra.CheckErr(err)
		cobra.CheckErr(writeParts(parts))

		r := render.New(cfg.Renderer, cfg.RenderTimeout, cfg.StripTempo)
		for i, p := range parts {
			fmt.Printf("Rendering %v of %v parts\n", i+1, len(parts))
			midiPath, err := r.Render(context.Background(), p.Path, "")
			cobra.CheckErr(err)
			fmt.Printf("MIDI generated: %v\n", midiPath)
		}
	},
}
