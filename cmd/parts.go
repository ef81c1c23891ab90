package cmd

import (
	"path/filepath"

	"github.com/jsphweid/abcsmith/assemble"
	"github.com/jsphweid/abcsmith/constants"
	"github.com/jsphweid/abcsmith/manifest"
	"github.com/jsphweid/abcsmith/util"
	"github.com/pkg/errors"
)

type part struct {
	Instrument string
	Document   string
	Path       string
}

// assembleParts builds the document of every instrument in the song, or only
// of the one named by instrument.
func assembleParts(song *manifest.Song, instrument string, countChords bool, outDir string) ([]part, error) {
	instruments := song.Instruments
	if instrument != "" {
		inst, ok := song.Instrument(instrument)
		if !ok {
			return nil, errors.Errorf("no instrument named %q", instrument)
		}
		instruments = []manifest.Instrument{inst}
	}

	a := assemble.Assembler{CountChords: countChords || song.CountChords}
	var res []part
	for _, inst := range instruments {
		doc, err := a.Assemble(inst.Name, inst.Sections, song.StructureFor(inst), song.HeaderFor(inst))
		if err != nil {
			return nil, errors.Wrapf(err, "instrument %s", inst.Name)
		}
		name := util.Slugify(song.Title(inst)) + constants.ABCExt
		res = append(res, part{
			Instrument: inst.Name,
			Document:   doc,
			Path:       filepath.Join(outDir, name),
		})
	}
	return res, nil
}

func writeParts(parts []part) error {
	for _, p := range parts {
		if err := util.WriteText(p.Path, p.Document); err != nil {
			return err
		}
	}
	return nil
}
