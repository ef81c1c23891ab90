package cmd

import (
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/bep/debounce"
	"github.com/jsphweid/abcsmith/constants"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(watchCmd)
}

var watchCmd = &cobra.Command{
	Use:   "watch <manifest>",
	Short: "Reassembles on change",
	Long:  `Polls the manifest and reassembles every part whenever it changes.`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := constants.Load()
		cobra.CheckErr(err)
		if outDir != "" {
			cfg.OutDir = outDir
		}
		watch(args[0], cfg, nil)
	},
}

func rebuild(path string, cfg constants.Config) {
	paths, err := Assemble(path, cfg)
	if err != nil {
		fmt.Printf("%v: %v\n", time.Now().Format(time.TimeOnly), err)
		return
	}
	for _, p := range paths {
		fmt.Printf("%v: written to %v\n", time.Now().Format(time.TimeOnly), p)
	}
}

// watch polls path until stop is closed. Bursts of changes, as editors
// produce when saving, lead to a single rebuild.
func watch(path string, cfg constants.Config, stop <-chan struct{}) {
	interval := cfg.WatchInterval
	if interval <= 0 {
		interval = 500 * time.Millisecond
	}
	debounced := debounce.New(interval)
	ticker := time.NewTicker(interval / 2)
	defer ticker.Stop()

	// held for the length of a rebuild so none runs once watch has returned
	var mu sync.Mutex
	stopped := false

	var lastMod time.Time
	for {
		select {
		case <-stop:
			debounced(func() {})
			mu.Lock()
			stopped = true
			mu.Unlock()
			return
		case <-ticker.C:
			info, err := os.Stat(path)
			if err != nil {
				continue
			}
			if info.ModTime().Equal(lastMod) {
				continue
			}
			lastMod = info.ModTime()
			debounced(func() {
				mu.Lock()
				defer mu.Unlock()
				if !stopped {
					rebuild(path, cfg)
				}
			})
		}
	}
}
