package render

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jsphweid/abcsmith/midi"
	"github.com/pkg/errors"
)

// RenderFailure is a renderer run that exited non-zero.
type RenderFailure struct {
	Renderer    string
	ExitCode    int
	Diagnostics string
}

func (e *RenderFailure) Error() string {
	return fmt.Sprintf("%s failed (exit %d): %s", e.Renderer, e.ExitCode, strings.TrimSpace(e.Diagnostics))
}

type Renderer struct {
	Binary  string
	Timeout time.Duration

	// StripTempo removes tempo events from the output so tempo is set by the
	// host (DAW/OSC) instead.
	StripTempo bool
}

func New(binary string, timeout time.Duration, stripTempo bool) *Renderer {
	return &Renderer{Binary: binary, Timeout: timeout, StripTempo: stripTempo}
}

// OutputPath is abcPath with a .mid extension.
func OutputPath(abcPath string) string {
	return strings.TrimSuffix(abcPath, filepath.Ext(abcPath)) + ".mid"
}

// runError turns the outcome of a renderer run into an error. A run that
// exited cleanly is a success even if ctx expired right after.
func (r *Renderer) runError(ctx context.Context, err error, abcPath, stdout, stderr string) error {
	if err == nil {
		return nil
	}
	if ctx.Err() != nil {
		return errors.Wrapf(ctx.Err(), "%s did not finish rendering %s", r.Binary, abcPath)
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		// abc2midi reports most problems on stdout
		diagnostics := stderr
		if strings.TrimSpace(diagnostics) == "" {
			diagnostics = stdout
		}
		return &RenderFailure{
			Renderer:    r.Binary,
			ExitCode:    exitErr.ExitCode(),
			Diagnostics: diagnostics,
		}
	}
	return errors.Wrapf(err, "could not run %s", r.Binary)
}

// Render runs `<binary> <abcPath> -o <midiPath>` and returns the path of the
// MIDI file. An empty midiPath is derived from abcPath.
func (r *Renderer) Render(ctx context.Context, abcPath, midiPath string) (string, error) {
	if midiPath == "" {
		midiPath = OutputPath(abcPath)
	}

	if r.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.Timeout)
		defer cancel()
	}

	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, r.Binary, abcPath, "-o", midiPath)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	cmd.WaitDelay = time.Second

	err := cmd.Run()
	if err := r.runError(ctx, err, abcPath, stdout.String(), stderr.String()); err != nil {
		return "", err
	}

	if r.StripTempo {
		if _, err := midi.StripTempo(midiPath); err != nil {
			return "", errors.Wrap(err, "could not strip tempo")
		}
	}
	return midiPath, nil
}

// RenderDocument writes doc to <dir>/<name>.abc and renders it. A random
// name is used when name is empty.
func (r *Renderer) RenderDocument(ctx context.Context, doc, dir, name string) (string, error) {
	if name == "" {
		name = uuid.New().String()
	}
	if err := os.MkdirAll(dir, 0777); err != nil {
		return "", errors.Wrapf(err, "could not create %s", dir)
	}

	abcPath := filepath.Join(dir, name+".abc")
	if err := os.WriteFile(abcPath, []byte(doc), 0644); err != nil {
		return "", errors.Wrapf(err, "could not write %s", abcPath)
	}
	return r.Render(ctx, abcPath, "")
}
