// Package jfswatch polls the file system for changes to a configured set
// of paths and runs a command whenever one is detected.
package jfswatch

import (
	"fmt"
	"os"
	"os/exec"
	"strings"
	"time"

	"github.com/logrusorgru/aurora"
	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/just1ngray/jfswatch/config"
	"github.com/just1ngray/jfswatch/explorer"
	"github.com/just1ngray/jfswatch/snapshot"
)

// Watcher drives the poll, diff, trigger cycle. It owns the baseline
// snapshot exclusively; each cycle consumes it and replaces it with the
// fresh one. Everything runs synchronously on the calling goroutine.
type Watcher struct {
	explorers []explorer.Explorer
	interval  time.Duration
	sleep     time.Duration
	template  string
	shell     string
	au        aurora.Aurora
	log       *zap.Logger
}

// New validates cfg, constructs its explorers and returns a watcher ready
// to run. Invalid glob syntax and impossible configurations are rejected
// here, before any watching begins.
func New(cfg *config.Config) (*Watcher, error) {
	cfg.Normalize()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	explorers := make([]explorer.Explorer, 0, len(cfg.Exact)+len(cfg.Glob))
	for _, path := range cfg.Exact {
		explorers = append(explorers, explorer.NewExact(path))
	}
	for _, arg := range cfg.Glob {
		g, err := explorer.NewGlob(arg)
		if err != nil {
			return nil, err
		}
		explorers = append(explorers, g)
	}

	return &Watcher{
		explorers: explorers,
		interval:  time.Duration(cfg.Interval * float64(time.Second)),
		sleep:     time.Duration(*cfg.Sleep * float64(time.Second)),
		template:  strings.Join(cfg.Command, " "),
		shell:     defaultShell(),
		au:        aurora.NewAurora(term.IsTerminal(int(os.Stdout.Fd()))),
		log:       zap.L(),
	}, nil
}

// defaultShell returns the shell the triggered command runs through.
func defaultShell() string {
	if sh := os.Getenv("SHELL"); sh != "" {
		return sh
	}
	return "sh"
}

// Watch runs the poll loop forever. Cancellation is external: the process
// is expected to be killed by a signal. A hanging triggered command blocks
// the loop indefinitely.
func (w *Watcher) Watch() {
	prev := w.explore(len(w.explorers))
	time.Sleep(w.interval)

	for {
		curr := w.explore(prev.Len())
		diff := curr.Compare(prev)
		prev = curr

		if diff.Kind == snapshot.DiffUnchanged {
			w.log.Debug("no changes", zap.Int("paths", curr.Len()))
			time.Sleep(w.interval)
			continue
		}

		w.report(diff)
		w.trigger(diff)
		time.Sleep(w.sleep)
	}
}

// explore builds a fresh snapshot by running every explorer once, sized by
// the previous cycle's result.
func (w *Watcher) explore(sizeHint int) *snapshot.Snapshot {
	snap := snapshot.New(sizeHint)
	for _, e := range w.explorers {
		e.Explore(snap)
	}
	return snap
}

// report prints the detected change on stdout, coloured when attached to a
// terminal.
func (w *Watcher) report(diff snapshot.Difference) {
	switch diff.Kind {
	case snapshot.DiffNew:
		fmt.Printf("%q is %s\n", diff.Path, w.au.Green("new"))
	case snapshot.DiffModified:
		fmt.Printf("%q was %s\n", diff.Path, w.au.Yellow("modified"))
	case snapshot.DiffDeleted:
		fmt.Printf("%q was %s\n", diff.Path, w.au.Red("deleted"))
	}
}

// trigger substitutes the difference into the command template and runs
// the result through the shell, inheriting this process's stdio. The
// command's exit status is observed but not interpreted; failure to launch
// is reported and the loop carries on.
func (w *Watcher) trigger(diff snapshot.Difference) {
	command := Substitute(w.template, diff)
	w.log.Debug("running command", zap.String("command", command))

	cmd := exec.Command(w.shell, "-c", command)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		if _, ok := err.(*exec.ExitError); ok {
			w.log.Debug("command exited with an error", zap.String("command", command), zap.Error(err))
		} else {
			w.log.Error("could not run command", zap.String("command", command), zap.Error(err))
		}
	}
}
