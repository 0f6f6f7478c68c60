// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"image"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"cogentcore.org/pxlab/base/iox/imagex"
	"cogentcore.org/pxlab/colors"
	"cogentcore.org/pxlab/design"
	"cogentcore.org/pxlab/display"
	"cogentcore.org/pxlab/events"
	"cogentcore.org/pxlab/events/key"
	"cogentcore.org/pxlab/expar"
	"cogentcore.org/pxlab/paint"
	"cogentcore.org/pxlab/present"
	"cogentcore.org/pxlab/timing"
	"github.com/fsnotify/fsnotify"
	"github.com/mitchellh/go-homedir"
	"github.com/spf13/cobra"
)

// runOptions are the flags of the run command.
type runOptions struct {
	frames    string
	watch     bool
	realTime  bool
	trials    int
	responses []string
}

func newRunCmd(a *app) *cobra.Command {
	o := &runOptions{}
	cmd := &cobra.Command{
		Use:   "run <design>",
		Short: "present the displays of a design file",
		Long: `Run presents the displays of a TOML or YAML design file for the
number of trials it asks for, and prints the outcome of every timing
group and the output parameters of every display.

Responses can be scripted with --respond, as a key name or a pointer
click at centered screen coordinates, followed by the time from the
start of each presentation: "space@500ms", "click:-80,-40@3s".`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if o.frames == "" {
				o.frames = a.config.Run.Frames
			}
			o.realTime = o.realTime || a.config.Run.RealTime
			out := cmd.OutOrStdout()
			if !o.watch {
				return a.run(cmd.Context(), out, args[0], o)
			}
			return a.watch(cmd.Context(), args[0], func(ctx context.Context) error {
				return a.run(ctx, out, args[0], o)
			})
		},
	}
	f := cmd.Flags()
	f.StringVar(&o.frames, "frames", "", "save presented frames as PNG files in this directory")
	f.BoolVar(&o.watch, "watch", false, "run again whenever the design file changes")
	f.BoolVar(&o.realTime, "real-time", false, "pace presentation with the wall clock")
	f.IntVar(&o.trials, "trials", 0, "the number of trials, overriding the design file")
	f.StringArrayVar(&o.responses, "respond", nil, "a scripted response, key@time or click:x,y@time (repeatable)")
	return cmd
}

// run presents the design file once and writes the results to out.
func (a *app) run(ctx context.Context, out io.Writer, filename string, o *runOptions) error {
	df, err := design.Open(filename)
	if err != nil {
		return err
	}
	script, err := parseScript(o.responses)
	if err != nil {
		return err
	}
	abort, err := a.config.Run.Abort()
	if err != nil {
		return err
	}
	colors.WhiteLuminance = a.config.Screen.WhiteLuminance

	scr := a.config.Screen
	screen := paint.NewImage(image.Pt(scr.Width, scr.Height))
	if o.frames != "" {
		if err := os.MkdirAll(o.frames, 0o755); err != nil {
			return err
		}
		screen.OnPresent = func(img *image.RGBA) error {
			return imagex.Save(img, filepath.Join(o.frames, fmt.Sprintf("frame-%05d.png", screen.Presents)))
		}
	}
	var clock present.Clock = present.NewSimClock(scr.Period())
	if o.realTime {
		clock = present.NewRealClock(scr.RefreshRate)
	}
	sc := &scriptClock{Clock: clock, script: script}
	sched := present.NewScheduler(sc, screen)
	sched.AbortKey = abort
	sc.sched = sched

	rec := &recorder{}
	ctrl := present.NewController(sched)
	ctrl.OnStage = func(d *display.Display, st present.Stages) {
		if st == present.StagePresent {
			rec.display = d
			sc.restart()
		}
	}
	sched.OnTransition = rec.transition

	pctx := expar.NewContext()
	ds, err := design.Build(ctrl, pctx, df)
	if err != nil {
		return err
	}
	trials := df.NumTrials()
	if o.trials > 0 {
		trials = o.trials
	}
	slog.Info("running design", "file", filename, "title", df.Title, "displays", len(ds), "trials", trials)
	results, err := ctrl.RunTrials(ctx, trials, ds...)
	writeResults(out, results, rec.outputs, len(ds))
	for _, d := range ds {
		ctrl.Destroy(d)
	}
	return err
}

// watch runs the design file and runs it again every time it changes,
// until the context is canceled.
func (a *app) watch(ctx context.Context, filename string, run func(ctx context.Context) error) error {
	path, err := homedir.Expand(filename)
	if err != nil {
		return err
	}
	path, err = filepath.Abs(path)
	if err != nil {
		return err
	}
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer w.Close()
	// editors often replace the file, so watch its directory
	if err := w.Add(filepath.Dir(path)); err != nil {
		return err
	}
	runLogged := func() {
		if err := run(ctx); err != nil && ctx.Err() == nil {
			slog.Error("run failed", "file", filename, "err", err)
		}
	}
	runLogged()
	var rerun <-chan time.Time
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != path || !(ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create)) {
				continue
			}
			rerun = time.After(a.config.Run.Debounce)
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			slog.Warn("watching design file", "err", err)
		case <-rerun:
			rerun = nil
			slog.Info("design file changed", "file", filename)
			runLogged()
		}
	}
}

// recorder collects the derived parameters of each display at the end
// of each of its presentations.
type recorder struct {
	display *display.Display
	outputs [][]output
}

// output is the value of a derived parameter after a presentation.
type output struct {
	name  string
	value expar.Value
}

func (r *recorder) transition(t present.Transition) {
	if r.display == nil || (t.State != present.AllGroupsDone && t.State != present.Aborted) {
		return
	}
	var out []output
	for _, p := range r.display.Ctx.Pars(r.display.ParName("")) {
		if p.Kind == expar.Derived {
			out = append(out, output{p.Name, p.Get()})
		}
	}
	r.outputs = append(r.outputs, out)
}

// writeResults writes one block per presentation.
func writeResults(w io.Writer, results []*present.Result, outputs [][]output, ndisplays int) {
	for i, res := range results {
		aborted := ""
		if res.Aborted {
			aborted = " aborted"
		}
		fmt.Fprintf(w, "trial %d %s %v frames=%d%s\n", i/max(ndisplays, 1), res.Display, res.Duration(), res.Frames, aborted)
		for _, g := range res.Groups {
			fmt.Fprintf(w, "  group %d %s %v elapsed=%v ticks=%d", g.Group, timing.KindOf(g.Policy), g.Reason, g.Elapsed, g.Ticks)
			switch g.Reason {
			case timing.KeyResponse:
				fmt.Fprintf(w, " response=%v", key.Codes(g.Response))
			case timing.PointerResponse:
				fmt.Fprintf(w, " response=%v", events.Buttons(g.Response))
			}
			if g.Vetoes > 0 {
				fmt.Fprintf(w, " vetoes=%d", g.Vetoes)
			}
			if g.Err != nil {
				fmt.Fprintf(w, " err=%q", g.Err.Error())
			}
			fmt.Fprintln(w)
		}
		if i < len(outputs) {
			for _, o := range outputs[i] {
				fmt.Fprintf(w, "  %s = %s\n", o.name, o.value)
			}
		}
	}
}
