// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package design

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"cogentcore.org/pxlab/display"
	"cogentcore.org/pxlab/expar"
	"cogentcore.org/pxlab/present"
	"cogentcore.org/pxlab/stimuli"
	"cogentcore.org/pxlab/timing"
)

// Build creates the displays of the design file in the given context,
// creating them with the controller, and applies the parameter
// assignments and timer overrides. Errors in assignments are all
// collected and returned together with the displays built.
func Build(c *present.Controller, ctx *expar.Context, df *File) ([]*display.Display, error) {
	var ds []*display.Display
	var errs []error
	for _, dd := range df.Displays {
		d, err := stimuli.New(ctx, dd.Type, dd.Name)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		c.Create(d)
		if err := Apply(d, dd); err != nil {
			errs = append(errs, err)
		}
		ds = append(ds, d)
	}
	return ds, errors.Join(errs...)
}

// Apply applies the parameter assignments and timer overrides of dd
// to a created display.
func Apply(d *display.Display, dd Display) error {
	var errs []error
	names := make([]string, 0, len(dd.Params))
	for name := range dd.Params {
		names = append(names, name)
	}
	slices.Sort(names)
	for _, name := range names {
		if err := assign(d, name, dd.Params[name]); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", d.Name, err))
		}
	}
	for _, t := range dd.Timers {
		if err := override(d, t); err != nil {
			errs = append(errs, fmt.Errorf("%s: group %d: %w", d.Name, t.Group, err))
		}
	}
	return errors.Join(errs...)
}

func assign(d *display.Display, name string, v any) error {
	p, err := d.Par(name)
	if err != nil {
		if s := d.Ctx.Suggest(d.ParName(name)); s != "" {
			return fmt.Errorf("unknown parameter %q (did you mean %q?)", name, strings.TrimPrefix(s, d.ParName("")))
		}
		return fmt.Errorf("unknown parameter %q", name)
	}
	if s, ok := v.(string); ok && strings.HasPrefix(s, "=") {
		return p.SetExpr(strings.TrimSpace(s[1:]))
	}
	val, ok := expar.FromAny(v)
	if !ok {
		return fmt.Errorf("parameter %q: unsupported value %v (%T)", name, v, v)
	}
	return p.Set(val)
}

// override applies a timer override. A duration for a timer of the
// same kind sets the Duration parameter of the group, which survives
// the recomputation of the policy by the stimulus.
func override(d *display.Display, t Timer) error {
	te := d.List.Timing(t.Group)
	if te == nil {
		return fmt.Errorf("no timing group %d", t.Group)
	}
	sameKind := t.Kind == "" || strings.EqualFold(strings.TrimSpace(t.Kind), timing.KindOf(te.Policy))
	if sameKind && t.Duration > 0 && te.Duration != nil {
		if err := te.Duration.Set(expar.DoubleValue(t.Duration)); err != nil {
			return err
		}
	}
	p, err := timing.Override(te.Policy, t.Timer)
	if err != nil {
		return err
	}
	te.Policy = p
	return nil
}
