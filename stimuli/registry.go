// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stimuli

import (
	"fmt"
	"strings"

	"cogentcore.org/pxlab/base/keylist"
	"cogentcore.org/pxlab/display"
	"cogentcore.org/pxlab/expar"
	"github.com/adrg/strutil"
	"github.com/adrg/strutil/metrics"
)

// Factory returns a new behavior and its mixins.
type Factory func() (display.Behavior, []any)

var registry keylist.List[string, Factory]

// Register registers a stimulus type, replacing any previous factory
// for the same name.
func Register(typ string, f Factory) {
	registry.Set(typ, f)
}

// Types returns the registered stimulus types in registration order.
func Types() []string {
	return append([]string(nil), registry.Keys...)
}

// New returns a new display of the given registered type.
func New(ctx *expar.Context, typ, name string) (*display.Display, error) {
	f, ok := registry.AtTry(typ)
	if !ok {
		if s := suggestType(typ); s != "" {
			return nil, fmt.Errorf("stimuli: unknown type %q (did you mean %q?)", typ, s)
		}
		return nil, fmt.Errorf("stimuli: unknown type %q", typ)
	}
	b, mixins := f()
	return display.New(ctx, typ, name, b, mixins...), nil
}

func suggestType(typ string) string {
	lev := metrics.NewLevenshtein()
	best, bestSim := "", 0.5
	for _, k := range registry.Keys {
		if sim := strutil.Similarity(strings.ToLower(typ), strings.ToLower(k), lev); sim > bestSim {
			best, bestSim = k, sim
		}
	}
	return best
}

func init() {
	Register("Fixation", func() (display.Behavior, []any) { return &Fixation{}, nil })
	Register("Arrow", func() (display.Behavior, []any) { return &Arrow{}, nil })
	Register("ContextFields", func() (display.Behavior, []any) { return &ContextFields{}, nil })
	Register("SelectionGrid", func() (display.Behavior, []any) { return &SelectionGrid{}, []any{&Selection{}} })
	Register("Grating", func() (display.Behavior, []any) { return &Grating{}, nil })
	Register("Tone", func() (display.Behavior, []any) { return &Tone{}, nil })
	Register("Picture", func() (display.Behavior, []any) { return &Picture{}, nil })
	Register("Message", func() (display.Behavior, []any) { return &Message{}, nil })
	Register("ColorAdjust", func() (display.Behavior, []any) {
		return &Patch{}, []any{&ColorAdjust{Par: "Color"}}
	})
	Register("Puzzle", func() (display.Behavior, []any) { return &Puzzle{}, []any{&DragMove{}} })
}
