// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package display provides displays: configured visual stimuli built
// from a [Behavior], optional mixins, and a [List] of paintable
// elements grouped into timing groups.
package display

import (
	"fmt"
	"log/slog"

	"cogentcore.org/pxlab/expar"
	"cogentcore.org/pxlab/math32"
	"cogentcore.org/pxlab/timing"
)

// DefaultPrefix is the default prefix of display parameter names.
const DefaultPrefix = "Trial."

// Display is one configured stimulus. It owns a display list and the
// timing elements of one presentation, and its parameters in the
// shared parameter context.
type Display struct {

	// Name is the instance name, unique among the displays of a context.
	Name string

	// Type is the stimulus type name.
	Type string

	// Prefix is prepended to parameter names.
	Prefix string

	// Ctx is the parameter context.
	Ctx *expar.Context

	// Owner is the writer token of the derived parameters of the display.
	Owner *expar.Owner

	// Behavior provides the hooks of the stimulus.
	Behavior Behavior

	// Mixins are additional behaviors composed into the display.
	Mixins []any

	// List is the display list.
	List List

	// Primary is the index of the primary element returned by Create.
	Primary int

	// Active is the active timing group, or -1 outside of presentation.
	Active int

	created bool
}

// New returns a new display.
func New(ctx *expar.Context, typ, name string, b Behavior, mixins ...any) *Display {
	return &Display{
		Name:     name,
		Type:     typ,
		Prefix:   DefaultPrefix,
		Ctx:      ctx,
		Owner:    &expar.Owner{Name: name},
		Behavior: b,
		Mixins:   mixins,
		Active:   -1,
	}
}

func (d *Display) String() string {
	return d.Type + " " + d.Name
}

// Created returns whether Create has run.
func (d *Display) Created() bool {
	return d.created
}

// Create runs the Create hooks of the behavior and the mixins. It does
// nothing if the display was already created.
func (d *Display) Create() {
	if d.created {
		return
	}
	d.Primary = d.Behavior.Create(d)
	for _, m := range d.Mixins {
		if c, ok := m.(Creator); ok {
			c.CreateMixin(d)
		}
	}
	d.created = true
}

// Destroy removes the parameters of the display from the context.
func (d *Display) Destroy() {
	n := d.Ctx.RemovePrefix(d.ParName(""))
	slog.Debug("display destroyed", "display", d.Name, "pars", n)
	d.created = false
}

// Hooks returns the behavior followed by the mixins, the order in which
// optional hooks are called.
func (d *Display) Hooks() []any {
	hs := make([]any, 0, 1+len(d.Mixins))
	hs = append(hs, d.Behavior)
	return append(hs, d.Mixins...)
}

// ParName returns the full name of the display parameter with the
// given short name.
func (d *Display) ParName(name string) string {
	return d.Prefix + d.Name + "." + name
}

// Par returns the display parameter with the given short name.
func (d *Display) Par(name string) (*expar.Par, error) {
	return d.Ctx.Par(d.ParName(name))
}

// NewPar returns the constant display parameter with the given short
// name, creating it with the default value if it does not exist yet.
func (d *Display) NewPar(name string, typ expar.Types, def expar.Value) *expar.Par {
	return d.newPar(name, expar.Constant, typ, def, nil)
}

// NewDerived returns the derived display parameter with the given
// short name, creating it if it does not exist yet. It is written by
// the display with [Display.Set].
func (d *Display) NewDerived(name string, typ expar.Types, def expar.Value) *expar.Par {
	return d.newPar(name, expar.Derived, typ, def, d.Owner)
}

func (d *Display) newPar(name string, kind expar.Kinds, typ expar.Types, def expar.Value, owner *expar.Owner) *expar.Par {
	full := d.ParName(name)
	if p, ok := d.Ctx.Lookup(full); ok {
		return p
	}
	p, err := d.Ctx.New(full, kind, typ, def, owner)
	if err != nil {
		// only reachable with a nil owner for a derived parameter
		panic(err)
	}
	return p
}

// Set writes a parameter on behalf of the display. Errors are reported
// as configuration errors and leave the parameter unchanged.
func (d *Display) Set(p *expar.Par, v expar.Value) {
	if err := p.Assign(d.Owner, v); err != nil {
		d.Ctx.ReportConfigError(p, err)
	}
}

// Enter appends an element visible in the given timing groups and
// returns its index.
func (d *Display) Enter(el Element, groups ...int) int {
	return d.List.Append(el, Groups(groups...))
}

// EnterTiming adds or replaces the timing element of a group, creating
// its parameters: the Duration override and the Time, Code and
// Response outputs, named Group<g>.*.
func (d *Display) EnterTiming(group int, policy timing.Policy) *timing.Element {
	g := fmt.Sprintf("Group%d.", group)
	te := &timing.Element{
		Group:    group,
		Policy:   policy,
		Duration: d.NewPar(g+"Duration", expar.Double, expar.Value{}),
		Time:     d.NewDerived(g+"Time", expar.Double, expar.DoubleValue(0)),
		Code:     d.NewDerived(g+"Code", expar.Int, expar.IntValue(0)),
		Response: d.NewDerived(g+"Response", expar.Int, expar.IntValue(0)),
	}
	if err := d.List.SetTiming(te); err != nil {
		panic(err)
	}
	return te
}

// Orphans returns the indexes of elements not visible in any timing
// group, which are never painted.
func (d *Display) Orphans() []int {
	return d.List.Orphans(d.List.TimingMask())
}

// Paint paints the elements of the given group in list order.
func (d *Display) Paint(c Canvas, group int) {
	for _, el := range d.List.ElementsIn(Groups(group)) {
		el.Paint(c)
	}
}

// HitTest returns the topmost element of the active group containing
// the point, and its index. Elements of other groups are never hit.
func (d *Display) HitTest(pt math32.Vector2) (int, Element, bool) {
	if d.Active < 0 {
		return -1, nil, false
	}
	m := Groups(d.Active)
	for i := d.List.Len() - 1; i >= 0; i-- {
		if !d.List.Mask(i).Intersects(m) {
			continue
		}
		if el := d.List.At(i); el.Contains(pt) {
			return i, el, true
		}
	}
	return -1, nil, false
}

// IsAnimated returns whether the behavior or a mixin is an [Animator].
func (d *Display) IsAnimated() bool {
	return d.Animator() != nil
}

// Animator returns the first [Animator] among the hooks, or nil.
func (d *Display) Animator() Animator {
	for _, h := range d.Hooks() {
		if a, ok := h.(Animator); ok {
			return a
		}
	}
	return nil
}
