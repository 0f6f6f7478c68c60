// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package expar

import (
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"github.com/adrg/strutil"
	"github.com/adrg/strutil/metrics"
	"github.com/cogentcore/yaegi/interp"
)

// Context is an ordered table of parameters addressable by name.
// One Context is shared by the displays of an experiment run and passed
// explicitly to everything that reads parameters by name, instead of
// using process-wide state. A Context is not safe for concurrent use;
// it belongs to the presentation goroutine.
type Context struct {

	// ConfigErrors are the non-fatal configuration errors reported
	// by [Context.ReportConfigError], in order.
	ConfigErrors []error

	pars    []*Par
	indexes map[string]int

	interps   []*interp.Interpreter
	evalDepth int

	// evalErr is the first failed lookup of the running evaluation.
	evalErr error
}

// NewContext returns a new empty [Context].
func NewContext() *Context {
	return &Context{indexes: map[string]int{}}
}

// New creates and adds a parameter. Derived parameters must be given
// an owner, which is the only writer allowed by [Par.Assign].
func (c *Context) New(name string, kind Kinds, typ Types, def Value, owner *Owner) (*Par, error) {
	if kind == Derived && owner == nil {
		return nil, fmt.Errorf("expar.Context.New: derived parameter %s needs an owner", name)
	}
	p := &Par{Name: name, Kind: kind, Type: typ, owner: owner, ctx: c}
	if kind == Expression {
		p.expr = def.String()
	} else {
		p.value = def
		if def.IsSet() {
			p.value = def.As(typ)
		}
	}
	p.initial = p.value
	if err := c.Add(p); err != nil {
		return nil, err
	}
	return p, nil
}

// Add adds an existing parameter, returning an error if the name is
// already in use.
func (c *Context) Add(p *Par) error {
	if c.indexes == nil {
		c.indexes = map[string]int{}
	}
	if _, has := c.indexes[p.Name]; has {
		return fmt.Errorf("expar.Context.Add: parameter %s already exists", p.Name)
	}
	p.ctx = c
	c.indexes[p.Name] = len(c.pars)
	c.pars = append(c.pars, p)
	return nil
}

// Lookup returns the parameter with the given name.
func (c *Context) Lookup(name string) (*Par, bool) {
	i, ok := c.indexes[name]
	if !ok {
		return nil, false
	}
	return c.pars[i], true
}

// Par returns the parameter with the given name, or an error naming
// the most similar known parameter.
func (c *Context) Par(name string) (*Par, error) {
	if p, ok := c.Lookup(name); ok {
		return p, nil
	}
	if s := c.Suggest(name); s != "" {
		return nil, fmt.Errorf("expar: unknown parameter %q (did you mean %q?)", name, s)
	}
	return nil, fmt.Errorf("expar: unknown parameter %q", name)
}

// Suggest returns the known parameter name most similar to name,
// or "" if none is similar enough.
func (c *Context) Suggest(name string) string {
	lev := metrics.NewLevenshtein()
	best, bestSim := "", 0.6
	for _, p := range c.pars {
		sim := strutil.Similarity(strings.ToLower(name), strings.ToLower(p.Name), lev)
		if sim > bestSim {
			best, bestSim = p.Name, sim
		}
	}
	return best
}

// Len returns the number of parameters.
func (c *Context) Len() int {
	return len(c.pars)
}

// Names returns the parameter names in creation order.
func (c *Context) Names() []string {
	names := make([]string, len(c.pars))
	for i, p := range c.pars {
		names[i] = p.Name
	}
	return names
}

// Pars returns the parameters whose names start with prefix,
// in creation order.
func (c *Context) Pars(prefix string) []*Par {
	var ps []*Par
	for _, p := range c.pars {
		if strings.HasPrefix(p.Name, prefix) {
			ps = append(ps, p)
		}
	}
	return ps
}

// RemovePrefix removes all parameters whose names start with prefix,
// returning how many were removed.
func (c *Context) RemovePrefix(prefix string) int {
	n := len(c.pars)
	c.pars = slices.DeleteFunc(c.pars, func(p *Par) bool {
		if strings.HasPrefix(p.Name, prefix) {
			p.ctx = nil
			return true
		}
		return false
	})
	c.indexes = make(map[string]int, len(c.pars))
	for i, p := range c.pars {
		c.indexes[p.Name] = i
	}
	return n - len(c.pars)
}

// Snapshot returns the current values of all parameters whose names
// start with prefix, for reading results after a trial.
func (c *Context) Snapshot(prefix string) map[string]Value {
	m := map[string]Value{}
	for _, p := range c.Pars(prefix) {
		m[p.Name] = p.Get()
	}
	return m
}

// ReportConfigError records a non-fatal configuration error for the
// given parameter (which may be nil) and logs it as a warning. The
// caller is expected to continue with a safe default.
func (c *Context) ReportConfigError(p *Par, err error) {
	if err == nil {
		return
	}
	if p != nil {
		err = fmt.Errorf("%s: %w", p.Name, err)
	}
	c.ConfigErrors = append(c.ConfigErrors, err)
	slog.Warn("parameter value error", "err", err)
}
