// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package design reads experiment design files, which list the
// displays of an experiment by stimulus type together with parameter
// assignments and timer overrides, and builds the displays.
//
// Design files are TOML or YAML. A parameter value that is a string
// starting with "=" is a Go expression, evaluated whenever the
// parameter is read:
//
//	version = "1.0"
//	trials = 10
//
//	[[display]]
//	type = "Fixation"
//	name = "Fix"
//	params = { Size = 30, TargetSize = "=2 * Num(\"Trial.Fix.Size\")" }
//
//	[[display.timer]]
//	group = 1
//	duration = 200
package design

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"cogentcore.org/pxlab/timing"
	"github.com/Masterminds/semver/v3"
	"github.com/mitchellh/go-homedir"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Version is the design file format version written by this package.
const Version = "1.1.0"

// Supported is the range of design file versions that can be read.
const Supported = ">= 1.0, < 2.0"

// File is a design file.
type File struct {

	// Version is the format version of the file.
	Version string `toml:"version" yaml:"version"`

	// Title is a free form description.
	Title string `toml:"title" yaml:"title"`

	// Trials is the number of trials to run; 0 means 1.
	Trials int `toml:"trials" yaml:"trials"`

	// Displays are the displays of one trial, in presentation order.
	Displays []Display `toml:"display" yaml:"display"`
}

// Display describes one display.
type Display struct {

	// Type is the registered stimulus type.
	Type string `toml:"type" yaml:"type"`

	// Name is the instance name, which defaults to the type.
	Name string `toml:"name" yaml:"name"`

	// Params assigns parameters by their short names.
	Params map[string]any `toml:"params" yaml:"params"`

	// Timers override the timers of timing groups.
	Timers []Timer `toml:"timer" yaml:"timer"`
}

// Timer overrides the timer of one timing group.
type Timer struct {
	Group        int `toml:"group" yaml:"group"`
	timing.Timer `yaml:",inline"`
}

// Formats are the design file formats.
type Formats int32

const (
	TOML Formats = iota
	YAML
)

// FormatOf returns the format for a file name from its extension.
func FormatOf(filename string) (Formats, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".toml":
		return TOML, nil
	case ".yaml", ".yml":
		return YAML, nil
	}
	return TOML, fmt.Errorf("design: unknown file type %q", filepath.Ext(filename))
}

// Open reads and checks the design file with the given name, which may
// start with ~ for the home directory.
func Open(filename string) (*File, error) {
	path, err := homedir.Expand(filename)
	if err != nil {
		return nil, err
	}
	format, err := FormatOf(path)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	df, err := Read(f, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	return df, nil
}

// Read reads and checks a design file in the given format.
func Read(r io.Reader, format Formats) (*File, error) {
	df := &File{}
	switch format {
	case YAML:
		d := yaml.NewDecoder(r)
		d.KnownFields(true)
		if err := d.Decode(df); err != nil && err != io.EOF {
			return nil, err
		}
	default:
		d := toml.NewDecoder(r)
		d.DisallowUnknownFields()
		if err := d.Decode(df); err != nil {
			return nil, err
		}
	}
	return df, df.Check()
}

// Write writes the design file in the given format.
func Write(w io.Writer, df *File, format Formats) error {
	if format == YAML {
		e := yaml.NewEncoder(w)
		e.SetIndent(2)
		if err := e.Encode(df); err != nil {
			return err
		}
		return e.Close()
	}
	return toml.NewEncoder(w).Encode(df)
}

// String returns the file in TOML.
func (df *File) String() string {
	var b bytes.Buffer
	if err := Write(&b, df, TOML); err != nil {
		return err.Error()
	}
	return b.String()
}

// Check checks the version and the displays of the file.
func (df *File) Check() error {
	if df.Version == "" {
		return fmt.Errorf("design: missing version, need %s", Supported)
	}
	v, err := semver.NewVersion(df.Version)
	if err != nil {
		return fmt.Errorf("design: version %q: %w", df.Version, err)
	}
	c, err := semver.NewConstraint(Supported)
	if err != nil {
		return err
	}
	if !c.Check(v) {
		return fmt.Errorf("design: version %s not supported, need %s", v, Supported)
	}
	if df.Trials < 0 {
		return fmt.Errorf("design: negative number of trials %d", df.Trials)
	}
	names := map[string]bool{}
	for i := range df.Displays {
		dd := &df.Displays[i]
		if dd.Type == "" {
			return fmt.Errorf("design: display %d has no type", i)
		}
		if dd.Name == "" {
			dd.Name = dd.Type
		}
		if names[dd.Name] {
			return fmt.Errorf("design: duplicate display name %q", dd.Name)
		}
		names[dd.Name] = true
	}
	return nil
}

// NumTrials returns the number of trials to run.
func (df *File) NumTrials() int {
	return max(df.Trials, 1)
}
