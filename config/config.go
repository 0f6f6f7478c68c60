// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config contains the configuration of the pxlab tool:
// the screen, presentation and logging settings, read from a TOML
// file over built in defaults.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"cogentcore.org/pxlab/base/reflectx"
	"cogentcore.org/pxlab/events/key"
	"github.com/mitchellh/go-homedir"
	"github.com/pelletier/go-toml/v2"
)

// DefaultFile is the configuration file used when none is given.
const DefaultFile = "~/.config/pxlab/config.toml"

// Config is the main config struct that contains all of the
// configuration options for the pxlab tool.
type Config struct {

	// Screen is the presentation surface.
	Screen Screen `toml:"screen"`

	// Run holds the presentation options.
	Run Run `toml:"run"`

	// Log holds the logging options.
	Log Log `toml:"log"`
}

type Screen struct {

	// the width of the screen in pixels
	Width int `toml:"width" default:"1024"`

	// the height of the screen in pixels
	Height int `toml:"height" default:"768"`

	// the refresh rate in Hz
	RefreshRate float64 `toml:"refresh_rate" default:"60"`

	// the luminance of the screen white in cd/m²
	WhiteLuminance float64 `toml:"white_luminance" default:"100"`
}

type Run struct {

	// the key aborting a presentation
	AbortKey string `toml:"abort_key" default:"escape"`

	// whether to pace presentation with the wall clock instead of
	// running as fast as possible
	RealTime bool `toml:"real_time"`

	// the directory to save presented frames to as PNG files; none if empty
	Frames string `toml:"frames"`

	// the delay before re-running after a watched design file changed
	Debounce time.Duration `toml:"debounce" default:"200ms"`
}

type Log struct {

	// the minimum level of log messages: debug, info, warn or error
	Level string `toml:"level" default:"warn"`
}

// Default returns the default configuration.
func Default() *Config {
	c := &Config{}
	if err := reflectx.SetFromDefaultTags(c); err != nil {
		panic(err)
	}
	return c
}

// Open reads the configuration file with the given name over the
// defaults. The name may start with ~ for the home directory. A missing
// [DefaultFile] is not an error.
func Open(filename string) (*Config, error) {
	c := Default()
	if filename == "" {
		filename = DefaultFile
	}
	path, err := homedir.Expand(filename)
	if err != nil {
		return c, err
	}
	b, err := os.ReadFile(path)
	if err != nil {
		if filename == DefaultFile && errors.Is(err, fs.ErrNotExist) {
			return c, nil
		}
		return c, err
	}
	if err := toml.Unmarshal(b, c); err != nil {
		return c, fmt.Errorf("%s: %w", filename, err)
	}
	return c, c.Check()
}

// Save writes the configuration to the file with the given name,
// creating its directory as needed.
func (c *Config) Save(filename string) error {
	path, err := homedir.Expand(filename)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	b, err := toml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(path, b, 0o644)
}

// Check checks the configuration values.
func (c *Config) Check() error {
	var errs []error
	if c.Screen.Width <= 0 || c.Screen.Height <= 0 {
		errs = append(errs, fmt.Errorf("config: invalid screen size %dx%d", c.Screen.Width, c.Screen.Height))
	}
	if c.Screen.RefreshRate <= 0 {
		errs = append(errs, fmt.Errorf("config: invalid refresh rate %g", c.Screen.RefreshRate))
	}
	if c.Screen.WhiteLuminance <= 0 {
		errs = append(errs, fmt.Errorf("config: invalid white luminance %g", c.Screen.WhiteLuminance))
	}
	if _, err := c.Run.Abort(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// Abort returns the abort key code.
func (r *Run) Abort() (key.Codes, error) {
	return key.ParseCode(r.AbortKey)
}

// Period returns the refresh period of the screen.
func (s *Screen) Period() time.Duration {
	return time.Duration(float64(time.Second) / s.RefreshRate)
}
