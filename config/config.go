// Package config loads the YAML run configuration of the refidx command.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/notargets/dielectric/dielectric"
	"github.com/notargets/dielectric/material"
	"github.com/notargets/dielectric/sweep"
	"gopkg.in/yaml.v3"
)

// ErrUnknownMaterial is returned by Resolve for a name that is neither in
// the library nor among the custom definitions
var ErrUnknownMaterial = errors.New("config: unknown material")

// Config is the top level run configuration
//
//	materials: [In4p2, Pd]
//	lossy_pd: [0.25, 0.5]
//	sweep:
//	  wavelength_min: 0.5
//	  wavelength_max: 10
//	  wavelength_step: 0.02
//	  substrate_index: 3.8
//	output:
//	  dir: out
//	  plot: true
//	  database: runs.db
//	custom: []
//
// A file that names no materials, loss factors or custom definitions
// sweeps the whole library. Once any of the three is given, only what is
// listed is swept.
type Config struct {
	Materials []string              `yaml:"materials"`
	LossyPd   []float64             `yaml:"lossy_pd"`
	Sweep     sweep.Config          `yaml:"sweep"`
	Output    Output                `yaml:"output"`
	Custom    []material.Definition `yaml:"custom"`
}

// Output selects what a run writes
type Output struct {
	Dir      string `yaml:"dir"`
	Plot     bool   `yaml:"plot"`
	Database string `yaml:"database"` // empty disables the archive
}

// Default scans every library material over the default grid and writes
// tables into the working directory
func Default() *Config {
	return &Config{
		Materials: material.Names(),
		Sweep:     sweep.DefaultConfig(),
		Output:    Output{Dir: "."},
	}
}

// Load reads a YAML configuration file on top of Default
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	cfg := Default()
	cfg.Materials = nil
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	// an explicit "materials: []" decodes to an empty, non-nil slice
	if cfg.Materials == nil && len(cfg.LossyPd) == 0 && len(cfg.Custom) == 0 {
		cfg.Materials = material.Names()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks the configuration for errors
func (c *Config) Validate() error {
	if err := c.Sweep.Validate(); err != nil {
		return err
	}
	if c.Output.Dir == "" {
		return errors.New("output.dir cannot be empty")
	}
	for _, r := range c.LossyPd {
		if math.IsNaN(r) || r < 0 || r > 1 {
			return fmt.Errorf("%w: lossy_pd %g", material.ErrLossFactorRange, r)
		}
	}
	if len(c.Materials) == 0 && len(c.LossyPd) == 0 && len(c.Custom) == 0 {
		return errors.New("nothing to sweep: materials, lossy_pd and custom are all empty")
	}
	return nil
}

// Resolve returns the materials to sweep: named materials first, then the
// lossy palladium variants, then custom definitions not already named.
// Names may refer to the library or to custom definitions.
func (c *Config) Resolve() ([]dielectric.Material, error) {
	custom, err := material.BuildAll(c.Custom)
	if err != nil {
		return nil, err
	}

	var out []dielectric.Material
	seen := make(map[string]bool)
	for _, name := range c.Materials {
		if seen[name] {
			continue
		}
		m, ok := material.Lookup(name)
		if !ok {
			m, ok = custom[name]
		}
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrUnknownMaterial, name)
		}
		seen[name] = true
		out = append(out, m)
	}

	for _, r := range c.LossyPd {
		m, err := material.LossyPd(r)
		if err != nil {
			return nil, err
		}
		if seen[m.Name()] {
			continue
		}
		seen[m.Name()] = true
		out = append(out, m)
	}

	for _, def := range c.Custom {
		if !seen[def.Name] {
			seen[def.Name] = true
			out = append(out, custom[def.Name])
		}
	}
	return out, nil
}
