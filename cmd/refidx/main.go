// Command refidx tabulates the refractive index and normal incidence
// reflectance of library and custom materials over a wavelength grid.
package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/notargets/dielectric/config"
	"github.com/notargets/dielectric/dielectric"
	"github.com/notargets/dielectric/material"
	"github.com/notargets/dielectric/report"
	"github.com/notargets/dielectric/store"
	"github.com/notargets/dielectric/sweep"
)

func main() {
	configPath := flag.String("config", "", "YAML run configuration (defaults when empty)")
	list := flag.Bool("list", false, "list library materials and exit")
	verbose := flag.Bool("v", false, "debug logging")
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	if *list {
		listLibrary(os.Stdout)
		return
	}

	cfg := config.Default()
	if *configPath != "" {
		var err error
		if cfg, err = config.Load(*configPath); err != nil {
			slog.Error("failed to load config", "error", err)
			os.Exit(1)
		}
		slog.Info("config loaded", "path", *configPath)
	}

	if err := run(cfg); err != nil {
		slog.Error("run failed", "error", err)
		os.Exit(1)
	}
}

func listLibrary(w io.Writer) {
	for _, name := range material.Names() {
		m, _ := material.Lookup(name)
		line := fmt.Sprintf("%-8s %d terms", name, len(m.Susceptibilities()))
		if r, ok := m.ValidRange(); ok {
			line += fmt.Sprintf(", %.3g µm to %.3g µm", 1/r.Max, 1/r.Min)
		}
		fmt.Fprintln(w, line)
	}
}

func run(cfg *config.Config) error {
	mats, err := cfg.Resolve()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(cfg.Output.Dir, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	var db *store.DB
	if cfg.Output.Database != "" {
		if db, err = store.Open(cfg.Output.Database); err != nil {
			return err
		}
		defer db.Close()
		slog.Info("database opened", "path", cfg.Output.Database)
	}

	wls, err := sweep.Wavelengths(cfg.Sweep)
	if err != nil {
		return err
	}
	stats := sweep.Statistics(sweep.PartitionSamples(len(wls), cfg.Sweep.Workers))
	slog.Debug("sweep layout",
		"samples", humanize.Comma(int64(len(wls))),
		"partitions", stats.NumPartitions,
		"imbalance", fmt.Sprintf("%.3f", stats.Imbalance),
	)

	for _, m := range mats {
		if err := runMaterial(cfg, db, m); err != nil {
			return fmt.Errorf("%s: %w", m.Name(), err)
		}
	}
	return nil
}

func runMaterial(cfg *config.Config, db *store.DB, m dielectric.Material) error {
	start := time.Now()
	samples, err := sweep.Run(m, cfg.Sweep)
	if err != nil {
		return err
	}
	if r, ok := m.ValidRange(); ok {
		first, last := samples[0], samples[len(samples)-1]
		if !r.Contains(first.Frequency) || !r.Contains(last.Frequency) {
			slog.Warn("sweep leaves the fitted range", "material", m.Name(),
				"fit_min_um", 1/r.Max, "fit_max_um", 1/r.Min)
		}
	}

	base := filepath.Join(cfg.Output.Dir, "Ref_"+m.Name())
	table := base + ".csv"
	if err := writeTable(table, samples); err != nil {
		return err
	}
	outputs := []string{table}
	if cfg.Output.Plot {
		if err := report.Plot(samples, m.Name(), base+".png"); err != nil {
			return err
		}
		outputs = append(outputs, base+".png")
	}
	for _, path := range outputs {
		info, err := os.Stat(path)
		if err != nil {
			return err
		}
		slog.Info("wrote", "file", path, "size", humanize.Bytes(uint64(info.Size())))
	}

	lo, hi := sweep.Extrema(samples)
	slog.Info("swept",
		"material", m.Name(),
		"samples", len(samples),
		"min_reflectance", fmt.Sprintf("%.4f @ %.2f µm", lo.Reflectance, lo.Wavelength),
		"max_reflectance", fmt.Sprintf("%.4f @ %.2f µm", hi.Reflectance, hi.Wavelength),
		"elapsed", time.Since(start),
	)

	if db != nil {
		id, err := db.SaveRun(m.Name(), cfg.Sweep, samples)
		if err != nil {
			return fmt.Errorf("archive: %w", err)
		}
		slog.Info("archived", "material", m.Name(), "run", id)
	}
	return nil
}

func writeTable(path string, samples []sweep.Sample) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := report.WriteTable(f, samples); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
