// Command dla grows a diffusion-limited aggregate headlessly, writing PNG
// snapshots and growth telemetry.
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"

	"dendrite/internal/config"
	"dendrite/internal/run"
	"dendrite/internal/telemetry"
)

func main() {
	var opts options
	opts.Bind(flag.CommandLine)
	flag.Parse()

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: opts.level()})))

	if err := runMain(opts); err != nil {
		slog.Error("dla failed", "err", err)
		os.Exit(1)
	}
}

func runMain(opts options) error {
	cfg, err := config.Load(opts.Preset, opts.ConfigPath)
	if err != nil {
		return err
	}
	opts.apply(cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}

	out, err := telemetry.NewOutputManager(cfg.Run.OutputDir, cfg.Telemetry.CSV)
	if err != nil {
		return err
	}
	defer out.Close()
	if err := out.WriteConfig(cfg); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	r := run.New(cfg, out, slog.Default())
	r.SkipImages = opts.NoImages
	res, err := r.Run(ctx)
	if err != nil {
		return err
	}
	slog.Info("wrote snapshots", "count", len(res.Snapshots), "dir", cfg.Run.OutputDir)
	return nil
}
