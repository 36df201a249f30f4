// Command syskey keeps the display awake overnight by tapping a key every few
// minutes, then logs how long it ran.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"pkg.jsn.cam/syskey/internal"
	"pkg.jsn.cam/syskey/internal/app"
	"pkg.jsn.cam/syskey/internal/prompt"
	"pkg.jsn.cam/syskey/internal/robot"
)

var (
	debug       = flag.Bool("debug", false, "Run in debug mode (requires -password)")
	password    = flag.String("password", "", "Password that unlocks -debug")
	configPath  = flag.String("config", app.DefaultConfigPath, "TOML config file")
	logFile     = flag.String("log-file", "", "Run log file (overrides log.path)")
	metricsAddr = flag.String("metrics-addr", "", "Serve Prometheus metrics on this address (overrides metrics.addr)")
)

func main() {
	internal.HandleStartup("SYSKEY_")

	cfg, err := app.LoadConfig(*configPath, slog.Default())
	if err != nil {
		slog.Error("can't load config", "path", *configPath, "err", err)
		os.Exit(1)
	}
	if *logFile != "" {
		cfg.Log.Path = *logFile
	}
	if *metricsAddr != "" {
		cfg.Metrics.Addr = *metricsAddr
	}

	mode := app.SelectMode(*password, os.Getenv(cfg.PasswordEnv), *debug)
	lg := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: mode.Level})).With("mode", mode.Name)
	slog.SetDefault(lg)

	defer func() {
		if r := recover(); r != nil {
			lg.Error("panic", "err", r)
			fmt.Println("A critical error occurred. Check the console log for details.")
			os.Exit(1)
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	go func() {
		// After the first interrupt, let a second one kill the process.
		<-ctx.Done()
		stop()
	}()

	if cfg.Metrics.Addr != "" {
		srv, err := app.RegisterMetricsHandler(cfg.Metrics.Addr, lg)
		if err != nil {
			lg.Error("can't start metrics server", "addr", cfg.Metrics.Addr, "err", err)
			os.Exit(1)
		}
		defer srv.Close()
	}

	a := &app.App{
		Config:   cfg,
		Mode:     mode,
		Logger:   lg,
		Out:      os.Stdout,
		Console:  prompt.NewConsole(os.Stdin),
		Presser:  robot.Presser{},
		Observer: app.MetricsObserver{},
	}

	if err := a.Run(ctx); err != nil {
		lg.Error("run failed", "err", err)
		os.Exit(1)
	}
}
