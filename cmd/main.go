package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"hufschlaeger.net/todo-csv-exporter/internal/cli"
	"hufschlaeger.net/todo-csv-exporter/internal/logger"
	"hufschlaeger.net/todo-csv-exporter/internal/service"
)

func main() {
	cfg, userID, err := cli.ParseArgs(os.Args[1:])
	switch {
	case err == nil:
	case errors.Is(err, cli.ErrUsage):
		fmt.Fprintln(os.Stdout, cli.UsageLine(os.Args[0]))
		os.Exit(1)
	case errors.Is(err, cli.ErrInvalidUserID):
		fmt.Fprintln(os.Stdout, err)
		os.Exit(1)
	default:
		fmt.Fprintf(os.Stderr, "❌ Fehler beim Laden der Konfiguration: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(os.Stderr, cfg.LogLevel, cfg.Verbose)
	if cfg.Verbose {
		cfg.PrintDebugInfo(os.Stderr)
	}

	// Abbruch per Ctrl-C beendet den laufenden Request
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	exporter := service.NewExporter(cfg, os.Stdout, log)

	if err := exporter.Export(ctx, userID); err != nil {
		fmt.Fprintf(os.Stderr, "❌ Export fehlgeschlagen: %v\n", err)
		stop()
		os.Exit(1)
	}
}
