package main

import (
	"context"
	"log/slog"

	"github.com/spf13/pflag"

	"github.com/heartmarshall/flashcards-backend/internal/app"
	"github.com/heartmarshall/flashcards-backend/internal/config"
	"github.com/heartmarshall/flashcards-backend/internal/transport/rest"
)

// runServe exposes the services over HTTP until the process is signalled.
func runServe(ctx context.Context, c *cli, args []string) error {
	var configPath string
	var port int
	fs := pflag.NewFlagSet("serve", pflag.ContinueOnError)
	fs.SetOutput(c.errOut)
	fs.StringVarP(&configPath, "config", "c", "", "path to YAML config (default $CONFIG_PATH or ./config.yaml)")
	fs.IntVarP(&port, "port", "p", -1, "listen port (default server.port)")
	if err := parseFlags(fs, args); err != nil {
		return err
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if fs.Changed("port") {
		if port < 0 || port > 65535 {
			return usagef("invalid --port %d", port)
		}
		cfg.Server.Port = port
	}
	log := app.NewLogger(cfg.Log, c.errOut)

	a, err := app.New(ctx, cfg, log, nil)
	if err != nil {
		return err
	}
	defer a.Close()

	srv := rest.NewServer(cfg.Server, a.HTTPHandler(cfg), log)
	if err := srv.Serve(ctx); err != nil {
		log.ErrorContext(ctx, "http server failed", slog.String("error", err.Error()))
		return err
	}
	return nil
}
