package main

import (
	"context"
	"flag"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"syscall"

	"github.com/adrianliechti/mysearch/config"
	"github.com/adrianliechti/mysearch/pkg/otel"
	"github.com/adrianliechti/mysearch/server"
)

var version = "dev"

func main() {
	configFlag := flag.String("config", "", "config file")
	addressFlag := flag.String("address", "", "listen address")

	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := otel.Setup(ctx, "mysearch", version); err != nil {
		slog.Error("failed to setup telemetry", "error", err)
		os.Exit(1)
	}

	cfg, err := config.Parse(*configFlag)

	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	if port := os.Getenv("PORT"); port != "" {
		host, _, _ := net.SplitHostPort(cfg.Address)
		cfg.Address = net.JoinHostPort(host, port)
	}

	if *addressFlag != "" {
		cfg.Address = *addressFlag
	}

	s, err := server.New(cfg)

	if err != nil {
		slog.Error("failed to create server", "error", err)
		os.Exit(1)
	}

	if err := s.ListenAndServe(ctx); err != nil {
		slog.Error("server stopped", "error", err)
		os.Exit(1)
	}
}
