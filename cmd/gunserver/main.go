/*
 * Copyright (C) 2023 by Jason Figge
 */

package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"gungame/internal/logging"
	"gungame/internal/server"
)

func main() {
	debug := flag.Bool("debug", false, "log every request")
	flag.Parse()

	log := logging.Console("gunserver", *debug)

	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Fatal().Err(err).Msg("failed to load .env")
	}
	addr := getenv("GUNGAME_ADDR", server.DefaultAddr)
	webDir := getenv("GUNGAME_WEB_DIR", server.DefaultWebDir)

	router, err := server.NewRouter(webDir, log)
	if err != nil {
		log.Fatal().Err(err).Str("dir", webDir).Msg("failed to build router")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := server.Run(ctx, addr, router, log); err != nil {
		log.Fatal().Err(err).Msg("server failed")
	}
	log.Info().Msg("stopped")
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
