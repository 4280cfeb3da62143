/*
 * Copyright (C) 2023 by Jason Figge
 */

package main

import (
	"flag"
	"fmt"
	"os"

	"gungame/internal"
	"gungame/internal/audio"
	"gungame/internal/game"
	"gungame/internal/graphics"
	"gungame/internal/logging"
)

const (
	screenWidth  = 1200
	screenHeight = 600
)

func main() {
	configPath := flag.String("config", "", "YAML game configuration")
	width := flag.Int("width", screenWidth, "window width")
	height := flag.Int("height", screenHeight, "window height")
	debug := flag.Bool("debug", false, "enable debug logging")
	mute := flag.Bool("mute", false, "disable sound")
	flag.Parse()

	log := logging.Console("gungame", *debug)

	cfg, err := game.LoadConfig(*configPath)
	if err != nil {
		log.Fatal().Err(err).Str("path", *configPath).Msg("failed to load config")
	}
	session, err := game.NewSession(cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create session")
	}

	sounds := audio.NewSoundManager()
	sounds.SetMuted(*mute)
	if err := sounds.Initialize(); err != nil {
		log.Warn().Err(err).Msg("sound disabled")
	}
	defer sounds.Cleanup()

	controller := internal.NewController(session, sounds, log, int32(*width), int32(*height))
	if err := graphics.Open("Gun Game", int32(*width), int32(*height), controller); err != nil {
		log.Error().Err(err).Msg("graphics failed")
		os.Exit(1)
	}
	fmt.Println("Game over. Score:", session.HUD().ScoreText())
}
