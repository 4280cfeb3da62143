/*
 * Copyright (C) 2023 by Jason Figge
 */

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"

	"github.com/gdamore/tcell/v2"

	"gungame/internal/audio"
	"gungame/internal/game"
	"gungame/internal/logging"
	"gungame/internal/termview"
)

func main() {
	configPath := flag.String("config", "", "YAML game configuration")
	logDir := flag.String("logdir", "logs", "directory for the debug log")
	debugLog := flag.Bool("debug", false, "write a debug log")
	mute := flag.Bool("mute", false, "disable sound")
	flag.Parse()

	if err := run(*configPath, *logDir, *debugLog, *mute); err != nil {
		fmt.Fprintln(os.Stderr, "gunterm:", err)
		os.Exit(1)
	}
}

func run(configPath, logDir string, debugLog, mute bool) error {
	log, closer, err := logging.File(logDir, "gunterm", debugLog)
	if err != nil {
		return err
	}
	if closer != nil {
		defer closer.Close()
	}

	cfg, err := game.LoadConfig(configPath)
	if err != nil {
		return err
	}
	session, err := game.NewSession(cfg, log)
	if err != nil {
		return err
	}

	sounds := audio.NewSoundManager()
	sounds.SetMuted(mute)
	if err := sounds.Initialize(); err != nil {
		log.Warn().Err(err).Msg("sound disabled")
	}
	defer sounds.Cleanup()

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			fmt.Fprintf(os.Stderr, "gunterm crashed: %v\n%s\n", r, debug.Stack())
			os.Exit(1)
		}
	}()
	screen.EnableMouse(tcell.MouseMotionEvents)
	screen.HideCursor()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	view := termview.New(screen, session, sounds, log)
	err = view.Run(ctx, screen.PollEvent)
	screen.Fini()
	fmt.Println("Game over. Score:", session.HUD().ScoreText())
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
