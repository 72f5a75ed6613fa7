package main

import (
	"errors"
	"flag"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/iburimskiy/particle-intro/internal/config"
	"github.com/iburimskiy/particle-intro/internal/game"
	"github.com/iburimskiy/particle-intro/internal/intro"
)

func main() {
	logger := log.New(os.Stderr, "[particles] ", log.LstdFlags)

	opts, err := config.Parse(os.Args[1:], os.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		logger.Fatalf("parse flags: %v", err)
	}

	session := &intro.Session{}
	if opts.SkipIntro {
		session.MarkSeen()
	}

	ebiten.SetWindowSize(config.WindowWidth, config.WindowHeight)
	ebiten.SetWindowTitle(config.WindowTitle)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	g := game.New(opts, session, logger)
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		logger.Fatalf("run: %v", err)
	}
}
