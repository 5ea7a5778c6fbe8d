package main

import (
	"log"
	"os"
	"time"

	"github.com/fatih/color"

	"rpsls/internal/config"
	"rpsls/internal/game/move"
	"rpsls/internal/game/opponent"
	"rpsls/internal/session"
)

func main() {
	settings, err := config.Load()
	if err != nil {
		log.Fatalf("Could not load settings: %v", err)
	}
	if settings.NoColor {
		color.NoColor = true
	}

	catalog, err := move.NewCatalog()
	if err != nil {
		// A broken beats-relation is a configuration defect, never a
		// recoverable condition.
		log.Fatalf("Could not build move catalog: %v", err)
	}

	supplier := opponent.NewRandom(catalog, uint64(time.Now().UnixNano()))

	sess := session.New(settings, catalog, supplier, os.Stdin, os.Stdout)
	if err := sess.Run(); err != nil {
		log.Fatalf("Session ended with error: %v", err)
	}
}
