package main

import (
	"fmt"
	"hash/maphash"
	"io"
	"math/rand/v2"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/snowzach/rotatefilehook"
	"github.com/vancomm/minesweeper-tui/internal/config"
	"github.com/vancomm/minesweeper-tui/internal/game"
	"github.com/vancomm/minesweeper-tui/internal/mines"
	"github.com/vancomm/minesweeper-tui/internal/term"
)

var log = logrus.New()

// The terminal belongs to the game while it runs, so logs go to a
// rotating file instead of stdout.
func setupLogging(path string) error {
	hook, err := rotatefilehook.NewRotateFileHook(rotatefilehook.RotateFileConfig{
		Filename:   path,
		MaxSize:    10, // MB
		MaxBackups: 3,
		MaxAge:     28, // days
		Level:      logrus.DebugLevel,
		Formatter:  &logrus.JSONFormatter{},
	})
	if err != nil {
		return fmt.Errorf("create log file hook: %w", err)
	}
	log.SetOutput(io.Discard)
	log.AddHook(hook)
	mines.Log = log
	return nil
}

func createRand(seed uint64) *rand.Rand {
	if seed != 0 {
		return rand.New(rand.NewPCG(seed, 0))
	}
	return rand.New(rand.NewPCG(
		new(maphash.Hash).Sum64(), new(maphash.Hash).Sum64(),
	))
}

func fatal(err error) {
	log.WithError(err).Error("fatal")
	fmt.Fprintln(os.Stderr, "sweeper:", err)
	os.Exit(1)
}

func main() {
	cfg, err := config.Load(os.Getenv("SWEEPER_CONFIG"))
	if err != nil {
		fatal(err)
	}
	if err := setupLogging(cfg.LogFile); err != nil {
		fatal(err)
	}
	log.WithFields(logrus.Fields{
		"width":      cfg.Width,
		"height":     cfg.Height,
		"mine_count": cfg.MineCount,
		"seed":       cfg.Seed,
	}).Info("starting game")

	board := mines.NewBoard(mines.GameParams{
		Width:     cfg.Width,
		Height:    cfg.Height,
		MineCount: cfg.MineCount,
	}, createRand(cfg.Seed))

	screen, err := term.New()
	if err != nil {
		fatal(fmt.Errorf("open terminal: %w", err))
	}

	action, err := game.NewLoop(board, screen, screen, log).Run()
	screen.Fini()
	if err != nil {
		fatal(err)
	}

	// The alternate screen is gone after Fini, so replay the final
	// frame where the closing message can sit under it.
	switch action {
	case game.Lose:
		printFrame(board)
		fmt.Println("GAME OVER!")
	case game.Win:
		printFrame(board)
		fmt.Println("YOU WIN!")
	}
}

func printFrame(board *mines.Board) {
	for _, line := range game.RenderFrame(board) {
		fmt.Println(line)
	}
}
