package main

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/iburimskiy/sliding-scale/internal/carousel"
	"github.com/iburimskiy/sliding-scale/internal/config"
	"github.com/iburimskiy/sliding-scale/internal/console"
	"github.com/iburimskiy/sliding-scale/internal/deck"
	"github.com/iburimskiy/sliding-scale/internal/game"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		os.Exit(1)
	}
}

// run returns instead of exiting so deferred cleanup (speaker, signal
// handlers) happens on every path.
func run(args []string) error {
	cfg, err := config.Parse(args)
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		return err
	}

	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.LogLevel}))
	slog.SetDefault(log)

	d := deck.Default()
	if cfg.DeckPath != "" {
		d, err = deck.Load(cfg.DeckPath)
		if err != nil {
			return fail(cfg, "deck load failed", err)
		}
	}
	focus := d.Focus
	if cfg.Focus >= 0 {
		focus = cfg.Focus
	}

	if cfg.Headless {
		return runConsole(cfg, d, focus, log)
	}

	g, err := game.NewGame(cfg, d, focus, log)
	if err != nil {
		return fail(cfg, "startup failed", err)
	}
	defer g.Close()

	ebiten.SetWindowSize(config.WindowWidth, config.WindowHeight)
	ebiten.SetWindowTitle("Sliding Scale - click a tile, Space: autoplay, O: open deck, Esc/Q: quit")
	ebiten.SetTPS(config.TPS)

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return fail(cfg, "window closed with error", err)
	}
	return nil
}

func runConsole(cfg config.Config, d *deck.Deck, focus int, log *slog.Logger) error {
	car, err := carousel.New(d.IDs(), carousel.Options{Focused: focus, Interval: cfg.Interval})
	if err != nil {
		return fail(cfg, "startup failed", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err = console.New(car, d, os.Stdout, log).Run(ctx, os.Stdin, 0)
	if err != nil && !errors.Is(err, context.Canceled) {
		return fail(cfg, "console stopped", err)
	}
	return nil
}

// fail logs err and, in window mode, shows it in a dialog.
func fail(cfg config.Config, msg string, err error) error {
	slog.Error(msg, "error", err)
	if !cfg.Headless {
		game.ReportFatal(err)
	}
	return err
}
