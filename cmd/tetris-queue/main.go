package main

import (
	"context"
	"fmt"
	"io"
	"math/rand/v2"
	"os"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/huynhanx03/tetris-queue/pkg/logger"
	"github.com/huynhanx03/tetris-queue/pkg/menu"
	"github.com/huynhanx03/tetris-queue/pkg/piece"
	"github.com/huynhanx03/tetris-queue/pkg/piecequeue"
	"github.com/huynhanx03/tetris-queue/pkg/settings"
	"github.com/huynhanx03/tetris-queue/pkg/timer"
)

func main() {
	if err := run(context.Background(), settings.Default(), timer.System, os.Stdin, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "tetris-queue: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg settings.Config, clock timer.Timer, in io.Reader, out io.Writer) error {
	if err := settings.Validate(cfg); err != nil {
		return err
	}

	log, err := logger.New(cfg.Logger)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	kinds, err := piece.ParseKinds(cfg.Queue.Kinds)
	if err != nil {
		return errors.Wrap(err, "settings: queue kinds")
	}

	seed := timer.Seed(clock)
	gen := piece.NewGenerator(rand.NewPCG(seed, seed), kinds...)
	q := piecequeue.New(cfg.Queue.Capacity, gen,
		piecequeue.WithOutput(out),
		piecequeue.WithLogger(log),
	)
	log.Info("starting",
		zap.Int("capacity", cfg.Queue.Capacity),
		zap.Uint64("seed", seed),
	)

	if err := q.Initialize(cfg.Queue.InitialFill); err != nil {
		return err
	}
	return menu.New(q, in, out, log).Run(ctx)
}
