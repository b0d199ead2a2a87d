package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/llehouerou/toaster/internal/errmsg"
	"github.com/llehouerou/toaster/internal/feed"
	"github.com/llehouerou/toaster/internal/toast"
)

func pipeCmd(flags *globalFlags) *cobra.Command {
	var noWait bool

	cmd := &cobra.Command{
		Use:   "pipe",
		Short: "Read toasts from stdin and print queue changes",
		Long: `Read toasts from stdin, one per line:

  [variant:][position:]title[ | description]

for example "destructive:top-center:Disk full | /var is at 98%".
Every queue change is printed to stdout and, with [notify] desktop = true,
mirrored as a desktop notification. After EOF the command waits until
every toast has been dismissed and removed.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return runPipe(ctx, flags, !noWait)
		},
	}

	cmd.Flags().BoolVar(&noWait, "no-wait", false, "exit at EOF without waiting for toasts to be removed")

	return cmd
}

func runPipe(ctx context.Context, flags *globalFlags, drain bool) error {
	cfg, log, opts, err := setup(flags)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	loop := toast.NewLoop()
	loopErr := make(chan error, 1)
	go func() { loopErr <- loop.Run(ctx) }()
	defer loop.Stop()

	q := toast.New(loop, opts...)
	printer := feed.NewPrinter(os.Stdout)

	mirror, err := desktopMirror(cfg, log)
	if err != nil {
		log.Warn("desktop notifications unavailable", zap.Error(err))
		fmt.Fprintln(os.Stderr, errmsg.Format(errmsg.OpDesktopConnect, err))
	}

	if err := loop.Do(func() {
		q.Subscribe(printer.Observe)
		if mirror != nil {
			q.Subscribe(mirror.Observe)
		}
	}); err != nil {
		return err
	}

	log.Info("reading toasts from stdin", zap.Bool("drain", drain))
	err = feed.Feed(ctx, os.Stdin, loop, q, drain, log)
	_ = loop.Do(q.Close)
	loop.Stop()

	switch {
	case err == nil:
		return nil
	case errors.Is(err, context.Canceled):
		log.Info("interrupted")
		return nil
	case errors.Is(err, toast.ErrLoopStopped):
		if lerr := <-loopErr; lerr != nil && !errors.Is(lerr, context.Canceled) {
			return lerr
		}
		return nil
	default:
		return errors.New(errmsg.Format(errmsg.OpFeedRead, err))
	}
}
