package main

import (
	"errors"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/llehouerou/toaster/internal/app"
	"github.com/llehouerou/toaster/internal/errmsg"
	"github.com/llehouerou/toaster/internal/stderr"
	"github.com/llehouerou/toaster/internal/toast"
	"github.com/llehouerou/toaster/internal/ui/toaster"
)

func demoCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Run the interactive toast demo",
		Long: `Run a full-screen demo. Keys 1-8 add a toast at each position,
d/n/b add destructive, borderless and button toasts, x and X dismiss,
c clears and ? shows every key.`,
		Args: cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return runDemo(flags)
		},
	}
}

func runDemo(flags *globalFlags) error {
	cfg, log, opts, err := setup(flags)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	sched := toaster.NewScheduler()
	q := toast.New(sched, opts...)
	defer q.Close()

	ui := cfg.GetUIConfig()
	m := app.New(q, sched, toaster.Options{
		Width:     ui.Width,
		FPS:       ui.FPS,
		Animation: ui.AnimationEnabled(),
		ShowAge:   ui.ShowAge,
	})

	// The mirror subscribes after the toaster so the screen updates first.
	mirror, err := desktopMirror(cfg, log)
	if err != nil {
		log.Warn("desktop notifications unavailable", zap.Error(err))
		q.Add(app.ErrorToast(errmsg.OpDesktopConnect, err))
	}
	if mirror != nil {
		q.Subscribe(mirror.Observe)
	}

	// Keep stray fd 2 writes off the screen; they show up as toasts.
	if err := stderr.Start(); err != nil {
		log.Warn("stderr capture unavailable", zap.Error(err))
	}
	defer stderr.Stop()

	log.Info("starting demo")
	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		stderr.Stop()
		return errors.New(errmsg.Format(errmsg.OpRunUI, err))
	}
	return nil
}
