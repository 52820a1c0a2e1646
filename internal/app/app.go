// Package app implements the application layer for seam.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"go.trai.ch/seam/adapters/config"
	"go.trai.ch/seam/adapters/teaview"
	"go.trai.ch/seam/adapters/telemetry"
	"go.trai.ch/seam/binder"
	"go.trai.ch/seam/domain"
	"go.trai.ch/seam/internal/demo"
	"go.trai.ch/seam/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// App represents the main application logic.
type App struct {
	settings   config.Settings
	loader     *config.Loader
	adapter    ports.PlatformAdapter
	logger     ports.Logger
	tracer     ports.Tracer
	teaOptions []tea.ProgramOption
}

// New creates a new App instance.
func New(
	settings config.Settings,
	loader *config.Loader,
	adapter ports.PlatformAdapter,
	log ports.Logger,
	tracer ports.Tracer,
) *App {
	return &App{
		settings: settings,
		loader:   loader,
		adapter:  adapter,
		logger:   log,
		tracer:   tracer,
	}
}

// WithTeaOptions adds bubbletea program options to the App.
// This is primarily used for testing to disable input/output.
func (a *App) WithTeaOptions(opts ...tea.ProgramOption) *App {
	a.teaOptions = append(a.teaOptions, opts...)
	return a
}

// RunOptions configuration for the Run method.
type RunOptions struct {
	NoWatch bool
}

// Run binds the demo screens, starts the bubbletea program and the
// settings watcher, and blocks until both have terminated.
func (a *App) Run(ctx context.Context, opts RunOptions) error {
	if err := a.applySettings(); err != nil {
		return err
	}

	tracer := a.tracer
	if a.settings.Telemetry.Enabled {
		provider := telemetry.NewProvider(a.logger)
		defer func() {
			_ = provider.Shutdown(ctx)
		}()
	} else {
		tracer = telemetry.NewNoop()
	}

	// The demo drives the load and layout-settle pumps directly, so it
	// needs the concrete adapter rather than the port.
	tv, ok := a.adapter.(*teaview.Adapter)
	if !ok {
		return zerr.With(zerr.New("platform adapter does not drive bubbletea surfaces"),
			"type", fmt.Sprintf("%T", a.adapter))
	}

	screenOpts := []binder.Option{
		binder.WithLogger(a.logger),
		binder.WithTracer(tracer),
	}
	if !a.settings.Cache.Enabled {
		screenOpts = append(screenOpts, binder.WithCacheDisabled())
	}

	screens := make([]*demo.Screen, 0, 2)
	for _, name := range []string{"overview", "details"} {
		s, err := demo.NewScreen(name, tv, screenOpts...)
		if err != nil {
			return zerr.Wrap(err, "failed to create screen")
		}
		screens = append(screens, s)
	}

	model, err := demo.NewModel(tv, a.logger, screens...)
	if err != nil {
		return zerr.Wrap(err, "failed to bind demo views")
	}

	optsTea := append([]tea.ProgramOption{tea.WithContext(ctx)}, a.teaOptions...)
	program := tea.NewProgram(model, optsTea...)

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		_, runErr := program.Run()
		if runErr != nil && !errors.Is(runErr, tea.ErrProgramKilled) {
			return zerr.Wrap(runErr, "demo program failed")
		}
		return nil
	})

	watcher, err := a.startWatcher(ctx, program, opts)
	if err != nil {
		program.Kill()
		_ = g.Wait()
		return err
	}
	if watcher != nil {
		defer func() {
			_ = watcher.Stop()
		}()
	}

	return g.Wait()
}

// applySettings pushes the loaded settings into the logger.
func (a *App) applySettings() error {
	a.logger.SetJSON(a.settings.Log.JSON)

	level, err := config.ParseLevel(a.settings.Log.Level)
	if err != nil {
		return err
	}
	if leveler, ok := a.logger.(interface{ SetLevel(slog.Level) }); ok {
		leveler.SetLevel(level)
	}
	return nil
}

// startWatcher wires settings reloads into the running program. Returns a
// nil watcher when watching is disabled or no settings file exists.
func (a *App) startWatcher(ctx context.Context, program *tea.Program, opts RunOptions) (*config.Watcher, error) {
	if opts.NoWatch {
		return nil, nil
	}

	cwd, err := os.Getwd()
	if err != nil {
		return nil, zerr.Wrap(err, "failed to determine working directory")
	}
	path, err := a.loader.Discover(cwd)
	if err != nil {
		if errors.Is(err, domain.ErrConfigNotFound) {
			a.logger.Debug("no settings file found, live reload disabled")
			return nil, nil
		}
		return nil, err
	}

	watcher, err := config.NewWatcher(path, a.loader, a.logger, func(s config.Settings) {
		program.Send(demo.MsgSettings{Settings: s})
	})
	if err != nil {
		return nil, zerr.Wrap(err, "failed to watch settings file")
	}

	if err := watcher.Start(ctx); err != nil {
		_ = watcher.Stop()
		return nil, err
	}
	return watcher, nil
}
