package app_test

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"
	"go.trai.ch/seam/adapters/config"
	"go.trai.ch/seam/adapters/logger"
	"go.trai.ch/seam/adapters/teaview"
	"go.trai.ch/seam/adapters/telemetry"
	"go.trai.ch/seam/domain"
	"go.trai.ch/seam/internal/app"
	"go.trai.ch/seam/ports/mocks"
	"go.uber.org/mock/gomock"
)

func quietTeaOptions(input io.Reader) []tea.ProgramOption {
	return []tea.ProgramOption{
		tea.WithInput(input),
		tea.WithOutput(io.Discard),
		tea.WithoutSignalHandler(),
		tea.WithoutRenderer(),
	}
}

func newTestApp(settings config.Settings, input io.Reader) *app.App {
	log := logger.New()
	log.SetOutput(io.Discard)

	return app.New(settings, config.NewLoader(log), teaview.New(log), log, telemetry.NewNoop()).
		WithTeaOptions(quietTeaOptions(input)...)
}

func TestApp_Run_QuitKey(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	a := newTestApp(config.DefaultSettings(), strings.NewReader("q"))
	require.NoError(t, a.Run(ctx, app.RunOptions{NoWatch: true}))
}

func TestApp_Run_ContextCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	errCh := make(chan error, 1)
	go func() {
		errCh <- newTestApp(config.DefaultSettings(), strings.NewReader("")).Run(ctx, app.RunOptions{NoWatch: true})
	}()

	time.Sleep(100 * time.Millisecond)
	cancel()

	select {
	case err := <-errCh:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after context cancellation")
	}
}

func TestApp_Run_InvalidLogLevel(t *testing.T) {
	settings := config.DefaultSettings()
	settings.Log.Level = "verbose"

	err := newTestApp(settings, strings.NewReader("")).Run(context.Background(), app.RunOptions{NoWatch: true})
	require.ErrorIs(t, err, domain.ErrInvalidLogLevel)
}

func TestApp_Run_CacheDisabledSetting(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	settings := config.DefaultSettings()
	settings.Cache.Enabled = false

	a := newTestApp(settings, strings.NewReader("q"))
	require.NoError(t, a.Run(ctx, app.RunOptions{NoWatch: true}))
}

func TestApp_Run_ForeignAdapter(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	log := logger.New()
	log.SetOutput(io.Discard)
	adapter := mocks.NewMockPlatformAdapter(ctrl)

	a := app.New(config.DefaultSettings(), config.NewLoader(log), adapter, log, telemetry.NewNoop())

	err := a.Run(context.Background(), app.RunOptions{NoWatch: true})
	require.Error(t, err)
	require.Contains(t, err.Error(), "platform adapter")
}

func TestApp_Run_WatchesSettingsFile(t *testing.T) {
	tmp := t.TempDir()
	t.Chdir(tmp)

	path := filepath.Join(tmp, config.FileName)
	require.NoError(t, os.WriteFile(path, []byte("cache:\n  enabled: true\n"), 0o600))

	log := logger.New()
	log.SetOutput(io.Discard)
	a := app.New(config.DefaultSettings(), config.NewLoader(log), teaview.New(log), log, telemetry.NewNoop()).
		WithTeaOptions(quietTeaOptions(strings.NewReader(""))...)

	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)
	go func() {
		errCh <- a.Run(ctx, app.RunOptions{})
	}()

	// Give the watcher time to start, rewrite the file, then shut down.
	time.Sleep(200 * time.Millisecond)
	require.NoError(t, os.WriteFile(path, []byte("cache:\n  enabled: false\n"), 0o600))
	time.Sleep(300 * time.Millisecond)
	cancel()

	select {
	case err := <-errCh:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after context cancellation")
	}
}
