package main

import (
	"bytes"
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/mmd/internal/adapters/telemetry"
	"go.trai.ch/mmd/internal/app"
	"go.trai.ch/mmd/internal/core/domain"
	"go.trai.ch/mmd/internal/core/ports/mocks"
	"go.trai.ch/mmd/internal/engine/renderer"
	"go.uber.org/mock/gomock"
)

func newTestComponents(t *testing.T, ctrl *gomock.Controller) (*app.Components, *mocks.MockLogger) {
	t.Helper()

	mockLogger := mocks.NewMockLogger(ctrl)

	loc := mocks.NewMockToolLocator(ctrl)
	loc.EXPECT().Current().Return("", false).AnyTimes()
	loc.EXPECT().IsConfigured().Return(false).AnyTimes()

	coordinator := renderer.New(
		loc,
		mocks.NewMockArtifactCache(ctrl),
		mocks.NewMockInvoker(ctrl),
		mockLogger,
		telemetry.NewNoOpTracer(),
		time.Second,
	)

	settings := domain.DefaultSettings()
	settings.CacheDir = t.TempDir()

	return &app.Components{
		App:    app.New(coordinator, mockLogger, settings),
		Logger: mockLogger,
	}, mockLogger
}

// TestRun_Success verifies that run returns 0 when the command succeeds.
func TestRun_Success(t *testing.T) {
	ctrl := gomock.NewController(t)

	components, _ := newTestComponents(t, ctrl)

	provider := func(_ context.Context) (*app.Components, func(), error) {
		return components, func() {}, nil
	}

	stderr := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"version"}, stderr, provider)
	assert.Equal(t, 0, exitCode)
}

// TestRun_InitializationError verifies that run returns 1 when component
// initialization fails.
func TestRun_InitializationError(t *testing.T) {
	provider := func(_ context.Context) (*app.Components, func(), error) {
		return nil, nil, errors.New("init failed")
	}

	stderr := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"version"}, stderr, provider)

	assert.Equal(t, 1, exitCode)
	assert.Contains(t, stderr.String(), "Error: init failed")
}

// TestRun_ExecutionError verifies that run returns 1 when the command fails.
func TestRun_ExecutionError(t *testing.T) {
	ctrl := gomock.NewController(t)

	components, mockLogger := newTestComponents(t, ctrl)
	mockLogger.EXPECT().Error(gomock.Any())

	provider := func(_ context.Context) (*app.Components, func(), error) {
		return components, func() {}, nil
	}

	stderr := new(bytes.Buffer)
	missing := filepath.Join(t.TempDir(), "missing.mmd")
	exitCode := run(context.Background(), []string{"render", missing}, stderr, provider)

	assert.Equal(t, 1, exitCode)
}
