// Package app implements the application layer for mmd.
package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"go.trai.ch/mmd/internal/adapters/watch"
	"go.trai.ch/mmd/internal/core/domain"
	"go.trai.ch/mmd/internal/core/ports"
	"go.trai.ch/mmd/internal/engine/renderer"
	"go.trai.ch/mmd/internal/ui/style"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// Components bundles the wired application pieces handed to main.
type Components struct {
	App    *App
	Logger ports.Logger
}

// App represents the main application logic.
type App struct {
	coordinator *renderer.Coordinator
	logger      ports.Logger
	settings    *domain.Settings

	stdin  io.Reader
	stdout io.Writer
}

// New creates a new App instance.
func New(coordinator *renderer.Coordinator, log ports.Logger, settings *domain.Settings) *App {
	return &App{
		coordinator: coordinator,
		logger:      log,
		settings:    settings,
		stdin:       os.Stdin,
		stdout:      os.Stdout,
	}
}

// WithStreams overrides stdin and stdout. This is primarily used for testing.
func (a *App) WithStreams(stdin io.Reader, stdout io.Writer) *App {
	if stdin != nil {
		a.stdin = stdin
	}
	if stdout != nil {
		a.stdout = stdout
	}
	return a
}

// RenderOptions configuration for the Render method.
type RenderOptions struct {
	// Output is the artifact destination; empty means stdout.
	Output string
	// Timeout overrides the configured invocation timeout when positive.
	Timeout time.Duration
	// NoCache forces an invocation even when a cached artifact exists.
	NoCache bool
}

// Render renders one diagram read from file, or stdin when file is empty
// or "-", and writes the artifact to opts.Output or stdout.
func (a *App) Render(ctx context.Context, file string, opts RenderOptions) error {
	source, err := a.readSource(file)
	if err != nil {
		return err
	}

	result := a.coordinator.Render(ctx, source, renderCallOpts(opts)...)
	if !result.Success {
		return renderError(result)
	}

	if err := a.writeArtifact(opts.Output, result.Artifact); err != nil {
		return err
	}

	if opts.Output != "" {
		a.logger.Info(fmt.Sprintf("rendered %s in %s", opts.Output, result.Duration.Round(time.Millisecond)))
	}
	return nil
}

// WatchOptions configuration for the Watch method.
type WatchOptions struct {
	// Output is the artifact destination, required in watch mode.
	Output string
	// Timeout overrides the configured invocation timeout when positive.
	Timeout time.Duration
}

// Watch re-renders file into opts.Output whenever it changes, after the
// configured idle window. Failed renders write an inline error SVG so the
// preview never goes stale silently. Watch blocks until ctx is canceled.
func (a *App) Watch(ctx context.Context, file string, opts WatchOptions) error {
	if opts.Output == "" {
		return zerr.Wrap(domain.ErrWatchFailed, "watch requires an output path")
	}

	tracker := watch.NewTracker()

	renderOnce := func() {
		source, err := os.ReadFile(file)
		if err != nil {
			a.logger.Error(zerr.Wrap(err, "failed to read watched file"))
			return
		}
		if !tracker.Changed(source) {
			return
		}

		result := a.coordinator.Render(ctx, string(source), renderCallOpts(RenderOptions{Timeout: opts.Timeout})...)
		if !result.Success {
			a.logger.Warn(fmt.Sprintf("render failed: %s", result.Message))
			if result.Diagnostics != "" {
				a.logger.Warn(result.Diagnostics)
			}
			_ = a.writeArtifact(opts.Output, errorSVG(renderFailureText(result)))
			return
		}

		if err := a.writeArtifact(opts.Output, result.Artifact); err != nil {
			a.logger.Error(err)
			return
		}
		a.logger.Info(fmt.Sprintf("rendered %s in %s", opts.Output, result.Duration.Round(time.Millisecond)))
	}

	watcher, err := watch.NewWatcher()
	if err != nil {
		return err
	}
	defer func() { _ = watcher.Stop() }()

	if err := watcher.Start(ctx, file); err != nil {
		return err
	}

	debouncer := watch.NewDebouncer(a.settings.DebounceWindow, renderOnce)
	defer debouncer.Stop()

	// Initial render before any event arrives.
	renderOnce()
	a.logger.Info(fmt.Sprintf("watching %s", file))

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		for {
			select {
			case <-ctx.Done():
				return nil
			case _, ok := <-watcher.Events():
				if !ok {
					return nil
				}
				debouncer.Trigger()
			}
		}
	})

	return g.Wait()
}

// Doctor reports the renderer configuration and runs the self test.
func (a *App) Doctor(ctx context.Context) error {
	fmt.Fprintln(a.stdout, style.Heading.Render("mmd doctor"))

	if path, ok := a.coordinator.CurrentTool(); ok {
		fmt.Fprintf(a.stdout, "%s %s\n", style.Label.Render("tool:"), path)
	} else if path, ok := a.coordinator.DiscoverTool(); ok {
		fmt.Fprintf(a.stdout, "%s %s\n", style.Label.Render("tool:"), path)
	} else {
		fmt.Fprintf(a.stdout, "%s %s\n", style.Label.Render("tool:"), style.Bad.Render("not found"))
		fmt.Fprintln(a.stdout, domain.InstallHint)
		return domain.ErrRenderFailed
	}

	fmt.Fprintf(a.stdout, "%s %s\n", style.Label.Render("cache:"), a.settings.CacheDir)

	result := a.coordinator.SelfTest(ctx)
	if !result.Success {
		fmt.Fprintf(a.stdout, "%s %s (%s)\n",
			style.Bad.Render(style.Cross), result.Message, result.Kind)
		return renderError(result)
	}

	fmt.Fprintf(a.stdout, "%s sample render ok in %s\n",
		style.Good.Render(style.Check), result.Duration.Round(time.Millisecond))
	return nil
}

// ToolOptions configuration for the Tool method.
type ToolOptions struct {
	// Path explicitly configures the renderer binary when non-empty.
	Path string
	// Discover forces a fresh search of the executable search path.
	Discover bool
}

// Tool shows, discovers, or explicitly sets the renderer binary path.
func (a *App) Tool(_ context.Context, opts ToolOptions) error {
	switch {
	case opts.Path != "":
		if !a.coordinator.SetToolPath(opts.Path) {
			return zerr.With(zerr.New("not an executable regular file"), "path", opts.Path)
		}
		fmt.Fprintln(a.stdout, opts.Path)
		return nil

	case opts.Discover:
		path, ok := a.coordinator.DiscoverTool()
		if !ok {
			fmt.Fprintln(a.stdout, domain.InstallHint)
			return domain.ErrRenderFailed
		}
		fmt.Fprintln(a.stdout, path)
		return nil

	default:
		path, ok := a.coordinator.CurrentTool()
		if !ok {
			fmt.Fprintln(a.stdout, style.Label.Render("no tool configured"))
			fmt.Fprintln(a.stdout, domain.InstallHint)
			return nil
		}
		fmt.Fprintln(a.stdout, path)
		return nil
	}
}

// Clean removes the artifact cache directory.
func (a *App) Clean(_ context.Context) error {
	root := a.settings.CacheDir

	a.logger.Info(fmt.Sprintf("removing %s...", root))
	if err := os.RemoveAll(root); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrCleanFailed.Error()), "path", root)
	}
	a.logger.Info("removed artifact cache")
	return nil
}

func (a *App) readSource(file string) (string, error) {
	if file == "" || file == "-" {
		data, err := io.ReadAll(a.stdin)
		if err != nil {
			return "", zerr.Wrap(err, "failed to read stdin")
		}
		return string(data), nil
	}

	data, err := os.ReadFile(file)
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, "failed to read diagram"), "path", file)
	}
	return string(data), nil
}

func (a *App) writeArtifact(output, artifact string) error {
	if output == "" {
		_, err := io.WriteString(a.stdout, artifact)
		return err
	}

	if err := os.WriteFile(output, []byte(artifact), domain.FilePerm); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to write artifact"), "path", output)
	}
	return nil
}

func renderCallOpts(opts RenderOptions) []renderer.Option {
	var callOpts []renderer.Option
	if opts.Timeout > 0 {
		callOpts = append(callOpts, renderer.WithTimeout(opts.Timeout))
	}
	if opts.NoCache {
		callOpts = append(callOpts, renderer.WithoutCache())
	}
	return callOpts
}

// renderError converts a failed RenderResult into the error surfaced to
// main, carrying the sentinel that maps to exit code 1.
func renderError(result domain.RenderResult) error {
	err := errors.Join(domain.ErrRenderFailed, errors.New(result.Message))
	if result.Diagnostics != "" {
		err = errors.Join(err, errors.New(result.Diagnostics))
	}
	return err
}

// renderFailureText is the message body of the inline error SVG.
func renderFailureText(result domain.RenderResult) string {
	if result.Diagnostics != "" {
		return result.Message + "\n" + result.Diagnostics
	}
	return result.Message
}
