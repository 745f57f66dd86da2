// Package mermaid invokes the mermaid-cli renderer as a subprocess.
package mermaid

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"go.trai.ch/mmd/internal/core/domain"
	"go.trai.ch/mmd/internal/core/ports"
)

var _ ports.Invoker = (*Invoker)(nil)

// waitDelay bounds how long Wait may block on I/O after the process has been
// killed, so a grandchild holding the stderr pipe cannot stall a timeout.
const waitDelay = time.Second

// Invoker runs the renderer against a temporary input/output pair.
type Invoker struct {
	format domain.Format
	logger ports.Logger
}

// NewInvoker creates an Invoker producing artifacts of the given format.
func NewInvoker(format domain.Format, logger ports.Logger) *Invoker {
	return &Invoker{format: format, logger: logger}
}

// Invoke executes one render attempt. It never returns an error and never
// panics: every outcome is classified into a RenderResult. The scratch
// directory is removed on every exit path.
//
// Classification order is load-bearing: the output artifact is checked
// before the exit code, because renderer CLIs frequently exit non-zero
// (warnings treated as errors) after writing perfectly usable output.
func (i *Invoker) Invoke(ctx context.Context, toolPath, source string, timeout time.Duration) domain.RenderResult {
	scratch, err := os.MkdirTemp("", "mmd-render-*")
	if err != nil {
		return domain.Failed(domain.ErrorKindInternal, "failed to create scratch directory: "+err.Error())
	}
	defer func() { _ = os.RemoveAll(scratch) }()

	inputPath := filepath.Join(scratch, "diagram.mmd")
	outputPath := filepath.Join(scratch, "diagram"+i.format.Extension)

	if err := os.WriteFile(inputPath, []byte(source), domain.PrivateFilePerm); err != nil {
		return domain.Failed(domain.ErrorKindInternal, "failed to write diagram source: "+err.Error())
	}

	cctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	//nolint:gosec // Tool path comes from the validated locator
	cmd := exec.CommandContext(cctx, toolPath, "-i", inputPath, "-o", outputPath)
	cmd.Dir = scratch
	cmd.Stdout = io.Discard
	cmd.WaitDelay = waitDelay

	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if domain.DebugEnabled() {
		i.logger.Info("render command: " + strings.Join(cmd.Args, " "))
	}

	runErr := cmd.Run()

	switch {
	case errors.Is(cctx.Err(), context.DeadlineExceeded):
		// Process killed at the deadline; it may not have emitted anything,
		// so no diagnostics are attached.
		return domain.Failed(domain.ErrorKindTimeout,
			fmt.Sprintf("mermaid render timed out (>%s)", timeout))
	case errors.Is(cctx.Err(), context.Canceled):
		return domain.Failed(domain.ErrorKindInternal, "render canceled")
	}

	// Artifact presence wins over exit status.
	if data, err := os.ReadFile(outputPath); err == nil && i.format.Recognizes(data) {
		return domain.Succeeded(string(data))
	}

	if runErr != nil {
		var exitErr *exec.ExitError
		if errors.As(runErr, &exitErr) {
			return domain.FailedWithDiagnostics(domain.ErrorKindToolError,
				fmt.Sprintf("mermaid render error (exit %d)", exitErr.ExitCode()),
				stderr.String())
		}
		if isNotFound(runErr) {
			return domain.Failed(domain.ErrorKindToolNotFound, domain.InstallHint)
		}
		return domain.Failed(domain.ErrorKindInternal, "render error: "+runErr.Error())
	}

	return domain.FailedWithDiagnostics(domain.ErrorKindInvalidOutput,
		"invalid output from mermaid renderer", stderr.String())
}

// isNotFound reports whether the process could not be launched at all.
func isNotFound(err error) bool {
	return errors.Is(err, exec.ErrNotFound) || errors.Is(err, os.ErrNotExist)
}
