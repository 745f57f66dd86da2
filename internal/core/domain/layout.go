package domain

import (
	"os"
	"path/filepath"
	"time"
)

const (
	// AppDirName is the name of the mmd directory under the user cache root.
	AppDirName = "mmd"

	// ArtifactDirName is the name of the rendered artifact directory.
	ArtifactDirName = "svg"

	// ConfigFileName is the name of the project configuration file.
	ConfigFileName = "mmd.yaml"

	// DefaultToolName is the renderer binary searched for on PATH.
	DefaultToolName = "mmdc"

	// DefaultTimeout is the hard wall-clock deadline for one invocation.
	DefaultTimeout = 15 * time.Second

	// DefaultDebounceWindow is the idle window before an auto render fires.
	DefaultDebounceWindow = time.Second

	// DebugEnvVar, when set to a non-empty value other than "0" or "false",
	// makes the invoker echo the command line it runs.
	DebugEnvVar = "MMD_DEBUG"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644

	// PrivateFilePerm is the default permission for private files (rw-------).
	PrivateFilePerm = 0o600
)

// InstallHint is the actionable message attached to ToolNotFound results.
const InstallHint = "Mermaid CLI (" + DefaultToolName + ") not found. Install with npm install -g @mermaid-js/mermaid-cli"

// DefaultCachePath returns the default root directory for rendered artifacts.
// It falls back to a hidden directory under the home directory when the OS
// cache dir cannot be determined.
func DefaultCachePath() string {
	if dir, err := os.UserCacheDir(); err == nil {
		return filepath.Join(dir, AppDirName, ArtifactDirName)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", "."+AppDirName, ArtifactDirName)
	}
	return filepath.Join(home, "."+AppDirName, ArtifactDirName)
}

// DebugEnabled reports whether command echoing is requested via DebugEnvVar.
func DebugEnabled() bool {
	switch os.Getenv(DebugEnvVar) {
	case "", "0", "false":
		return false
	}
	return true
}
