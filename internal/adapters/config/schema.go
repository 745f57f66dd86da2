package config

// File is the YAML schema of mmd.yaml. Every field is optional; unset
// fields fall back to the built-in defaults.
type File struct {
	Tool   ToolSection   `yaml:"tool"`
	Cache  CacheSection  `yaml:"cache"`
	Render RenderSection `yaml:"render"`
	Watch  WatchSection  `yaml:"watch"`
}

// ToolSection configures the renderer binary.
type ToolSection struct {
	// Name is the binary searched for on PATH. Defaults to "mmdc".
	Name string `yaml:"name"`

	// Path pins an explicit renderer binary. When set, it is validated at
	// startup; an invalid path falls back to discovery with a warning.
	Path string `yaml:"path"`
}

// CacheSection configures the artifact store.
type CacheSection struct {
	// Dir is the cache root directory. Defaults to the user cache area.
	Dir string `yaml:"dir"`
}

// RenderSection configures invocation behavior.
type RenderSection struct {
	// Timeout is the per-invocation deadline, e.g. "15s". Defaults to 15s.
	Timeout string `yaml:"timeout"`
}

// WatchSection configures watch mode.
type WatchSection struct {
	// Debounce is the idle window before an auto render fires, e.g. "1s".
	Debounce string `yaml:"debounce"`
}
