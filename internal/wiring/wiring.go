// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/mmd/internal/adapters/cache"
	_ "go.trai.ch/mmd/internal/adapters/config"
	_ "go.trai.ch/mmd/internal/adapters/locator"
	_ "go.trai.ch/mmd/internal/adapters/logger"
	_ "go.trai.ch/mmd/internal/adapters/mermaid"
	_ "go.trai.ch/mmd/internal/adapters/telemetry"
	// Register app and engine nodes.
	_ "go.trai.ch/mmd/internal/app"
	_ "go.trai.ch/mmd/internal/engine/renderer"
)
