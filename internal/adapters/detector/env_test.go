package detector_test

import (
	"testing"

	"go.trai.ch/mmd/internal/adapters/detector"
)

func TestDetectEnvironment_CI(t *testing.T) {
	tests := []struct {
		name    string
		ciValue string
		json    bool
	}{
		{name: "CI=true forces JSON mode", ciValue: "true", json: true},
		{name: "CI=1 forces JSON mode", ciValue: "1", json: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("CI", tt.ciValue)

			mode := detector.DetectEnvironment()
			if tt.json && mode != detector.ModeJSON {
				t.Errorf("Expected ModeJSON with CI=%s, got %v", tt.ciValue, mode)
			}
		})
	}
}

func TestResolveMode(t *testing.T) {
	tests := []struct {
		name         string
		autoDetected detector.OutputMode
		userFlag     string
		expected     detector.OutputMode
	}{
		{
			name:         "auto respects auto-detection (pretty)",
			autoDetected: detector.ModePretty,
			userFlag:     "auto",
			expected:     detector.ModePretty,
		},
		{
			name:         "auto respects auto-detection (JSON)",
			autoDetected: detector.ModeJSON,
			userFlag:     "auto",
			expected:     detector.ModeJSON,
		},
		{
			name:         "empty flag respects auto-detection",
			autoDetected: detector.ModePretty,
			userFlag:     "",
			expected:     detector.ModePretty,
		},
		{
			name:         "pretty overrides auto-detection",
			autoDetected: detector.ModeJSON,
			userFlag:     "pretty",
			expected:     detector.ModePretty,
		},
		{
			name:         "json overrides auto-detection",
			autoDetected: detector.ModePretty,
			userFlag:     "json",
			expected:     detector.ModeJSON,
		},
		{
			name:         "invalid flag respects auto-detection",
			autoDetected: detector.ModePretty,
			userFlag:     "invalid",
			expected:     detector.ModePretty,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := detector.ResolveMode(tt.autoDetected, tt.userFlag)
			if got != tt.expected {
				t.Errorf("ResolveMode(%v, %q) = %v, want %v",
					tt.autoDetected, tt.userFlag, got, tt.expected)
			}
		})
	}
}
