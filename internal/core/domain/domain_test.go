package domain_test

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/mmd/internal/core/domain"
)

func TestRenderResult_Constructors(t *testing.T) {
	t.Parallel()

	ok := domain.Succeeded("<svg/>")
	assert.True(t, ok.Success)
	assert.Equal(t, "<svg/>", ok.Artifact)
	assert.Equal(t, domain.ErrorKindNone, ok.Kind)

	failed := domain.Failed(domain.ErrorKindTimeout, "render timed out")
	assert.False(t, failed.Success)
	assert.Equal(t, domain.ErrorKindTimeout, failed.Kind)
	assert.Empty(t, failed.Artifact)

	diag := domain.FailedWithDiagnostics(domain.ErrorKindToolError, "exit 1", "Parse error on line 2")
	assert.Equal(t, "Parse error on line 2", diag.Diagnostics)
}

func TestFormat_Recognizes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		data string
		want bool
	}{
		{"well-formed svg", `<svg xmlns="http://www.w3.org/2000/svg"></svg>`, true},
		{"svg with xml prolog", `<?xml version="1.0"?><svg></svg>`, true},
		{"plain text noise", "error: something went wrong", false},
		{"empty", "", false},
		{"truncated write", "<sv", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, domain.SVG.Recognizes([]byte(tt.data)))
		})
	}
}

func TestDefaultSettings(t *testing.T) {
	t.Parallel()

	s := domain.DefaultSettings()
	require.NotNil(t, s)
	assert.Equal(t, domain.DefaultToolName, s.ToolName)
	assert.Empty(t, s.ToolPath)
	assert.Equal(t, 15*time.Second, s.Timeout)
	assert.Equal(t, time.Second, s.DebounceWindow)
	assert.Equal(t, domain.SVG, s.Format)
	assert.True(t, strings.HasSuffix(s.CacheDir, domain.ArtifactDirName))
}

func TestSampleDiagram_IsFlowchart(t *testing.T) {
	t.Parallel()

	assert.True(t, strings.HasPrefix(domain.SampleDiagram, "flowchart"))
}
