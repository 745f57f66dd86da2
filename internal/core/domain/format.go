package domain

import "bytes"

// Format describes the artifact format a renderer is expected to emit.
// Marker is the substring that must appear in the output for it to count as
// a well-formed artifact; artifact presence is checked before the process
// exit code, so a tool that exits non-zero after writing valid output still
// succeeds.
type Format struct {
	// Extension is the file extension including the leading dot, e.g. ".svg".
	Extension string

	// Marker is the root-element signature, e.g. "<svg".
	Marker string
}

// SVG is the default target format.
var SVG = Format{Extension: ".svg", Marker: "<svg"}

// Recognizes reports whether data looks like a well-formed artifact of this
// format.
func (f Format) Recognizes(data []byte) bool {
	if f.Marker == "" {
		return len(data) > 0
	}
	return bytes.Contains(data, []byte(f.Marker))
}
