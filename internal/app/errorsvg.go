package app

import (
	"fmt"
	"strings"
)

var svgEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	"\n", "<br>",
)

// errorSVG builds a displayable SVG describing a failed render. Watch mode
// writes it in place of the artifact so the preview always shows something
// actionable instead of a stale diagram.
func errorSVG(message string) string {
	return fmt.Sprintf(errorSVGTemplate, svgEscaper.Replace(message))
}

const errorSVGTemplate = `<svg width="800" height="400" xmlns="http://www.w3.org/2000/svg">
    <rect width="800" height="400" fill="#f8f8f8"/>
    <defs>
        <style type="text/css"><![CDATA[
            .error-title { font-size: 24px; font-weight: bold; fill: #cc0000; font-family: monospace; }
            .error-box { fill: #ffe6e6; stroke: #ff9999; stroke-width: 2; }
        ]]></style>
    </defs>
    <rect class="error-box" x="20" y="20" width="760" height="360" rx="5" ry="5"/>
    <text class="error-title" x="40" y="60">Mermaid Render Error</text>
    <foreignObject x="40" y="90" width="720" height="280">
        <div xmlns="http://www.w3.org/1999/xhtml" style="font-family: monospace; font-size: 13px; color: #333; white-space: pre-wrap; word-break: break-word; line-height: 1.4;">
            %s
        </div>
    </foreignObject>
</svg>`
