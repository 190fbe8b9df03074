// Package renderer provides a way to render hazard reports in different formats.
package renderer

import (
	"fmt"
	"io"
	"strings"

	"github.com/asmlab/hazardscan/analyzer"
)

const blockSeparator = "------------------------------------\n"

// TextRenderer formats hazard reports as human-readable text.
type TextRenderer struct{}

// NewTextRenderer creates a new instance of TextRenderer.
func NewTextRenderer() Renderer {
	return &TextRenderer{}
}

// Render writes each report framed by a start banner and a completion
// banner, with one three-line block per hazard.
func (r *TextRenderer) Render(reports []*analyzer.Report, output io.Writer) error {
	var report strings.Builder
	for _, rep := range reports {
		report.WriteString(fmt.Sprintf("--- Identifying %s Hazards ---\n", rep.Kind))
		if len(rep.Instructions) == 0 {
			report.WriteString("No instructions to analyze.\n")
			continue
		}
		for _, h := range rep.Hazards {
			report.WriteString(fmt.Sprintf("%s Hazard Found:\n", h.Kind))
			report.WriteString(fmt.Sprintf("\tInstruction %d: (%s) %s register %s.\n",
				h.Earlier, rep.Instructions[h.Earlier], earlierVerb(h.Kind), h.Register))
			report.WriteString(fmt.Sprintf("\tInstruction %d: (%s) %s register %s.\n",
				h.Later, rep.Instructions[h.Later], laterVerb(h.Kind), h.Register))
			report.WriteString(blockSeparator)
		}
		report.WriteString("--- Analysis Complete ---\n")
	}
	_, err := output.Write([]byte(report.String()))
	return err
}

func earlierVerb(kind analyzer.HazardKind) string {
	if kind == analyzer.HazardWAR {
		return "reads from"
	}
	return "writes to"
}

func laterVerb(kind analyzer.HazardKind) string {
	switch kind {
	case analyzer.HazardRAW:
		return "reads from"
	case analyzer.HazardWAW:
		return "also writes to"
	default:
		return "writes to"
	}
}

// Format returns the format type.
func (r *TextRenderer) Format() string {
	return "text"
}
