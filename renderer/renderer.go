package renderer

import (
	"io"

	"github.com/asmlab/hazardscan/analyzer"
)

// Renderer defines the interface for rendering hazard reports in different formats.
type Renderer interface {
	// Render takes the reports of one or more detection passes and outputs
	// them in the desired format to the provided writer.
	Render(reports []*analyzer.Report, output io.Writer) error

	// Format returns the name of the output format (e.g., "json", "text").
	Format() string
}
