package renderer

import (
	"encoding/json"
	"io"

	"github.com/asmlab/hazardscan/analyzer"
)

// JSONRenderer renders hazard reports in JSON format.
type JSONRenderer struct{}

func NewJSONRenderer() Renderer {
	return &JSONRenderer{}
}

func (r *JSONRenderer) Render(reports []*analyzer.Report, output io.Writer) error {
	return json.NewEncoder(output).Encode(reports)
}

func (r *JSONRenderer) Format() string {
	return "json"
}
