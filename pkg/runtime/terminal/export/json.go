package export

import (
	"encoding/json"
	"io"
	"os"

	"github.com/fuegovic/homebox-analytics/pkg/adapters"
	"github.com/fuegovic/homebox-analytics/pkg/models/domain"
)

// JSONReporter dumps every report field as indented JSON, dates as ISO
// strings. This is the full-fidelity export format.
type JSONReporter struct {
	writer io.Writer
}

func NewJSONReporter(writer io.Writer) *JSONReporter {
	if writer == nil {
		writer = os.Stdout
	}
	return &JSONReporter{writer: writer}
}

func (r *JSONReporter) Handle(report domain.Report) error {
	encoder := json.NewEncoder(r.writer)
	encoder.SetIndent("", "  ")
	return encoder.Encode(adapters.MapReportDomainToApi(report))
}
