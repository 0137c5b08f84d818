package export

import (
	"errors"
	"fmt"
	"time"

	"github.com/dmagallanes2/coldcallingassistant/internal/calllog"
	"github.com/dmagallanes2/coldcallingassistant/internal/stats"
)

// Format names one of the supported export artifacts.
type Format string

const (
	FormatCSV  Format = "csv"
	FormatText Format = "text"
	FormatPDF  Format = "pdf"
	FormatXLSX Format = "xlsx"
)

// ErrUnsupportedFormat is returned for unknown format names. No partial
// output is produced.
var ErrUnsupportedFormat = errors.New("export: unsupported format")

// ContentType returns the HTTP media type for the format.
func (f Format) ContentType() string {
	switch f {
	case FormatCSV:
		return "text/csv; charset=utf-8"
	case FormatText:
		return "text/plain; charset=utf-8"
	case FormatPDF:
		return "application/pdf"
	case FormatXLSX:
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	default:
		return "application/octet-stream"
	}
}

// ColumnSet selects the CSV/XLSX column layout. Minimal is the legacy
// three-column shape without result/reason.
type ColumnSet string

const (
	ColumnsFull    ColumnSet = "full"
	ColumnsMinimal ColumnSet = "minimal"
)

func (c ColumnSet) header() []string {
	if c == ColumnsMinimal {
		return []string{"Time", "Business", "Notes"}
	}
	return []string{"Time", "Business", "Result", "Reason", "Notes"}
}

// RowTimestampLayout formats per-record timestamps in raw-row exports.
const RowTimestampLayout = "2006-01-02 15:04:05"

// Exporter renders a call log snapshot and its derived summary into each
// supported format. The raw-row formats (csv, xlsx) serialize the snapshot
// directly and bypass the summary; the report formats (text, pdf) render the
// summary and must carry identical numeric strings for the same input.
type Exporter struct {
	columns ColumnSet
}

func New(columns ColumnSet) *Exporter {
	if columns != ColumnsMinimal {
		columns = ColumnsFull
	}
	return &Exporter{columns: columns}
}

// Render produces the artifact bytes and the suggested filename for format.
// summary may be nil (empty log); every renderer copes by producing a
// "no data" document rather than failing.
func (e *Exporter) Render(format Format, snapshot []calllog.Record, summary *stats.Summary, date time.Time) ([]byte, string, error) {
	day := date.Format("2006-01-02")
	switch format {
	case FormatCSV:
		b, err := e.renderCSV(snapshot)
		return b, fmt.Sprintf("call_log_%s.csv", day), err
	case FormatXLSX:
		b, err := e.renderXLSX(snapshot)
		return b, fmt.Sprintf("call_log_%s.xlsx", day), err
	case FormatText:
		b, err := renderText(summary, day)
		return b, fmt.Sprintf("call_report_%s.txt", day), err
	case FormatPDF:
		b, err := renderPDF(summary, day)
		return b, fmt.Sprintf("call_report_%s.pdf", day), err
	default:
		return nil, "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
}

func (e *Exporter) row(rec calllog.Record) []string {
	if e.columns == ColumnsMinimal {
		return []string{rec.Timestamp.Format(RowTimestampLayout), rec.Business, rec.Notes}
	}
	return []string{
		rec.Timestamp.Format(RowTimestampLayout),
		rec.Business,
		rec.Result.Label(),
		rec.Reason.Label(),
		rec.Notes,
	}
}
