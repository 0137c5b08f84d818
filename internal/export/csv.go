package export

import (
	"bytes"
	"encoding/csv"

	"github.com/dmagallanes2/coldcallingassistant/internal/calllog"
)

// renderCSV serializes the raw log rows. Row count equals snapshot length;
// an empty log still gets its header row.
func (e *Exporter) renderCSV(snapshot []calllog.Record) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(e.columns.header()); err != nil {
		return nil, err
	}
	for _, rec := range snapshot {
		if err := w.Write(e.row(rec)); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
