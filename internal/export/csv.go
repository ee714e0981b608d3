package export

import (
	"bytes"
	"encoding/csv"
)

// AssetsByAgentCSV renders the report as UTF-8 CSV with a header row.
func AssetsByAgentCSV(rows []ReportRow) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(reportHeaders); err != nil {
		return nil, err
	}
	for _, row := range rows {
		record := []string{row.Agent, row.Role, row.AssetName, row.SerialNumber, row.Status, row.Value}
		if err := w.Write(record); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
