package output

import (
	"encoding/csv"
	"io"
)

// WriteCSV renders r as RFC 4180 CSV with CRLF line endings.
func WriteCSV(w io.Writer, r rows) error {
	writer := csv.NewWriter(w)
	writer.UseCRLF = true
	if err := writer.Write(r.headers); err != nil {
		return err
	}
	if err := writer.WriteAll(r.cells); err != nil {
		return err
	}
	return writer.Error()
}
