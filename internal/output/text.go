package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/phyten/cmtrans/internal/engine"
	"github.com/phyten/cmtrans/internal/model"
	"github.com/phyten/cmtrans/internal/termcolor"
	"github.com/phyten/cmtrans/internal/textutil"
)

// cell width for free text in tables
const previewWidth = 60

// writeDocuments prints the reassembled documents. With several inputs each
// one gets a "==> name <==" header.
func writeDocuments(w io.Writer, items []engine.Item) error {
	for i, it := range items {
		if len(items) > 1 {
			sep := ""
			if i > 0 {
				sep = "\n"
			}
			if _, err := fmt.Fprintf(w, "%s==> %s <==\n", sep, it.Name); err != nil {
				return err
			}
		}
		if it.Document == "" {
			continue
		}
		if _, err := io.WriteString(w, it.Document+"\n"); err != nil {
			return err
		}
	}
	return nil
}

func writeTable(w io.Writer, r rows, pal termcolor.Palette) error {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleLight)

	header := make(table.Row, len(r.headers))
	for i, h := range r.headers {
		header[i] = pal.Header(strings.ToUpper(h))
	}
	tw.AppendHeader(header)

	for _, cells := range r.cells {
		row := make(table.Row, len(cells))
		for i, c := range cells {
			text := textutil.Preview(c, previewWidth)
			if i == r.roleCol {
				text = pal.Paint(model.Role(c), text)
			}
			row[i] = text
		}
		tw.AppendRow(row)
	}
	_, err := io.WriteString(w, tw.Render()+"\n")
	return err
}

func joinCells(values []string) string {
	return strings.Join(values, "  ")
}
