package output

import (
	"fmt"
	"io"
	"strings"
)

// WriteMarkdownTable renders r as a GitHub Flavored Markdown table.
func WriteMarkdownTable(w io.Writer, r rows) error {
	if _, err := fmt.Fprintf(w, "| %s |\n", strings.Join(r.headers, " | ")); err != nil {
		return err
	}
	sep := make([]string, len(r.headers))
	for i := range sep {
		sep[i] = "---"
	}
	if _, err := fmt.Fprintf(w, "| %s |\n", strings.Join(sep, " | ")); err != nil {
		return err
	}
	for _, row := range r.cells {
		escaped := make([]string, len(row))
		for i, cell := range row {
			escaped[i] = escapeMarkdownCell(cell)
		}
		if _, err := fmt.Fprintf(w, "| %s |\n", strings.Join(escaped, " | ")); err != nil {
			return err
		}
	}
	return nil
}

var markdownCellReplacer = strings.NewReplacer("\r\n", "<br>", "\r", "", "\n", "<br>", "|", `\|`)

func escapeMarkdownCell(s string) string {
	return markdownCellReplacer.Replace(s)
}
