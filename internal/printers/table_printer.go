package printers

import (
	"context"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/oliy/workers-sdk/internal/sanitize"
	"github.com/oliy/workers-sdk/internal/types"
)

// Inspired by Kubernetes
// TablePrinter renders a printable resource as an aligned text table.
type TablePrinter[T any] struct {
	Sanitizer *sanitize.Sanitizer
}

func (p TablePrinter[T]) PrintResource(_ context.Context, items types.PrintableResource[T], writer io.Writer) error {
	table, err := items.GetTable()
	if err != nil {
		return err
	}
	return p.printTable(table, writer)
}

func (p TablePrinter[T]) printTable(table types.Table, writer io.Writer) error {
	// Create a tabwriter
	w := tabwriter.NewWriter(writer, 1, 1, 4, ' ', tabwriter.TabIndent)

	// Print the table headers
	var tableHeaders string
	var tableFormatter string
	for i, c := range table.Columns {
		if i > 0 {
			tableHeaders += "\t"
			tableFormatter += "\t"
		}
		tableHeaders += c.Name
		tableFormatter += c.Formatter()
	}
	tableHeaders += "\n"
	tableFormatter += "\n"

	_, err := fmt.Fprint(w, tableHeaders)
	if err != nil {
		return err
	}

	// Print each struct in the array as a row in the table
	for _, r := range table.Rows {
		// format the row
		str := fmt.Sprintf(tableFormatter, r.Cells...)
		// sanitize
		if p.Sanitizer != nil {
			str = p.Sanitizer.SanitizeString(str)
		}

		_, err := fmt.Fprint(w, str)
		if err != nil {
			return err
		}
	}

	// Flush and display the table
	return w.Flush()
}
