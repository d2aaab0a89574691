package printers

import (
	"context"
	"io"

	"github.com/spf13/cobra"

	"github.com/oliy/workers-sdk/internal/constants"
	"github.com/oliy/workers-sdk/internal/perr"
	"github.com/oliy/workers-sdk/internal/sanitize"
	"github.com/oliy/workers-sdk/internal/types"
)

// Inspired by Kubernetes
//
// ResourcePrinter is an interface that knows how to print runtime objects.
type ResourcePrinter[T any] interface {
	// PrintResource receives a runtime object, formats it and prints it to a writer.
	PrintResource(context.Context, types.PrintableResource[T], io.Writer) error
}

func GetPrinter[T any](cmd *cobra.Command) (ResourcePrinter[T], error) {
	format := cmd.Flags().Lookup(constants.ArgOutput).Value.String()

	switch format {
	case "table":
		return TablePrinter[T]{Sanitizer: sanitize.Instance}, nil
	case "json":
		return JsonPrinter[T]{}, nil
	case "yaml":
		return YamlPrinter[T]{}, nil
	}
	return nil, perr.BadRequestWithMessage("Invalid output format: " + format)
}
