package printers

import (
	"context"
	"io"

	"github.com/hokaccha/go-prettyjson"

	"github.com/oliy/workers-sdk/internal/sanitize"
	"github.com/oliy/workers-sdk/internal/types"
)

type JsonPrinter[T any] struct {
}

func (p JsonPrinter[T]) PrintResource(_ context.Context, r types.PrintableResource[T], writer io.Writer) error {
	s, err := prettyjson.Marshal(r.GetItems())
	if err != nil {
		return err
	}

	// sanitize
	s = []byte(sanitize.Instance.SanitizeString(string(s)))

	_, err = writer.Write(append(s, '\n'))
	return err
}
