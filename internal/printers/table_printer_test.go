package printers

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/oliy/workers-sdk/internal/sanitize"
	"github.com/oliy/workers-sdk/internal/types"
)

func TestTablePrinterRendersRows(t *testing.T) {
	assert := assert.New(t)

	printable := types.NewPrintablePipelineFromSingle(&types.Pipeline{
		Name: "my-pipeline",
		Id:   "0123456789",
		Source: []types.Source{
			{Type: types.SourceTypeHttp, Format: types.FormatJson},
		},
		Destination: &types.Destination{
			Type: types.DestinationTypeR2,
			Path: types.Path{Bucket: "my-bucket"},
		},
	})

	var buf bytes.Buffer
	p := TablePrinter[types.Pipeline]{Sanitizer: sanitize.NullSanitizer}
	err := p.PrintResource(context.Background(), printable, &buf)
	assert.Nil(err)
	assert.Contains(buf.String(), "NAME")
	assert.Contains(buf.String(), "my-pipeline")
	assert.Contains(buf.String(), "r2://my-bucket")
}

func TestTablePrinterEmptyList(t *testing.T) {
	assert := assert.New(t)

	var buf bytes.Buffer
	p := TablePrinter[types.Pipeline]{Sanitizer: sanitize.NullSanitizer}
	err := p.PrintResource(context.Background(), types.NewPrintablePipeline(nil), &buf)
	assert.Nil(err)
	// headers only, no data rows
	assert.Contains(buf.String(), "NAME")
	assert.Contains(buf.String(), "ENDPOINT")
}

func TestJsonPrinterRedactsCredentials(t *testing.T) {
	assert := assert.New(t)

	pipeline := &types.Pipeline{
		Name:   "my-pipeline",
		Source: []types.Source{{Type: types.SourceTypeBinding, Format: types.FormatJson}},
		Destination: &types.Destination{
			Type: types.DestinationTypeR2,
			Path: types.Path{Bucket: "my-bucket"},
			Credentials: &types.Credentials{
				Endpoint:        "https://example.r2.cloudflarestorage.com",
				AccessKeyId:     "AKIA123",
				SecretAccessKey: "super-secret",
			},
		},
	}

	var buf bytes.Buffer
	p := JsonPrinter[types.Pipeline]{}
	err := p.PrintResource(context.Background(), types.NewPrintablePipelineFromSingle(pipeline), &buf)
	assert.Nil(err)
	assert.NotContains(buf.String(), "super-secret")
	assert.Contains(buf.String(), "my-pipeline")
}
