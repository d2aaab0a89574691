package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func validPipeline() *Pipeline {
	return &Pipeline{
		Name: "my-pipeline",
		Source: []Source{
			{Type: SourceTypeHttp, Format: FormatJson},
			{Type: SourceTypeBinding, Format: FormatJson},
		},
		Destination: &Destination{
			Type:        DestinationTypeR2,
			Format:      FormatJson,
			Compression: Compression{Type: "none"},
			Path:        Path{Bucket: "my-bucket"},
		},
	}
}

func TestValidatePipeline(t *testing.T) {
	assert := assert.New(t)
	assert.Nil(validPipeline().Validate())
}

func TestValidatePipelineName(t *testing.T) {
	assert := assert.New(t)

	p := validPipeline()
	p.Name = "my pipeline!"
	assert.NotNil(p.Validate())

	p.Name = "Pipeline-01"
	assert.Nil(p.Validate())
}

func TestValidateFilenameRequiresSlug(t *testing.T) {
	assert := assert.New(t)

	p := validPipeline()
	p.Destination.Path.Filename = "events.json"
	assert.NotNil(p.Validate())

	p.Destination.Path.Filename = "${slug}.json"
	assert.Nil(p.Validate())
}

func TestValidateCompressionType(t *testing.T) {
	assert := assert.New(t)

	p := validPipeline()
	p.Destination.Compression.Type = "zstd"
	assert.NotNil(p.Validate())

	for _, c := range []string{"none", "gzip", "deflate"} {
		p.Destination.Compression.Type = c
		assert.Nil(p.Validate())
	}
}

func TestPipelineSummaries(t *testing.T) {
	assert := assert.New(t)

	p := validPipeline()
	assert.Equal("http,binding", p.SourceSummary())
	assert.Equal("r2://my-bucket", p.DestinationSummary())
}

func TestPrintablePipelineTable(t *testing.T) {
	assert := assert.New(t)

	printable := NewPrintablePipelineFromSingle(validPipeline())
	table, err := printable.GetTable()
	assert.Nil(err)
	assert.Len(table.Rows, 1)
	assert.Len(table.Columns, 5)
	assert.Equal("my-pipeline", table.Rows[0].Cells[0])
}

func TestPrintablePipelineEmptyTable(t *testing.T) {
	assert := assert.New(t)

	printable := NewPrintablePipeline(nil)
	table, err := printable.GetTable()
	assert.Nil(err)
	assert.Len(table.Rows, 0)
	assert.Len(table.Columns, 5)
}
