package types

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/oliy/workers-sdk/internal/perr"
)

// Descriptor values understood by the control plane.
const (
	SourceTypeHttp    = "http"
	SourceTypeBinding = "binding"

	FormatJson = "json"

	DestinationTypeR2 = "r2"
)

var pipelineNameRegex = regexp.MustCompile(`^[a-zA-Z0-9-]+$`)

// Source is a single ingestion source of a pipeline.
type Source struct {
	Type   string `json:"type" validate:"required,oneof=http binding"`
	Format string `json:"format" validate:"required,eq=json"`
	Schema string `json:"schema,omitempty"`
}

// Transform identifies a user script and the function invoked per batch.
type Transform struct {
	Script     string `json:"script" validate:"required"`
	Entrypoint string `json:"entrypoint" validate:"required"`
}

type Compression struct {
	Type string `json:"type" validate:"required,oneof=none gzip deflate"`
}

// Batch is the accumulation policy controlling when buffered records are
// flushed. Unset limits are absent on the wire, never zero.
type Batch struct {
	MaxMb        *int `json:"max_mb,omitempty"`
	MaxRows      *int `json:"max_rows,omitempty"`
	MaxDurationS *int `json:"max_duration_s,omitempty"`
}

type Path struct {
	Bucket   string `json:"bucket" validate:"required"`
	Filepath string `json:"filepath,omitempty"`
	Filename string `json:"filename,omitempty" validate:"omitempty,slug_template"`
}

// Credentials is a write-only secret: the control plane never echoes it back,
// and the sanitizer redacts it from all printed output.
type Credentials struct {
	Endpoint        string `json:"endpoint" validate:"required,url"`
	AccessKeyId     string `json:"access_key_id" validate:"required"`
	SecretAccessKey string `json:"secret_access_key" validate:"required"`
}

type Destination struct {
	Type        string       `json:"type" validate:"required,eq=r2"`
	Format      string       `json:"format" validate:"required,eq=json"`
	Compression Compression  `json:"compression"`
	Batch       Batch        `json:"batch"`
	Path        Path         `json:"path"`
	Credentials *Credentials `json:"credentials,omitempty"`
}

// Pipeline is the full configuration of an ingestion pipeline. Id, Version
// and Endpoint are assigned by the server and absent on create requests.
type Pipeline struct {
	Id       string            `json:"id,omitempty"`
	Name     string            `json:"name" validate:"required,resource_name"`
	Version  *int              `json:"version,omitempty"`
	Endpoint string            `json:"endpoint,omitempty"`
	Metadata map[string]string `json:"metadata,omitempty"`

	Source      []Source     `json:"source" validate:"required,min=1,dive"`
	Transforms  []Transform  `json:"transforms" validate:"dive"`
	Destination *Destination `json:"destination" validate:"required"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// name must be usable as a URL path segment and a DNS-ish label
	_ = v.RegisterValidation("resource_name", func(fl validator.FieldLevel) bool {
		return pipelineNameRegex.MatchString(fl.Field().String())
	})
	// a custom filename only makes sense with a per-file unique component
	_ = v.RegisterValidation("slug_template", func(fl validator.FieldLevel) bool {
		return strings.Contains(fl.Field().String(), "${slug}")
	})
	return v
}

// Validate checks the pipeline configuration against the control plane's
// invariants before it is sent.
func (p *Pipeline) Validate() error {
	if err := validate.Struct(p); err != nil {
		if ve, ok := err.(validator.ValidationErrors); ok {
			return perr.ValidationError{Type: "pipeline", Errors: ve}
		}
		return err
	}
	return nil
}

// SourceSummary renders the source list as a short comma separated string
// for tabular output.
func (p *Pipeline) SourceSummary() string {
	kinds := make([]string, len(p.Source))
	for i, s := range p.Source {
		kinds[i] = s.Type
	}
	return strings.Join(kinds, ",")
}

// DestinationSummary renders the destination as a short locator string.
func (p *Pipeline) DestinationSummary() string {
	if p.Destination == nil {
		return ""
	}
	return fmt.Sprintf("%s://%s", p.Destination.Type, p.Destination.Path.Bucket)
}

type PrintablePipeline struct {
	Items []Pipeline
}

func NewPrintablePipeline(items []Pipeline) PrintablePipeline {
	return PrintablePipeline{Items: items}
}

func NewPrintablePipelineFromSingle(p *Pipeline) PrintablePipeline {
	return PrintablePipeline{Items: []Pipeline{*p}}
}

func (p PrintablePipeline) GetItems() []Pipeline {
	return p.Items
}

func (p PrintablePipeline) GetTable() (Table, error) {
	var tableRows []TableRow
	for _, item := range p.Items {
		cells := []interface{}{
			item.Name,
			item.Id,
			item.SourceSummary(),
			item.DestinationSummary(),
			item.Endpoint,
		}
		tableRows = append(tableRows, TableRow{Cells: cells})
	}

	return Table{
		Rows:    tableRows,
		Columns: p.getColumns(),
	}, nil
}

func (PrintablePipeline) getColumns() (columns []TableColumnDefinition) {
	return []TableColumnDefinition{
		{
			Name:        "NAME",
			Type:        "string",
			Description: "The name of the pipeline",
		},
		{
			Name:        "ID",
			Type:        "string",
			Description: "The server assigned identifier of the pipeline",
		},
		{
			Name:        "SOURCE",
			Type:        "string",
			Description: "The configured ingestion sources",
		},
		{
			Name:        "DESTINATION",
			Type:        "string",
			Description: "Where batches are written",
		},
		{
			Name:        "ENDPOINT",
			Type:        "string",
			Description: "The HTTP ingest endpoint of the pipeline",
		},
	}
}
