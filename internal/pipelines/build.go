// Package pipelines builds and reconciles pipeline configurations from CLI
// flags. It is pure: no I/O happens here.
package pipelines

import (
	"strings"

	"github.com/oliy/workers-sdk/internal/perr"
	"github.com/oliy/workers-sdk/internal/types"
)

// defaultEntrypoint is the function invoked per batch when a transform is
// given as a bare script name.
const defaultEntrypoint = "Transform"

// Flags carries the optional pipeline flags of create and update. Every
// field is presence-aware: nil means the flag was not supplied, so merge
// rules never have to guess from zero values.
type Flags struct {
	Bucket          *string
	BatchMaxMb      *int
	BatchMaxRows    *int
	BatchMaxSeconds *int
	Transform       *string
	Compression     *string
	Filepath        *string
	Filename        *string
	Authentication  *bool
}

// DefaultSources is the source list of an unauthenticated pipeline: an open
// HTTP endpoint plus the service binding.
func DefaultSources() []types.Source {
	return []types.Source{
		{Type: types.SourceTypeHttp, Format: types.FormatJson},
		{Type: types.SourceTypeBinding, Format: types.FormatJson},
	}
}

// NewConfig returns the default configuration for a new pipeline. Compression
// starts as none and the batch object is always present, with no limits set.
func NewConfig(name string) *types.Pipeline {
	return &types.Pipeline{
		Name:     name,
		Metadata: map[string]string{},
		Source:   DefaultSources(),
		Destination: &types.Destination{
			Type:        types.DestinationTypeR2,
			Format:      types.FormatJson,
			Compression: types.Compression{Type: "none"},
		},
	}
}

// ParseTransform splits a transform argument into script and entrypoint.
// A bare script name gets the default entrypoint.
func ParseTransform(raw string) (types.Transform, error) {
	parts := strings.Split(raw, ".")
	switch len(parts) {
	case 1:
		return types.Transform{Script: parts[0], Entrypoint: defaultEntrypoint}, nil
	case 2:
		return types.Transform{Script: parts[0], Entrypoint: parts[1]}, nil
	}
	return types.Transform{}, perr.BadRequestWithMessage("invalid transform syntax, provide script.entrypoint or script")
}

// ApplyFlags merges supplied flags onto a configuration. For create the
// target is a fresh NewConfig; for update it is the fetched remote config,
// so anything not supplied here stays as deployed.
func ApplyFlags(p *types.Pipeline, f Flags) error {
	if f.Authentication != nil {
		if *f.Authentication {
			// authenticated pipelines only ingest via the binding
			p.Source = []types.Source{
				{Type: types.SourceTypeBinding, Format: types.FormatJson},
			}
		} else {
			p.Source = DefaultSources()
		}
	}

	if f.Transform != nil {
		transform, err := ParseTransform(*f.Transform)
		if err != nil {
			return err
		}
		p.Transforms = []types.Transform{transform}
	}

	if f.Compression != nil {
		p.Destination.Compression.Type = *f.Compression
	}

	if f.BatchMaxMb != nil {
		p.Destination.Batch.MaxMb = f.BatchMaxMb
	}
	if f.BatchMaxRows != nil {
		p.Destination.Batch.MaxRows = f.BatchMaxRows
	}
	if f.BatchMaxSeconds != nil {
		p.Destination.Batch.MaxDurationS = f.BatchMaxSeconds
	}

	if f.Filepath != nil {
		p.Destination.Path.Filepath = *f.Filepath
	}
	if f.Filename != nil {
		p.Destination.Path.Filename = *f.Filename
	}

	if f.Bucket != nil {
		p.Destination.Path.Bucket = *f.Bucket
	}

	return nil
}

// NeedsNewCredentials reports whether an update moves the pipeline to a
// bucket it does not already hold credentials for. Credentials are only
// regenerated in that case; the deployed ones are write-only and cannot be
// read back.
func NeedsNewCredentials(current *types.Pipeline, f Flags) bool {
	if f.Bucket == nil {
		return false
	}
	if current == nil || current.Destination == nil {
		return true
	}
	return current.Destination.Path.Bucket != *f.Bucket
}
