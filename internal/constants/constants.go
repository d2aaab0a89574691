package constants

const (
	// Name is the name of the application.
	Name = "wrangler"

	// ShortDescription is a short description of the application used in the CLI.
	ShortDescription = "Manage resources on the Workers platform"

	// LongDescription is a long description of the application used in the CLI.
	LongDescription = `Wrangler: command-line interface for the Workers platform

Common commands:

  # Create an ingestion pipeline writing to an R2 bucket
  wrangler pipelines create my-pipeline --r2 my-bucket

  # List pipelines in the account
  wrangler pipelines list

  # Show details of a single pipeline
  wrangler pipelines show my-pipeline`

	// DefaultApiHost is the control plane endpoint used unless overridden
	// by --api-host or config.
	DefaultApiHost = "https://api.cloudflare.com/client/v4"
)
