package constants

const (
	ArgApiHost     = "api-host"
	ArgAccountId   = "account-id"
	ArgOutput      = "output"
	ArgTlsInsecure = "insecure"

	ArgR2              = "r2"
	ArgBatchMaxMb      = "batch-max-mb"
	ArgBatchMaxRows    = "batch-max-rows"
	ArgBatchMaxSeconds = "batch-max-seconds"
	ArgTransform       = "transform"
	ArgCompression     = "compression"
	ArgFilepath        = "filepath"
	ArgFilename        = "filename"
	ArgAuthentication  = "authentication"
)

const (
	// EnvApiToken is the environment variable holding the bearer token used
	// for all control plane calls.
	EnvApiToken = "CLOUDFLARE_API_TOKEN"

	// EnvLogLevel controls the slog level of the CLI.
	EnvLogLevel = "WRANGLER_LOG"
)
