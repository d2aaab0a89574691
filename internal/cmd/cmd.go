package cmd

import (
	"context"
	"os"

	"github.com/oliy/workers-sdk/internal/error_helpers"
	"github.com/oliy/workers-sdk/internal/perr"
)

// RunCLI executes the root command and exits the process with a code
// reflecting any error.
func RunCLI(ctx context.Context) {
	cmd := rootCommand()

	if err := cmd.ExecuteContext(ctx); err != nil {
		error_helpers.ShowError(ctx, err)
		os.Exit(perr.GetExitCode(err))
	}
}
