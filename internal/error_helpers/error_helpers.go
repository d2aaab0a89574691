package error_helpers

import (
	"context"
	"fmt"
	"os"

	"github.com/fatih/color"

	"github.com/oliy/workers-sdk/internal/sanitize"
)

// ShowError formats an error on stderr. The message is sanitized so secret
// material never reaches the terminal, even via server echoes.
func ShowError(_ context.Context, err error) {
	if err == nil {
		return
	}
	msg := sanitize.Instance.SanitizeString(err.Error())
	fmt.Fprintf(os.Stderr, "%s %s\n", color.RedString("Error:"), msg)
}

func ShowWarning(msg string) {
	fmt.Fprintf(os.Stderr, "%s %s\n", color.YellowString("Warning:"), msg)
}

// FailOnError panics with the given error; the recover handler in main
// formats it and exits. Use only for can't-happen initialization failures.
func FailOnError(err error) {
	if err != nil {
		panic(err)
	}
}
