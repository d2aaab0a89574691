package perr

import (
	"net/http"
)

const (
	ExitCodeValidationFailed = 2
	ExitCodeNotFound         = 4
	ExitCodeUnknownError     = 10
)

// GetExitCode maps an error to the process exit code. Anything we cannot
// classify exits with the generic unknown-error code.
func GetExitCode(err error) int {
	if err == nil {
		return 0
	}

	if _, ok := err.(ValidationError); ok {
		return ExitCodeValidationFailed
	}

	if e, ok := err.(ErrorModel); ok {
		switch e.Status {
		case http.StatusBadRequest:
			return ExitCodeValidationFailed
		case http.StatusNotFound:
			return ExitCodeNotFound
		}
		return 1
	}

	return ExitCodeUnknownError
}
