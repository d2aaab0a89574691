package perr

import (
	"fmt"
	"strconv"
)

const (
	ErrorCodeApiError = "error_api"
)

// FromServer converts a control plane error response into an ErrorModel.
// The server-supplied numeric code and message are preserved verbatim in
// the detail so they reach the user unmodified.
func FromServer(status int, code int, message string) ErrorModel {
	return ErrorModel{
		Instance: reference(),
		ID:       strconv.Itoa(code),
		Type:     ErrorCodeApiError,
		Title:    "API Error",
		Status:   status,
		Detail:   fmt.Sprintf("[code: %d] %s", code, message),
	}
}

func IsFromServer(err error) bool {
	e, ok := err.(ErrorModel)
	return ok && e.Type == ErrorCodeApiError
}
