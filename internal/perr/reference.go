package perr

import (
	"github.com/google/uuid"
)

// reference returns a unique instance identifier for an error, so a given
// occurrence can be correlated between CLI output and debug logs.
func reference() string {
	return "pe_" + uuid.NewString()
}
