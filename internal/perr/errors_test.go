package perr

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromServerPreservesCodeAndMessage(t *testing.T) {
	assert := assert.New(t)

	err := FromServer(http.StatusNotFound, 1000, "pipeline not found")
	assert.True(IsFromServer(err))
	assert.True(IsNotFound(err))
	assert.Contains(err.Error(), "1000")
	assert.Contains(err.Error(), "pipeline not found")
	assert.Equal("1000", err.ID)
}

func TestGetExitCode(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(0, GetExitCode(nil))
	assert.Equal(ExitCodeValidationFailed, GetExitCode(BadRequestWithMessage("bad flag")))
	assert.Equal(ExitCodeNotFound, GetExitCode(NotFound("Pipeline", "ghost")))
	assert.Equal(ExitCodeUnknownError, GetExitCode(errors.New("boom")))
}

func TestErrorModelFormatting(t *testing.T) {
	assert := assert.New(t)

	e := NotFound("Pipeline", "ghost")
	assert.Equal("Not Found: Pipeline = ghost.", e.Error())
	assert.NotEmpty(e.Instance)

	e = UnauthorizedWithMessage("Invalid API token.")
	assert.Equal("Unauthorized: Invalid API token.", e.Error())
}
