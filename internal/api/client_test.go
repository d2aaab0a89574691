package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oliy/workers-sdk/internal/perr"
)

// noSleep is injected everywhere so tests never wait out the credential
// propagation delay.
func noSleep(_ context.Context, _ time.Duration) error {
	return nil
}

func testClient(serverURL string, opts ...ClientOption) *Client {
	base := []ClientOption{
		WithBaseURL(serverURL),
		WithToken("test-token"),
		WithSleeper(noSleep),
	}
	return NewClient(append(base, opts...)...)
}

func writeEnvelope(w http.ResponseWriter, status int, result any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]any{
		"success": status < http.StatusBadRequest,
		"errors":  []any{},
		"result":  result,
	})
}

func writeError(w http.ResponseWriter, status int, code int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]any{
		"success": false,
		"errors":  []map[string]any{{"code": code, "message": message}},
		"result":  nil,
	})
}

func TestDoSendsBearerToken(t *testing.T) {
	assert := assert.New(t)

	var gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		writeEnvelope(w, http.StatusOK, nil)
	}))
	defer server.Close()

	err := testClient(server.URL).do(context.Background(), http.MethodGet, "/ping", nil, nil)
	assert.Nil(err)
	assert.Equal("Bearer test-token", gotAuth)
}

func TestDoServerErrorIsPreservedVerbatim(t *testing.T) {
	assert := assert.New(t)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, 1000, "pipeline not found")
	}))
	defer server.Close()

	err := testClient(server.URL).do(context.Background(), http.MethodGet, "/thing", nil, nil)
	assert.NotNil(err)
	assert.True(perr.IsNotFound(err))
	assert.True(perr.IsFromServer(err))
	assert.Contains(err.Error(), "1000")
	assert.Contains(err.Error(), "pipeline not found")
}

func TestDoNonJsonErrorResponse(t *testing.T) {
	assert := assert.New(t)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte("<html>bad gateway</html>"))
	}))
	defer server.Close()

	err := testClient(server.URL).do(context.Background(), http.MethodGet, "/thing", nil, nil)
	require.NotNil(t, err)
	assert.True(perr.IsFromServer(err))
	assert.Contains(err.Error(), "Bad Gateway")
}

func TestDoSuccessFalseWithTwoHundred(t *testing.T) {
	assert := assert.New(t)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"success":false,"errors":[{"code":42,"message":"nope"}],"result":null}`))
	}))
	defer server.Close()

	err := testClient(server.URL).do(context.Background(), http.MethodGet, "/thing", nil, nil)
	require.NotNil(t, err)
	assert.Contains(err.Error(), "nope")
}
