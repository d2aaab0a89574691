package sanitize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeStringJsonField(t *testing.T) {
	assert := assert.New(t)
	s := NewSanitizer(SanitizerOptions{
		ExcludeFields: []string{"secret_access_key"},
	})

	in := `{"endpoint":"https://example.com","secret_access_key":"super-secret"}`
	out := s.SanitizeString(in)
	assert.NotContains(out, "super-secret")
	assert.Contains(out, redactedStr)
	assert.Contains(out, "https://example.com")
}

func TestSanitizeStringYamlField(t *testing.T) {
	assert := assert.New(t)
	s := NewSanitizer(SanitizerOptions{
		ExcludeFields: []string{"secret_access_key"},
	})

	in := "endpoint: https://example.com\nsecret_access_key: super-secret\n"
	out := s.SanitizeString(in)
	assert.NotContains(out, "super-secret")
	assert.Contains(out, redactedStr)
}

func TestSanitizeStringCustomPattern(t *testing.T) {
	assert := assert.New(t)
	s := NewSanitizer(SanitizerOptions{
		ExcludePatterns: []string{`password:(\s*\S+)`},
	})

	out := s.SanitizeString("password: hunter2")
	assert.NotContains(out, "hunter2")
}

func TestDefaultInstanceRedactsCredentials(t *testing.T) {
	assert := assert.New(t)
	in := `{"credentials":{"endpoint":"e","access_key_id":"AKIA123","secret_access_key":"shh"}}`
	out := Instance.SanitizeString(in)
	assert.NotContains(out, "AKIA123")
	assert.NotContains(out, "shh")
}

func TestNullSanitizerPassesThrough(t *testing.T) {
	assert := assert.New(t)
	in := `{"secret_access_key":"shh"}`
	assert.Equal(in, NullSanitizer.SanitizeString(in))
}
