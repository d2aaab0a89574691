package sanitize

import (
	"fmt"
	"log/slog"
	"regexp"
	"slices"
	"strings"
)

const redactedStr = "<redacted>"

type SanitizerOptions struct {
	// ExcludeFields is a list of fields to exclude from sanitization
	ExcludeFields []string
	// ExcludePatterns is a list of regexes - any capture groups are redacted
	ExcludePatterns []string
}

type Sanitizer struct {
	fields   []string
	patterns []*regexp.Regexp
}

// Instance is the default sanitizer. It redacts the write-only pieces of a
// pipeline destination (bucket credentials) and raw token values from any
// serialized output.
var Instance = NewSanitizer(SanitizerOptions{
	ExcludeFields: []string{"secret_access_key", "access_key_id", "value", "token"},
})

// NullSanitizer passes everything through unredacted.
var NullSanitizer = NewSanitizer(SanitizerOptions{})

func NewSanitizer(opts SanitizerOptions) *Sanitizer {
	// dedupe patterns using map
	var patterns = make(map[string]struct{}, len(opts.ExcludeFields)+len(opts.ExcludePatterns))

	// first convert exclude fields to regex patterns to exclude the fields from both JSON and YAML
	for _, f := range opts.ExcludeFields {
		excludeFromJson := getExcludeFromJsonRegex(f)
		patterns[excludeFromJson] = struct{}{}

		excludeFromYaml := getExcludeFromYamlRegex(f)
		patterns[excludeFromYaml] = struct{}{}
	}

	// add in custom patterns
	for _, p := range opts.ExcludePatterns {
		patterns[p] = struct{}{}
	}

	s := &Sanitizer{fields: opts.ExcludeFields}

	// now convert all patterns into regexes
	for p := range patterns {
		re, err := regexp.Compile(p)
		if err != nil {
			slog.Warn("Invalid regex pattern", slog.String("pattern", p), "error", err)
			continue
		}
		s.patterns = append(s.patterns, re)
	}
	return s
}

func getExcludeFromYamlRegex(fieldName string) string {
	return fmt.Sprintf(`%s:\s*([^\n]+)`, fieldName)
}

func getExcludeFromJsonRegex(fieldName string) string {
	return fmt.Sprintf(`"%s"\s*:\s*"([^"]+)"`, fieldName)
}

// FieldExcluded reports whether a field name is redacted wholesale.
func (s *Sanitizer) FieldExcluded(fieldName string) bool {
	return slices.Contains(s.fields, strings.ToLower(fieldName))
}

func (s *Sanitizer) SanitizeString(v string) string {
	for _, re := range s.patterns {
		v = re.ReplaceAllStringFunc(v, func(s string) string {
			matched := re.FindStringSubmatch(s)
			for i := 1; i < len(matched); i++ {
				v = strings.ReplaceAll(v, matched[i], redactedStr)
			}
			return v
		})
	}

	return v
}
