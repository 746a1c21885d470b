// Package logging configures zerolog for the toolkit and keeps credentials
// (bearer tokens, passwords, signing secrets) out of log output.
package logging

import (
	"io"
	"regexp"
	"strings"

	"github.com/rs/zerolog"
)

// RedactedValue is the replacement string for sensitive data.
const RedactedValue = "[REDACTED]"

type redaction struct {
	re   *regexp.Regexp
	repl string
}

var redactions = []redaction{
	// JSON fields written by the encoder: "token":"...", "password":"..."
	{regexp.MustCompile(`(?i)"(token|password|secret|server_secret|authorization)"\s*:\s*"[^"]*"`), `"$1":"` + RedactedValue + `"`},
	// Bearer headers
	{regexp.MustCompile(`(?i)bearer\s+[a-zA-Z0-9._~+/=-]{8,}`), "Bearer " + RedactedValue},
	// Signed JWTs anywhere in a line
	{regexp.MustCompile(`eyJ[a-zA-Z0-9_-]+\.[a-zA-Z0-9_-]+\.[a-zA-Z0-9_-]+`), RedactedValue},
	// Demo tokens issued by the mock source
	{regexp.MustCompile(`mock_jwt_token_\d+`), RedactedValue},
	// key=value pairs in free text
	{regexp.MustCompile(`(?i)\b(password|passwd|secret|token)=[^\s&"']+`), `$1=` + RedactedValue},
	// GitHub tokens
	{regexp.MustCompile(`gh[pousr]_[a-zA-Z0-9]{20,}`), RedactedValue},
}

var sensitiveFieldNames = []string{
	"password",
	"passwd",
	"secret",
	"token",
	"authorization",
	"credential",
}

// SensitiveDataHook flags events whose message carries sensitive data.
// Zerolog hooks cannot rewrite the message; FilteringWriter does the redaction.
type SensitiveDataHook struct{}

func NewSensitiveDataHook() *SensitiveDataHook {
	return &SensitiveDataHook{}
}

// Run implements zerolog.Hook.
func (h *SensitiveDataHook) Run(e *zerolog.Event, _ zerolog.Level, msg string) {
	if ContainsSensitiveData(msg) {
		e.Bool("contains_filtered_data", true)
	}
}

// ContainsSensitiveData reports whether s matches any redaction pattern.
func ContainsSensitiveData(s string) bool {
	for _, r := range redactions {
		if r.re.MatchString(s) {
			return true
		}
	}
	return false
}

// FilterSensitiveValue replaces every sensitive match in value with [REDACTED].
func FilterSensitiveValue(value string) string {
	for _, r := range redactions {
		value = r.re.ReplaceAllString(value, r.repl)
	}
	return value
}

// IsSensitiveFieldName reports whether a field name indicates sensitive data.
func IsSensitiveFieldName(fieldName string) bool {
	lower := strings.ToLower(fieldName)
	for _, s := range sensitiveFieldNames {
		if strings.Contains(lower, s) {
			return true
		}
	}
	return false
}

// SafeValue returns [REDACTED] for sensitive field names and a filtered value otherwise.
//
//	log.Debug().Str("token", logging.SafeValue("token", tok)).Msg("loaded session")
func SafeValue(fieldName, value string) string {
	if IsSensitiveFieldName(fieldName) {
		return RedactedValue
	}
	return FilterSensitiveValue(value)
}

// FilteringWriter redacts sensitive data before it reaches the wrapped writer.
type FilteringWriter struct {
	w io.Writer
}

func NewFilteringWriter(w io.Writer) *FilteringWriter {
	return &FilteringWriter{w: w}
}

// Write filters p and reports the original length so callers never see a short write.
func (fw *FilteringWriter) Write(p []byte) (int, error) {
	if _, err := fw.w.Write([]byte(FilterSensitiveValue(string(p)))); err != nil {
		return 0, err
	}
	return len(p), nil
}
