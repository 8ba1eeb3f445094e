package conform

import (
	"regexp"
	"strings"
	"time"

	"github.com/conformlabs/conform/internal/values"
)

var (
	// Permissive on purpose: anything@anything.anything with no whitespace
	// and no second @. Not an RFC 5322 validator.
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

	// YYYY-MM-DD, optionally followed by Thh:mm:ss, fractional seconds and
	// a Z or ±hh:mm offset. The pattern alone admits calendar-invalid
	// strings (month 13); the parse gate below is the real check.
	isoDatePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}(T\d{2}:\d{2}:\d{2}(\.\d+)?(Z|[+-]\d{2}:\d{2})?)?$`)
)

// IsStringMatching accepts strings the pattern matches anywhere; anchor the
// pattern itself to force a whole-string match.
func IsStringMatching(pattern *regexp.Regexp) Inspector {
	return func(value any) bool {
		s, ok := values.StringValue(value)
		return ok && pattern.MatchString(s)
	}
}

// IsISODateString accepts strings in ISO-8601 date or date-time form that
// also parse to a valid calendar date. Both gates are required: the pattern
// fixes the shape, time.Parse rejects impossible dates the pattern admits.
func IsISODateString(value any) bool {
	s, ok := values.StringValue(value)
	if !ok || !isoDatePattern.MatchString(s) {
		return false
	}
	_, err := time.Parse(isoLayout(s), s)
	return err == nil
}

// isoLayout picks the parse layout matching the string's shape. time.Parse
// tolerates fractional seconds on its own whenever the seconds field is
// present, so the fraction needs no layout of its own.
func isoLayout(s string) string {
	if len(s) == len("2006-01-02") {
		return "2006-01-02"
	}
	if strings.ContainsAny(s[len("2006-01-02"):], "Z+-") {
		return time.RFC3339
	}
	return "2006-01-02T15:04:05"
}

// IsEmail accepts strings shaped like an email address: something@host.tld
// with no whitespace. Deliberately far short of RFC 5322.
func IsEmail(value any) bool {
	s, ok := values.StringValue(value)
	return ok && emailPattern.MatchString(s)
}
