package domain

import (
	"fmt"
	"regexp"

	"github.com/google/uuid"
)

// CanonicalURLBase prefixes generated questionnaire URLs.
const CanonicalURLBase = "http://cardinalkit.org/fhir/Questionnaire/"

var canonicalURLPattern = regexp.MustCompile(
	`^[Hh][Tt][Tt][Pp][Ss]?://(?:(?:[a-zA-Z\x{00a1}-\x{ffff}0-9]+-?)*[a-zA-Z\x{00a1}-\x{ffff}0-9]+)` +
		`(?:\.(?:[a-zA-Z\x{00a1}-\x{ffff}0-9]+-?)*[a-zA-Z\x{00a1}-\x{ffff}0-9]+)*` +
		`(?:\.(?:[a-zA-Z\x{00a1}-\x{ffff}]{2,}))(?::\d{2,5})?(?:/[^\s]*)?$`)

// NewCanonicalURL generates a unique canonical URL for a new questionnaire.
func NewCanonicalURL() string {
	return CanonicalURLBase + uuid.New().String()
}

// ValidateCanonicalURL checks that u is an absolute http(s) URL with a
// dotted host name.
func ValidateCanonicalURL(u string) error {
	if u == "" {
		return fmt.Errorf("canonical URL is required")
	}
	if !canonicalURLPattern.MatchString(u) {
		return fmt.Errorf("%q is not a valid http(s) URL", u)
	}
	return nil
}
