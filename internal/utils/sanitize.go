package utils

import (
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

var strictPolicy = bluemonday.StrictPolicy()

// Sanitize strips all markup from user-supplied free text (customer details,
// the bouquet style prompt) and trims surrounding whitespace.
func Sanitize(s string) string {
	return strings.TrimSpace(strictPolicy.Sanitize(s))
}
