package reconcile

import (
	"regexp"
	"strings"
)

// paddedCode matches an alphabetic prefix followed by zero padding and digits.
var paddedCode = regexp.MustCompile(`^([A-Za-z]+)0+([0-9]+)$`)

// Normalize canonicalizes a business code for equality matching.
// Leading zeros are stripped and zero padding between an alphabetic prefix
// and a numeric suffix is collapsed, so "00123" becomes "123" and
// "YA000898" becomes "YA898".
func Normalize(code string) string {
	code = strings.TrimSpace(code)
	if code == "" {
		return ""
	}
	code = strings.TrimLeft(code, "0")
	return paddedCode.ReplaceAllString(code, "${1}${2}")
}
