package configloader

import (
	"regexp"
	"strings"
)

// codePrefixRegex matches a diagnostic code or code prefix: the severity
// letter optionally followed by up to three digits. "E", "E5", and "E501"
// all select by prefix.
var codePrefixRegex = regexp.MustCompile(`^[EW][0-9]{0,3}$`)

// IsValidCodePrefix reports whether s is a well-formed code or code
// prefix.
func IsValidCodePrefix(s string) bool {
	return codePrefixRegex.MatchString(s)
}

// NormalizeCodeList trims and uppercases user-supplied code prefixes,
// dropping empty entries. Invalid entries pass through for validation to
// flag.
func NormalizeCodeList(codes []string) []string {
	if codes == nil {
		return nil
	}
	result := make([]string, 0, len(codes))
	for _, code := range codes {
		trimmed := strings.ToUpper(strings.TrimSpace(code))
		if trimmed == "" {
			continue
		}
		result = append(result, trimmed)
	}
	return result
}
