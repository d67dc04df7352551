package sanitizer

import (
	"strings"
	"unicode"
)

func TrimAndNormalize(s string) string {
	s = strings.TrimSpace(s)

	if s == "" {
		return ""
	}

	var result strings.Builder
	var lastWasSpace bool

	for _, r := range s {
		if unicode.IsSpace(r) {
			if !lastWasSpace {
				result.WriteRune(' ')
				lastWasSpace = true
			}
		} else {
			result.WriteRune(r)
			lastWasSpace = false
		}
	}

	return result.String()
}

func NormalizeName(name string) string {
	return TrimAndNormalize(name)
}

// NormalizeOptional applies TrimAndNormalize in place; nil stays nil.
func NormalizeOptional(s *string) {
	if s == nil {
		return
	}
	*s = TrimAndNormalize(*s)
}

// NormalizeLabel is used for enum-like values such as salary types.
func NormalizeLabel(label string) string {
	return strings.ToLower(TrimAndNormalize(label))
}
