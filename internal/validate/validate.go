package validate

import "strings"

// Required trims and accepts any non-empty field. Form fields here are free
// text by contract; presence is the only constraint.
func Required(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if s == "" || len(s) > 200 {
		return "", false
	}
	return s, true
}

// RequiredAll reports whether every field passes Required.
func RequiredAll(fields ...string) bool {
	for _, f := range fields {
		if _, ok := Required(f); !ok {
			return false
		}
	}
	return true
}
