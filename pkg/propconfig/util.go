package propconfig

import "strings"

// isNonBlank reports whether s is non-empty after trimming whitespace. It
// underlies the "present with non-blank value" presence rule of
// PropertyContext.IsPresent, used by multi-property groups and the
// PropertyIsPresent/PropertyIsAbsent conditions.
func isNonBlank(s string) bool {
	return strings.TrimSpace(s) != ""
}
