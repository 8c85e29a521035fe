// Package validation holds value checks shared by config and UI code.
package validation

import "regexp"

var hexColorRE = regexp.MustCompile(`^#([0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

// IsHexColor reports whether value is a CSS hex color (#rgb or #rrggbb).
func IsHexColor(value string) bool {
	return hexColorRE.MatchString(value)
}
