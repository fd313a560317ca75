// Package util holds small helpers shared by the summary packages.
package util

import (
	"encoding/json"

	"github.com/ohler55/ojg/oj"
	"go.arcalot.io/lang"
)

var canonicalJSON = &oj.Options{Sort: true}

// JSONEncode encodes a value as JSON or panics. It is meant for constant
// values such as schema defaults.
func JSONEncode(value any) string {
	return string(lang.Must2(json.Marshal(value)))
}

// CellString renders a decoded JSON cell as a string. Strings are returned
// as-is, everything else is written as compact JSON with sorted object keys, so
// two equal values always render identically.
func CellString(value any) string {
	if s, ok := value.(string); ok {
		return s
	}
	return oj.JSON(value, canonicalJSON)
}
