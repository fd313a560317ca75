package tidy

// NullIfEmpty converts a string column into an optional one, where empty
// strings become missing (nil).
func NullIfEmpty(values []string) []*string {
	result := make([]*string, len(values))
	for i := range values {
		if values[i] != "" {
			v := values[i]
			result[i] = &v
		}
	}
	return result
}

// BackFill replaces each missing value with the nearest present value that
// comes after it. Missing values with nothing present after them stay missing.
// The input is left untouched.
func BackFill(values []*string) []*string {
	result := make([]*string, len(values))
	var next *string
	for i := len(values) - 1; i >= 0; i-- {
		if values[i] != nil {
			next = values[i]
		}
		result[i] = next
	}
	return result
}
