package tidy_test

import (
	"go.arcalot.io/assert"
	"go.flow.arcalot.io/projectsummary/internal/tidy"
	"testing"
)

func deref(values []*string) []string {
	result := make([]string, len(values))
	for i, v := range values {
		if v == nil {
			result[i] = "<nil>"
		} else {
			result[i] = *v
		}
	}
	return result
}

func TestNullIfEmpty(t *testing.T) {
	values := tidy.NullIfEmpty([]string{"", "Health", ""})
	assert.Equals(t, deref(values), []string{"<nil>", "Health", "<nil>"})
}

func TestBackFill(t *testing.T) {
	input := tidy.NullIfEmpty([]string{"", "Health", "", "", "Education", ""})
	filled := tidy.BackFill(input)
	assert.Equals(t, deref(filled), []string{"Health", "Health", "Education", "Education", "Education", "<nil>"})
	// the input column is not modified
	assert.Equals(t, deref(input), []string{"<nil>", "Health", "<nil>", "<nil>", "Education", "<nil>"})
}

func TestBackFillNothingPresent(t *testing.T) {
	filled := tidy.BackFill(tidy.NullIfEmpty([]string{"", ""}))
	assert.Equals(t, deref(filled), []string{"<nil>", "<nil>"})
	assert.Equals(t, len(tidy.BackFill(nil)), 0)
}
