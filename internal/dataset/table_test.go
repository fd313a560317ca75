package dataset_test

import (
	"errors"
	"go.arcalot.io/assert"
	"go.flow.arcalot.io/projectsummary/internal/dataset"
	"testing"
)

const projects = `[
	{"countryname": "Kenya", "mjtheme": ["Human development"], "id": "P1"},
	{"countryname": "Nepal", "mjtheme": ["Rural development", "Human development"], "id": "P2"},
	{"mjtheme": "Rule of law", "id": "P3", "totalamt": 130000000}
]`

func TestLoad(t *testing.T) {
	table, err := dataset.Load([]byte(projects))
	assert.NoError(t, err)
	assert.Equals(t, table.Rows(), 3)
	assert.Equals(t, table.ColumnNames(), []string{"countryname", "id", "mjtheme", "totalamt"})

	countries, err := table.Column("countryname")
	assert.NoError(t, err)
	assert.Equals(t, countries.Name, "countryname")
	assert.Equals(t, countries.Values, []any{"Kenya", "Nepal", nil})

	amounts, err := table.Column("totalamt")
	assert.NoError(t, err)
	assert.Equals(t, amounts.Values, []any{nil, nil, int64(130000000)})

	themes, err := table.Column("mjtheme")
	assert.NoError(t, err)
	assert.Equals(t, themes.Values[2], any("Rule of law"))
}

func TestLoadMissingColumn(t *testing.T) {
	table, err := dataset.Load([]byte(projects))
	assert.NoError(t, err)
	_, err = table.Column("mjsector")
	assert.Error(t, err)
	if !errors.Is(err, dataset.ErrMissingColumn) {
		t.Fatalf("Incorrect error returned: %v", err)
	}
	assert.Contains(t, err.Error(), "mjsector")
}

func TestLoadEmptyArray(t *testing.T) {
	table, err := dataset.Load([]byte(`[]`))
	assert.NoError(t, err)
	assert.Equals(t, table.Rows(), 0)
	assert.Equals(t, table.ColumnNames(), []string{})
}

var loadErrorData = map[string]struct {
	input    string
	expected error
}{
	"malformed": {
		input:    `[{"countryname": "Kenya"`,
		expected: dataset.ErrInvalidJSON,
	},
	"object": {
		input:    `{"countryname": "Kenya"}`,
		expected: dataset.ErrNotRecordArray,
	},
	"scalar-item": {
		input:    `[{"countryname": "Kenya"}, 3]`,
		expected: dataset.ErrNotRecordArray,
	},
}

func TestLoadErrors(t *testing.T) {
	for name, tc := range loadErrorData {
		testCase := tc
		t.Run(name, func(t *testing.T) {
			_, err := dataset.Load([]byte(testCase.input))
			assert.Error(t, err)
			if !errors.Is(err, testCase.expected) {
				t.Fatalf("Incorrect error returned: %v", err)
			}
		})
	}
}

func TestFromRecords(t *testing.T) {
	table := dataset.FromRecords([]map[string]any{
		{"code": "1"},
		{"code": "2", "name": "Y"},
	})
	names, err := table.Column("name")
	assert.NoError(t, err)
	assert.Equals(t, names.Values, []any{nil, "Y"})
}
