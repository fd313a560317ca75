package dataset_test

import (
	"errors"
	"go.arcalot.io/assert"
	"go.flow.arcalot.io/projectsummary/internal/dataset"
	"testing"
)

const nameCodes = `[
	{"id": "P1", "mjtheme_namecode": [{"code": "8", "name": "Human development"}, {"code": "11", "name": ""}]},
	{"id": "P2", "mjtheme_namecode": [{"code": "1", "name": "Economic management"}]},
	{"id": "P3"},
	{"id": "P4", "mjtheme_namecode": [], "sector": {"namecode": [{"code": "BX", "name": "Other"}]}}
]`

func loadNameCodes(t *testing.T) *dataset.Table {
	return assert.NoErrorR[*dataset.Table](t)(dataset.Load([]byte(nameCodes)))
}

func TestNormalize(t *testing.T) {
	flat, err := loadNameCodes(t).Normalize("mjtheme_namecode")
	assert.NoError(t, err)
	assert.Equals(t, flat.Rows(), 3)
	assert.Equals(t, flat.ColumnNames(), []string{"code", "name"})
	codes := assert.NoErrorR[dataset.Column](t)(flat.Column("code"))
	assert.Equals(t, codes.Values, []any{"8", "11", "1"})
	names := assert.NoErrorR[dataset.Column](t)(flat.Column("name"))
	assert.Equals(t, names.Values, []any{"Human development", "", "Economic management"})
}

func TestNormalizeMeta(t *testing.T) {
	flat, err := loadNameCodes(t).Normalize("mjtheme_namecode", "id")
	assert.NoError(t, err)
	ids := assert.NoErrorR[dataset.Column](t)(flat.Column("id"))
	assert.Equals(t, ids.Values, []any{"P1", "P1", "P2"})
}

func TestNormalizeNestedPath(t *testing.T) {
	flat, err := loadNameCodes(t).Normalize("sector.namecode")
	assert.NoError(t, err)
	assert.Equals(t, flat.Rows(), 1)

	flat, err = loadNameCodes(t).Normalize("$.sector.namecode[*]")
	assert.NoError(t, err)
	assert.Equals(t, flat.Rows(), 1)
	codes := assert.NoErrorR[dataset.Column](t)(flat.Column("code"))
	assert.Equals(t, codes.Values, []any{"BX"})
}

func TestNormalizeErrors(t *testing.T) {
	table := loadNameCodes(t)

	_, err := table.Normalize("mjsector_namecode")
	if !errors.Is(err, dataset.ErrMissingColumn) {
		t.Fatalf("Incorrect error returned: %v", err)
	}

	_, err = table.Normalize("id")
	if !errors.Is(err, dataset.ErrInvalidRecordPath) {
		t.Fatalf("Incorrect error returned: %v", err)
	}

	_, err = table.Normalize("mjtheme_namecode", "code")
	if !errors.Is(err, dataset.ErrInvalidRecordPath) {
		t.Fatalf("Incorrect error returned: %v", err)
	}

	_, err = table.Normalize("")
	if !errors.Is(err, dataset.ErrInvalidRecordPath) {
		t.Fatalf("Incorrect error returned: %v", err)
	}

	_, err = table.Normalize("a..b")
	if !errors.Is(err, dataset.ErrInvalidRecordPath) {
		t.Fatalf("Incorrect error returned: %v", err)
	}
}
