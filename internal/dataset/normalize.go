package dataset

import (
	"fmt"
	"strings"

	"github.com/ohler55/ojg/jp"
)

// RecordPath compiles a record path. A path starting with "$" is parsed as a
// JSONPath expression; anything else is a dot separated chain of field names.
func RecordPath(path string) (jp.Expr, error) {
	if strings.HasPrefix(path, "$") {
		x, err := jp.ParseString(path)
		if err != nil {
			return nil, fmt.Errorf("%w %q (%w)", ErrInvalidRecordPath, path, err)
		}
		return x, nil
	}
	if path == "" {
		return nil, fmt.Errorf("%w: empty path", ErrInvalidRecordPath)
	}
	x := jp.R()
	for _, field := range strings.Split(path, ".") {
		if field == "" {
			return nil, fmt.Errorf("%w %q (empty field name)", ErrInvalidRecordPath, path)
		}
		x = x.C(field)
	}
	return x, nil
}

// Normalize flattens the list of objects found at recordPath in every row into
// a new table with one row per nested object, in row order and then list
// order. The meta fields of the parent row are copied onto each of its nested
// rows. Rows without a value at recordPath contribute nothing.
func (t *Table) Normalize(recordPath string, meta ...string) (*Table, error) {
	x, err := RecordPath(recordPath)
	if err != nil {
		return nil, err
	}
	var nested []map[string]any
	found := false
	for i := 0; i < t.rows; i++ {
		parent := t.record(i)
		matches := x.Get(parent)
		if len(matches) > 0 {
			found = true
		}
		for _, match := range matches {
			objects, err := recordList(match)
			if err != nil {
				return nil, fmt.Errorf("%w %q in row %d (%w)", ErrInvalidRecordPath, recordPath, i, err)
			}
			for _, object := range objects {
				row := make(map[string]any, len(object)+len(meta))
				for key, value := range object {
					row[key] = value
				}
				for _, m := range meta {
					if _, conflict := object[m]; conflict {
						return nil, fmt.Errorf(
							"%w %q in row %d (meta field %q conflicts with a nested field)",
							ErrInvalidRecordPath, recordPath, i, m,
						)
					}
					row[m] = parent[m]
				}
				nested = append(nested, row)
			}
		}
	}
	if !found {
		return nil, fmt.Errorf("%w: %q", ErrMissingColumn, recordPath)
	}
	return FromRecords(nested), nil
}

// recordList accepts either a list of objects or a single object.
func recordList(value any) ([]map[string]any, error) {
	switch v := value.(type) {
	case nil:
		return nil, nil
	case map[string]any:
		return []map[string]any{v}, nil
	case []any:
		result := make([]map[string]any, len(v))
		for i, item := range v {
			object, ok := item.(map[string]any)
			if !ok {
				return nil, fmt.Errorf("item %d is %T, not an object", i, item)
			}
			result[i] = object
		}
		return result, nil
	default:
		return nil, fmt.Errorf("value is %T, not a list of objects", value)
	}
}
