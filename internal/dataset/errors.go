package dataset

import "fmt"

// ErrInvalidJSON signals that the dataset could not be parsed as JSON.
var ErrInvalidJSON = fmt.Errorf("dataset is not valid JSON")

// ErrNotRecordArray signals that the dataset is valid JSON, but not an array of objects.
var ErrNotRecordArray = fmt.Errorf("dataset is not an array of records")

// ErrMissingColumn signals that no record carries the requested field.
var ErrMissingColumn = fmt.Errorf("column not found")

// ErrInvalidRecordPath signals that a record path does not lead to a list of objects.
var ErrInvalidRecordPath = fmt.Errorf("invalid record path")
