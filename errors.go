package projectsummary

import "fmt"

// ErrInvalidConfig signals that the configuration cannot drive a summary run.
var ErrInvalidConfig = fmt.Errorf("invalid configuration")

// ErrQueryFailed signals that one of the summary queries could not produce its answer. The other queries of the
// same run are not affected.
type ErrQueryFailed struct {
	Section SectionID
	Cause   error
}

// Error returns the error message.
func (e ErrQueryFailed) Error() string {
	return fmt.Sprintf("%s query failed (%v)", e.Section, e.Cause)
}

// Unwrap returns the original error.
func (e ErrQueryFailed) Unwrap() error {
	return e.Cause
}
