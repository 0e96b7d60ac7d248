package info

import "fmt"

// ValidationError reports malformed or contradictory request parameters.
// It is detected before any remote call is made and is never retried.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid request: %s", e.Msg)
}

// FetchError reports a failure returned by the OneFS API while gathering a
// single category. It carries the category, the cluster host identity, and
// the underlying cause so callers see one descriptive failure instead of a
// bare transport error.
type FetchError struct {
	Category Category
	Host     string
	Err      error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("gathering %s for PowerScale cluster %s failed: %v",
		e.Category, e.Host, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// InternalError reports an inconsistency between the validated request and
// the category registry. The validation boundary rejects unknown categories,
// so hitting this means the schema and the registry have drifted.
type InternalError struct {
	Msg string
}

func (e *InternalError) Error() string {
	return fmt.Sprintf("internal error: %s", e.Msg)
}

func newValidationError(format string, args ...any) *ValidationError {
	return &ValidationError{Msg: fmt.Sprintf(format, args...)}
}

func newFetchError(category Category, host string, err error) *FetchError {
	return &FetchError{Category: category, Host: host, Err: err}
}
