package client

import "fmt"

// Result is the outcome of an update or delete. The backend answer is kept
// so callers can tell success from failure instead of assuming success.
type Result struct {
	Method     string
	Path       string
	StatusCode int
	Err        error
}

// OK reports a 2xx answer without transport error.
func (r Result) OK() bool {
	return r.Err == nil && r.StatusCode >= 200 && r.StatusCode <= 299
}

// Message describes a failed outcome; it is empty for a successful one.
func (r Result) Message() string {
	switch {
	case r.Err != nil:
		return r.Err.Error()
	case !r.OK():
		return fmt.Sprintf("Unexpected response status: %d", r.StatusCode)
	default:
		return ""
	}
}

// AsError returns nil for a successful result.
func (r Result) AsError() error {
	if r.OK() {
		return nil
	}
	return resultError{r}
}

type resultError struct{ r Result }

func (e resultError) Error() string {
	return fmt.Sprintf("%s %s: %s", e.r.Method, e.r.Path, e.r.Message())
}

func (e resultError) Unwrap() error { return e.r.Err }
