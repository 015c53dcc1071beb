package fetchers

import "fmt"

// FetchError indicates the catalog request itself failed; transport errors
// and non-200 responses both land here. Row-level parse faults never produce
// a FetchError, they only exclude the offending row.
type FetchError struct {
	URL        string
	StatusCode int // zero when the transport failed before any response
	Err        error
}

func (e *FetchError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("catalog fetch from %s returned status %d", e.URL, e.StatusCode)
	}
	return fmt.Sprintf("catalog fetch from %s failed: %v", e.URL, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}
