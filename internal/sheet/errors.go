package sheet

import (
	"errors"
	"fmt"
)

// Common sheet endpoint errors.
var (
	// ErrNotFound is returned when the sheet or tab does not exist.
	ErrNotFound = errors.New("sheet not found: check sheet_id and sheet_name")
	// ErrForbidden is returned when the sheet is not shared publicly.
	ErrForbidden = errors.New("sheet is not publicly readable")
	// ErrRateLimited is returned when the endpoint throttles requests.
	ErrRateLimited = errors.New("rate limited by sheet endpoint: try again shortly")
)

// StatusError is returned for any other non-success response.
type StatusError struct {
	Code int
	Body string
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("sheet endpoint error %d", e.Code)
	}
	return fmt.Sprintf("sheet endpoint error %d: %s", e.Code, e.Body)
}
