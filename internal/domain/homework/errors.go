// internal/domain/homework/errors.go
package homework

import "fmt"

// Recoverable faults raised while fetching or interpreting an API response.
// The poll loop matches on these with errors.Is/errors.As; every one of them
// is reported and retried, never fatal.
var (
	ErrEmptyResponse = fmt.Errorf("no response received from the API")
	ErrTypeMismatch  = fmt.Errorf("response value has an unexpected type")
	ErrMissingField  = fmt.Errorf("required field is missing")
	ErrUnknownStatus = fmt.Errorf("unknown homework status")
)

// ServiceUnavailableError is returned when the API answers with a non-200
// status. It carries the HTTP code and the raw body text for reporting.
type ServiceUnavailableError struct {
	StatusCode int
	Body       string
}

func (e *ServiceUnavailableError) Error() string {
	return fmt.Sprintf("endpoint unavailable: API response code %d, body: %s", e.StatusCode, e.Body)
}

// TransportError wraps a network-level fault (DNS, timeout, connection reset).
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("request to API failed: %v", e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// MalformedResponseError wraps a JSON decoding failure of a 200 response body.
type MalformedResponseError struct {
	Err error
}

func (e *MalformedResponseError) Error() string {
	return fmt.Sprintf("could not decode API response: %v", e.Err)
}

func (e *MalformedResponseError) Unwrap() error { return e.Err }
