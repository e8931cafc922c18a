// internal/domain/homework/parse.go
package homework

import "fmt"

// ParseStatus extracts the review status of a single homework candidate and
// renders the notification text for it. The candidate is the raw element taken
// from Response.Homeworks; both 'status' and 'homework_name' must be present
// and the status must be one of the known verdicts.
func ParseStatus(candidate any) (string, error) {
	object, ok := candidate.(map[string]any)
	if !ok {
		return "", fmt.Errorf("%w: expected an object for a homework, got %T", ErrTypeMismatch, candidate)
	}

	rawStatus, ok := object["status"]
	if !ok {
		return "", fmt.Errorf("%w: 'status'", ErrMissingField)
	}
	rawName, ok := object["homework_name"]
	if !ok {
		return "", fmt.Errorf("%w: 'homework_name'", ErrMissingField)
	}

	status, ok := rawStatus.(string)
	if !ok {
		return "", fmt.Errorf("%w: %v", ErrUnknownStatus, rawStatus)
	}
	verdict, ok := Verdicts[Status(status)]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrUnknownStatus, status)
	}

	return fmt.Sprintf("Изменился статус проверки работы \"%v\". %s", rawName, verdict), nil
}

// RawStatus reads the status field of a candidate without validating the rest
// of it. The poll loop uses this to compare against the last notified status
// before paying for a full parse.
func RawStatus(candidate any) (string, bool) {
	object, ok := candidate.(map[string]any)
	if !ok {
		return "", false
	}
	status, ok := object["status"].(string)
	return status, ok
}
