// internal/domain/homework/response.go
package homework

import (
	"encoding/json"
	"fmt"
)

// Response is the validated shape of one API answer. Homeworks keeps the raw
// candidates as decoded from JSON; only element 0 is consulted downstream and
// its fields are checked separately by ParseStatus.
type Response struct {
	Homeworks   []any
	CurrentDate int64
}

// CheckResponse verifies that a decoded API payload matches the documented
// schema: a JSON object with a "homeworks" list and a "current_date" timestamp.
// An empty homeworks list is valid.
func CheckResponse(payload any) (*Response, error) {
	if payload == nil {
		return nil, ErrEmptyResponse
	}

	object, ok := payload.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: expected an object, got %T", ErrTypeMismatch, payload)
	}

	rawHomeworks, hasHomeworks := object["homeworks"]
	rawCurrentDate, hasCurrentDate := object["current_date"]
	if !hasHomeworks || !hasCurrentDate {
		return nil, fmt.Errorf("%w: response must contain 'homeworks' and 'current_date'", ErrMissingField)
	}

	homeworks, ok := rawHomeworks.([]any)
	if !ok {
		return nil, fmt.Errorf("%w: expected a list for 'homeworks', got %T", ErrTypeMismatch, rawHomeworks)
	}

	currentDate, err := timestampValue(rawCurrentDate)
	if err != nil {
		return nil, err
	}

	return &Response{Homeworks: homeworks, CurrentDate: currentDate}, nil
}

// timestampValue accepts the numeric forms a decoded JSON document can carry.
func timestampValue(raw any) (int64, error) {
	switch v := raw.(type) {
	case float64:
		return int64(v), nil
	case int64:
		return v, nil
	case int:
		return int64(v), nil
	case json.Number:
		n, err := v.Int64()
		if err != nil {
			return 0, fmt.Errorf("%w: 'current_date' is not an integer: %v", ErrTypeMismatch, v)
		}
		return n, nil
	default:
		return 0, fmt.Errorf("%w: expected a number for 'current_date', got %T", ErrTypeMismatch, raw)
	}
}
