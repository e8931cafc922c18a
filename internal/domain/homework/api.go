package homework

import "context"

// API defines the operation the poll loop needs from the review service.
// The concrete HTTP client lives in infra; this interface decouples the loop
// from it and lets tests substitute a fake.
type API interface {
	// FetchStatuses requests every homework status change since fromDate
	// (Unix seconds). It returns the decoded JSON payload without validating
	// its shape; CheckResponse does that.
	FetchStatuses(ctx context.Context, fromDate int64) (any, error)
}
