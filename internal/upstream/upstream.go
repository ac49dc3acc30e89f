package upstream

import (
	"context"
	"encoding/json"
	"errors"
)

// Package upstream contains the outbound client for the third-party vehicle-data service.
// Implementations relay the upstream payload untouched and never retry.

var (
	// ErrUnexpectedStatus is returned when the upstream answers outside the 2xx range.
	ErrUnexpectedStatus = errors.New("unexpected upstream status")
	// ErrInvalidPayload is returned when a 2xx body is not valid JSON.
	ErrInvalidPayload = errors.New("upstream payload is not valid JSON")
)

// VehicleSource fetches the raw vehicle record for a plate segment.
type VehicleSource interface {
	// Fetch substitutes plate into the lookup URL as given and returns the JSON body unchanged.
	// Callers that need escaping must escape before calling.
	Fetch(ctx context.Context, plate string) (json.RawMessage, error)
}
