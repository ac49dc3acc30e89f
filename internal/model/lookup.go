// Package model contains the lookup data structures shared by the service and HTTP layers.
package model

import "encoding/json"

// LookupRequest identifies one plate lookup.
// The plate is taken from the request path and is not normalized.
type LookupRequest struct {
	LicensePlate string `json:"license_plate"`
}

// LookupResult is the vehicle record returned by the upstream service.
// Body is relayed to the caller byte for byte; only its JSON validity is checked.
type LookupResult struct {
	LicensePlate string          `json:"-"`
	Body         json.RawMessage `json:"-"`
}

// Caller-visible lookup failure messages. No upstream detail is ever surfaced.
const (
	MsgLookupFailed = "An error occurred while fetching the data"
	MsgInvalidPlate = "invalid license plate"
)

// LookupError is the response body of a failed lookup on every mounting.
type LookupError struct {
	Error string `json:"error"`
}
