// Package types holds the JSON envelopes shared by every API response.
package types

// SuccessEnvelope wraps successful payloads under a single data key.
type SuccessEnvelope struct {
	Data any `json:"data"`
}

// APIError is the public error shape; details only appear for codes that
// allow them.
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

type ErrorEnvelope struct {
	Error APIError `json:"error"`
}
