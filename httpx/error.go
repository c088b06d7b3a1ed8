package httpx

// APIError is the single failure shape surfaced by the client. Every non-2xx
// response and every transport-level failure is normalized into one, so
// callers never need to distinguish HTTP failures from network failures by
// type.
type APIError struct {
	// Message is the human-readable error, taken from the response body's
	// "message" or "error" field when present.
	Message string `json:"message"`
	// Status is the HTTP status code, or 0 for network-level failures.
	Status int `json:"status"`
	// Errors carries field-level validation messages when the backend
	// returned them.
	Errors map[string][]string `json:"errors,omitempty"`

	cause error
}

func (e *APIError) Error() string { return e.Message }

// Unwrap exposes the underlying transport error for network failures.
func (e *APIError) Unwrap() error { return e.cause }

// IsNetwork reports a transport-level failure (DNS, refused connection,
// timeout) rather than an HTTP response.
func (e *APIError) IsNetwork() bool { return e.Status == 0 }

// IsUnauthorized reports a 401; by the time the caller sees it the stored
// token has already been cleared.
func (e *APIError) IsUnauthorized() bool { return e.Status == 401 }

// IsValidation reports a 4xx carrying field-level errors, suitable for
// inline per-field display.
func (e *APIError) IsValidation() bool {
	return e.Status >= 400 && e.Status < 500 && len(e.Errors) > 0
}

// IsServer reports a 5xx.
func (e *APIError) IsServer() bool { return e.Status >= 500 }

// errorBody is the error shape the backend responds with.
type errorBody struct {
	Message string              `json:"message"`
	Err     string              `json:"error"`
	Errors  map[string][]string `json:"errors"`
}
