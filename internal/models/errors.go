package models

// ErrorResponse is the body of every failed content request. Fallback always
// carries a locally generated payload in the same shape the route would have
// returned on success; the caller never receives a bare error.
type ErrorResponse struct {
	Error     string      `json:"error"`
	RequestID string      `json:"requestId,omitempty"`
	Fallback  interface{} `json:"fallback,omitempty"`
}
