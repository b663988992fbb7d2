package api

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// MessageResponse represents a simple acknowledgment response.
type MessageResponse struct {
	Message string `json:"message"`
}
