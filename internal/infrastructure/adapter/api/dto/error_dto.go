package dto

// ErrorResponse represents a standardized error response for the API
type ErrorResponse struct {
	Code    int               `json:"code"`
	Error   string            `json:"error"`
	Message string            `json:"message,omitempty"`
	Details map[string]string `json:"details,omitempty"`
}

// ConflictResponse is returned when an event's timestamp cannot be accepted
type ConflictResponse struct {
	Code      int    `json:"code"`
	Error     string `json:"error"`
	Message   string `json:"message"`
	UserID    uint64 `json:"user_id,omitempty"`
	Timestamp int64  `json:"timestamp"`
	Latest    *int64 `json:"latest,omitempty"`
}
