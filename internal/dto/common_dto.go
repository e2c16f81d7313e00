package dto

// SuccessResponse is the envelope for every successful response.
type SuccessResponse struct {
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

// ErrorResponse is the flat envelope for every failure.
type ErrorResponse struct {
	Message string `json:"message"`
}
