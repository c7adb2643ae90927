// Package dto defines data transfer objects for API requests and responses.
package dto

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

// MessageResponse represents a generic message response.
type MessageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
