package models

// ErrorResponse is the standard error payload.
type ErrorResponse struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
}
