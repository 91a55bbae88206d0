// Package httperror implements the error response body of the API.
package httperror

// Error is the response body for all failed requests.
type Error struct {
	Status string `json:"status" example:"error"`
	Error  string `json:"error" example:"invalid category"`
}

// New returns the response body for an error.
func New(err error) Error {
	return Error{
		Status: "error",
		Error:  err.Error(),
	}
}

// NewFromString returns the response body for an error message.
func NewFromString(message string) Error {
	return Error{
		Status: "error",
		Error:  message,
	}
}
