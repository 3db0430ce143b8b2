// Package dto defines the JSON shapes returned by the crypto endpoints.
package dto

// ErrorResponse is the body returned for any failed coin lookup.
type ErrorResponse struct {
	Error string `json:"error"`
}
