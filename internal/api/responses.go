// Package api defines response types shared by every transport handler.
package api

// ErrorResponse is the JSON body returned for any failed request.
type ErrorResponse struct {
	Error string `json:"error"`
}

// MessageResponse is the JSON body returned for simple acknowledgements.
type MessageResponse struct {
	Message string `json:"message"`
}
