// Package response defines the envelope every HTTP handler replies with, so
// seat map reads, hold mutations, and admin operations all share one shape.
package response

// StandardApiResponse is the JSON body returned by all endpoints. Data
// carries the payload on success; Errors carries validation or failure
// details and is omitted otherwise.
type StandardApiResponse struct {
	Status     string      `json:"status"`      // "success" or "error"
	StatusCode int         `json:"status_code"` // HTTP status code
	Message    string      `json:"message"`
	Data       interface{} `json:"data,omitempty"`
	Errors     interface{} `json:"errors,omitempty"`
}
