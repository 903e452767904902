package gateway

import (
	"encoding/json"
	"fmt"
	"strings"
)

// APIError is a non-2xx response from the backend, carrying the HTTP
// status and a single human-readable message normalized from whichever
// body shape the backend chose to send.
type APIError struct {
	StatusCode int
	Message    string
}

// Error implements the error interface.
func (e *APIError) Error() string {
	return fmt.Sprintf("backend returned %d: %s", e.StatusCode, e.Message)
}

// errorBody covers the two structured shapes backend errors arrive in.
type errorBody struct {
	Message string `json:"message"`
	Detail  string `json:"detail"`
}

// normalizeMessage folds the backend's error-body variants into one
// display string.  Precedence: plain string body, then a "message"
// field, then a "detail" field, then a generic line naming the status.
func normalizeMessage(status int, body []byte) string {
	raw := strings.TrimSpace(string(body))
	if raw != "" {
		var structured errorBody
		if err := json.Unmarshal(body, &structured); err == nil {
			if structured.Message != "" {
				return structured.Message
			}
			if structured.Detail != "" {
				return structured.Detail
			}
		} else {
			// Not a JSON object: maybe a JSON-encoded string, else the
			// body is plain text and is the message itself.
			var s string
			if err := json.Unmarshal(body, &s); err == nil && strings.TrimSpace(s) != "" {
				return strings.TrimSpace(s)
			}
			return raw
		}
	}
	return fmt.Sprintf("request failed with status %d", status)
}
