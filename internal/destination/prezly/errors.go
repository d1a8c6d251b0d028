package prezly

import (
	"encoding/json"
	"errors"
	"fmt"
)

// APIError is a non-2xx response from the destination API. The raw
// payload is kept verbatim for diagnostics; the sync orchestrator
// classifies by Status and Message.
type APIError struct {
	Status  int
	Message string
	Payload json.RawMessage
}

func newAPIError(status int, payload []byte) *APIError {
	apiErr := &APIError{
		Status:  status,
		Payload: json.RawMessage(payload),
	}

	var body struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(payload, &body); err == nil {
		apiErr.Message = body.Message
	}

	return apiErr
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("prezly: status %d: %s", e.Status, e.Message)
	}
	return fmt.Sprintf("prezly: status %d", e.Status)
}

// AsAPIError unwraps err to an APIError if one is in the chain.
func AsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}
