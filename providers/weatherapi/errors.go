package weatherapi

import (
	"encoding/json"
	"fmt"
)

// APIError is a non-2xx response from WeatherAPI.com
type APIError struct {
	StatusCode int
	Code       int    // WeatherAPI.com error code, e.g. 1006 for an unknown location
	Message    string // Message from the error body, if it had one
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("API error (status %d, code %d): %s", e.StatusCode, e.Code, e.Message)
	}
	return fmt.Sprintf("API returned non-2xx status: %d", e.StatusCode)
}

// newAPIError extracts the {"error":{"code":..,"message":..}} body when present
func newAPIError(status int, body []byte) *APIError {
	apiErr := &APIError{StatusCode: status}

	var envelope struct {
		Error struct {
			Code    int    `json:"code"`
			Message string `json:"message"`
		} `json:"error"`
	}
	if err := json.Unmarshal(body, &envelope); err == nil {
		apiErr.Code = envelope.Error.Code
		apiErr.Message = envelope.Error.Message
	}

	return apiErr
}
