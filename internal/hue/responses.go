package hue

import "fmt"

type AuthRequest struct {
	DeviceType string `json:"devicetype"`
}

// one element of the array returned by POST /api
type AuthResponse struct {
	Success *struct {
		Username string `json:"username"`
	} `json:"success,omitempty"`
	Error *APIError `json:"error,omitempty"`
}

type APIError struct {
	Type        int    `json:"type"`
	Address     string `json:"address"`
	Description string `json:"description"`
}

func (e *APIError) Error() string {
	return e.Description
}

type LightState struct {
	On bool `json:"on"`
}

type LightResource struct {
	Name  string     `json:"name"`
	State LightState `json:"state"`
}

// LightsResponse is keyed by the stringified light id
type LightsResponse map[string]LightResource

// the v1 API reports failures as an array of error objects
type errorResponse []struct {
	Error *APIError `json:"error"`
}

func (r errorResponse) firstError() error {
	for _, e := range r {
		if e.Error != nil {
			return e.Error
		}
	}
	return fmt.Errorf("bridge returned an unrecognised response")
}
