package hue

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/wheelibin/huecli/internal/constants"
	"github.com/wheelibin/huecli/internal/models"
)

type HueAPIService struct {
	logger *log.Logger
	client *http.Client
	creds  models.Credentials
}

func NewHueAPIService(logger *log.Logger, client *http.Client, creds models.Credentials) *HueAPIService {
	if client == nil {
		client = http.DefaultClient
	}
	return &HueAPIService{logger: logger, client: client, creds: creds}
}

func (h *HueAPIService) GET(ctx context.Context, path string) ([]byte, error) {
	return h.makeRequest(ctx, http.MethodGet, path, nil)
}

func (h *HueAPIService) PUT(ctx context.Context, path string, body []byte) ([]byte, error) {
	return h.makeRequest(ctx, http.MethodPut, path, body)
}

func (h *HueAPIService) POST(ctx context.Context, path string, body []byte) ([]byte, error) {
	return h.makeRequest(ctx, http.MethodPost, path, body)
}

// CreateUser asks the bridge for a new API key. The link button must have been
// pressed shortly before.
func (h *HueAPIService) CreateUser(ctx context.Context, username string) ([]byte, error) {
	requestBody, err := json.Marshal(AuthRequest{DeviceType: constants.DeviceTypePrefix + username})
	if err != nil {
		return nil, fmt.Errorf("error encoding auth request: %w", err)
	}

	body, err := h.POST(ctx, "/api", requestBody)
	if err != nil {
		return body, fmt.Errorf("error requesting api key from hue bridge: %w", err)
	}
	return body, nil
}

// GetLights returns the raw lights document.
func (h *HueAPIService) GetLights(ctx context.Context) ([]byte, error) {
	body, err := h.GET(ctx, h.keyPath("/lights"))
	if err != nil {
		return body, fmt.Errorf("error reading lights from hue bridge: %w", err)
	}
	return body, nil
}

// SetLightOn switches a single light and returns the bridge's response verbatim.
func (h *HueAPIService) SetLightOn(ctx context.Context, id int, on bool) ([]byte, error) {
	requestBody := []byte(fmt.Sprintf(`{"on":%t}`, on))

	body, err := h.PUT(ctx, h.keyPath(fmt.Sprintf("/lights/%d/state", id)), requestBody)
	if err != nil {
		return body, fmt.Errorf("error updating light %d: %w", id, err)
	}
	return body, nil
}

// ParseLights decodes a lights document, turning a v1 error array into an error.
func ParseLights(body []byte) (LightsResponse, error) {
	if strings.HasPrefix(strings.TrimSpace(string(body)), "[") {
		errResp := errorResponse{}
		if err := json.Unmarshal(body, &errResp); err != nil {
			return nil, fmt.Errorf("error parsing lights response: %w", err)
		}
		return nil, errResp.firstError()
	}

	lights := LightsResponse{}
	if err := json.Unmarshal(body, &lights); err != nil {
		return nil, fmt.Errorf("error parsing lights response: %w", err)
	}
	return lights, nil
}

func (h *HueAPIService) keyPath(path string) string {
	return fmt.Sprintf("/api/%s%s", h.creds.Key, path)
}

// keeps the api key out of the logs
func (h *HueAPIService) redact(path string) string {
	if h.creds.Key == "" {
		return path
	}
	return strings.ReplaceAll(path, h.creds.Key, "<key>")
}

func (h *HueAPIService) makeRequest(ctx context.Context, verb string, path string, body []byte) (responseBody []byte, err error) {

	url := fmt.Sprintf("http://%s%s", h.creds.Host, path)

	var bodyReader io.Reader
	if body != nil {
		bodyReader = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, verb, url, bodyReader)
	if err != nil {
		return nil, err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	h.logger.Debug("Hue API request", "method", verb, "path", h.redact(path))

	// make the request
	resp, err := h.client.Do(req)
	if err != nil {
		h.logger.Error(err)
		return nil, err
	}
	defer func() {
		if cerr := resp.Body.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close response body: %w", cerr)
		}
	}()

	responseBody, err = io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("error reading response body: %w", err)
	}

	h.logger.Debug("Hue API response", "method", verb, "path", h.redact(path), "status", resp.StatusCode)

	if resp.StatusCode != http.StatusOK {
		// the body is still handed back so callers can show what the bridge said
		h.logger.Error("Error making Hue API call", "path", h.redact(path), "status", resp.Status)
		return responseBody, fmt.Errorf("unexpected status %s", resp.Status)
	}

	return responseBody, nil
}
