package mcp

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rcweston90/Weight2Plate/internal/models"
	"github.com/rcweston90/Weight2Plate/internal/storage"
)

// HTTPClient implements PresetSource by calling the Weight2Plate REST
// API. Used for remote MCP mode where the binary runs locally (stdio)
// but presets live on a running server.
type HTTPClient struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// Compile-time check: HTTPClient satisfies PresetSource.
var _ PresetSource = (*HTTPClient)(nil)

// NewHTTPClient creates an HTTPClient targeting the given base URL. The
// API key is only needed for save_preset.
func NewHTTPClient(baseURL, apiKey string) *HTTPClient {
	return &HTTPClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

func (c *HTTPClient) do(ctx context.Context, method, path string, payload any) ([]byte, error) {
	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("httpclient: encode payload: %w", err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("httpclient: create request: %w", err)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.apiKey != "" {
		req.Header.Set("X-API-Key", c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("httpclient: %s: %w", path, err)
	}
	defer func() { _ = resp.Body.Close() }()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("httpclient: read body: %w", err)
	}

	if resp.StatusCode == http.StatusNotFound {
		return nil, storage.ErrNotFound
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("httpclient: %s returned %d: %s", path, resp.StatusCode, data)
	}

	return data, nil
}

func (c *HTTPClient) GetPreset(ctx context.Context, name string) (models.Preset, error) {
	data, err := c.do(ctx, http.MethodGet, "/api/v1/presets/"+url.PathEscape(name), nil)
	if err != nil {
		return models.Preset{}, err
	}

	var preset models.Preset
	if err := json.Unmarshal(data, &preset); err != nil {
		return models.Preset{}, fmt.Errorf("httpclient: decode preset: %w", err)
	}
	return preset, nil
}

func (c *HTTPClient) PutPreset(ctx context.Context, preset models.Preset) (models.Preset, error) {
	data, err := c.do(ctx, http.MethodPut, "/api/v1/presets/"+url.PathEscape(preset.Name), map[string]any{
		"unit":              preset.Unit,
		"barbell_id":        preset.BarbellID,
		"final_side_weight": preset.FinalSideWeight,
		"drop_percent":      preset.DropPercent,
	})
	if err != nil {
		return models.Preset{}, err
	}

	var saved models.Preset
	if err := json.Unmarshal(data, &saved); err != nil {
		return models.Preset{}, fmt.Errorf("httpclient: decode preset: %w", err)
	}
	return saved, nil
}

func (c *HTTPClient) ListPresets(ctx context.Context) ([]models.Preset, error) {
	data, err := c.do(ctx, http.MethodGet, "/api/v1/presets", nil)
	if err != nil {
		return nil, err
	}

	var presets []models.Preset
	if err := json.Unmarshal(data, &presets); err != nil {
		return nil, fmt.Errorf("httpclient: decode presets: %w", err)
	}
	return presets, nil
}
