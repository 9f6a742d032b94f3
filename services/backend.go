package services

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/IamDalemark/energy-consumption-frontend/config"
	"github.com/IamDalemark/energy-consumption-frontend/models"
)

// ErrBackendUnavailable covers transport failures, non-2xx statuses and
// unparseable payloads from the backend. Callers surface all of them as one
// generic failure.
var ErrBackendUnavailable = errors.New("backend unavailable")

// BackendClient issues the outbound HTTP calls to the prediction/dataset
// backend. One call per user action, no retries.
type BackendClient struct {
	httpClient *http.Client
	datasetURL string
	predictURL string
}

func NewBackendClient(cfg config.BackendConfig) *BackendClient {
	return &BackendClient{
		httpClient: &http.Client{Timeout: time.Duration(cfg.TimeoutSec) * time.Second},
		datasetURL: cfg.DatasetURL(),
		predictURL: cfg.PredictURL(),
	}
}

// DatasetRaw fetches one dataset page and returns the backend's body
// unchanged, so the proxy can relay it byte for byte.
func (c *BackendClient) DatasetRaw(ctx context.Context, page, limit int) ([]byte, error) {
	u := fmt.Sprintf("%s/dataset?page=%d&limit=%d", c.datasetURL, page, limit)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBackendUnavailable, err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBackendUnavailable, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBackendUnavailable, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("%w: dataset returned status %d", ErrBackendUnavailable, resp.StatusCode)
	}
	return body, nil
}

// FetchDataset fetches and decodes one dataset page.
func (c *BackendClient) FetchDataset(ctx context.Context, page, limit int) (*models.DatasetPage, error) {
	body, err := c.DatasetRaw(ctx, page, limit)
	if err != nil {
		return nil, err
	}
	var dp models.DatasetPage
	if err := json.Unmarshal(body, &dp); err != nil {
		return nil, fmt.Errorf("%w: bad dataset payload: %v", ErrBackendUnavailable, err)
	}
	return &dp, nil
}

// Predict forwards the four input fields to the backend and returns the
// normalized result.
func (c *BackendClient) Predict(ctx context.Context, input models.PredictionInput) (*models.PredictionResult, error) {
	payload, err := json.Marshal(input)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBackendUnavailable, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.predictURL+"/predict", bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBackendUnavailable, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBackendUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("%w: predict returned status %d", ErrBackendUnavailable, resp.StatusCode)
	}

	var result models.PredictionResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("%w: bad predict payload: %v", ErrBackendUnavailable, err)
	}
	result.Normalize()
	return &result, nil
}
