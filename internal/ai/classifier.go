package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"
)

// Config holds settings for the external classification service.
type Config struct {
	Endpoint string        `env:"AI_ENDPOINT"`
	APIKey   string        `env:"AI_API_KEY"`
	Timeout  time.Duration `env:"AI_TIMEOUT" env-default:"30s"`
}

func (c *Config) Validate() error {
	if c.Endpoint == "" {
		return errors.New("ai classifier endpoint not configured")
	}
	return nil
}

// Report is the advisory classification returned for a document URL. Callers
// only ever use it to pre-fill form fields a human confirms afterwards.
type Report struct {
	DocType      string   `json:"doc_type"`
	OrgType      string   `json:"org_type"`
	ShortSummary string   `json:"shortSummary"`
	Summary      []string `json:"summary"`
}

// Classifier asks the external AI service to classify a stored document.
type Classifier interface {
	Classify(ctx context.Context, fileURL string) (*Report, error)
}

// HTTPClassifier talks JSON over HTTP with bearer auth.
type HTTPClassifier struct {
	endpoint string
	apiKey   string
	client   *http.Client
}

// NewHTTPClassifier builds a classifier client from config.
func NewHTTPClassifier(cfg *Config) (*HTTPClassifier, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &HTTPClassifier{
		endpoint: cfg.Endpoint,
		apiKey:   cfg.APIKey,
		client:   &http.Client{Timeout: cfg.Timeout},
	}, nil
}

type classifyRequest struct {
	URL string `json:"url"`
}

type classifyResponse struct {
	Results []Report `json:"results"`
}

// Classify posts the file URL and returns the first result. The service is
// treated as slow and unreliable; any failure is reported to the caller, never
// retried here.
func (c *HTTPClassifier) Classify(ctx context.Context, fileURL string) (*Report, error) {
	body, err := json.Marshal(classifyRequest{URL: fileURL})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("classification request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("classification service returned status %d", resp.StatusCode)
	}

	var parsed classifyResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("failed to decode classification response: %w", err)
	}
	if len(parsed.Results) == 0 {
		return nil, errors.New("classification response contained no results")
	}

	return &parsed.Results[0], nil
}
