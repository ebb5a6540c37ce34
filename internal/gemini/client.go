package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"

	"gym-api/internal/config"
)

const (
	// requestTimeout bounds a single generateContent call. It races with
	// any caller-supplied context; whichever fires first aborts the request.
	requestTimeout = 30 * time.Second

	userAgent = "gym-api/1.0"
)

// ErrNoCandidates indicates the API answered 2xx but returned no candidates.
var ErrNoCandidates = errors.New("no response received from Gemini API")

// StatusError is returned when the API answers with a non-2xx status.
type StatusError struct {
	Code int
	Body string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("gemini API request failed: %d", e.Code)
}

// Client provides access to the Gemini generative-text API.
type Client interface {
	// GenerateContent sends a prompt and returns the raw text of the first
	// candidate's first content part. It issues exactly one outbound HTTP
	// call per invocation; there are no retries.
	GenerateContent(ctx context.Context, prompt string) (string, error)
}

// httpClient implements Client over the raw REST API.
type httpClient struct {
	cfg  config.GeminiConfig
	http *http.Client
}

// NewClient creates a Client from configuration. All three settings
// (api_url, api_key, model) must be present.
func NewClient(cfg config.GeminiConfig) (Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &httpClient{
		cfg:  cfg,
		http: &http.Client{},
	}, nil
}

func (c *httpClient) endpoint() string {
	base := strings.TrimSuffix(c.cfg.APIURL, "/")
	return fmt.Sprintf("%s/models/%s:generateContent?key=%s",
		base, c.cfg.Model, url.QueryEscape(c.cfg.APIKey))
}

func (c *httpClient) GenerateContent(ctx context.Context, prompt string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	body := generateRequest{
		Contents: []content{
			{Parts: []part{{Text: prompt}}},
		},
	}

	data, err := json.Marshal(body)
	if err != nil {
		return "", fmt.Errorf("marshaling request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint(), bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("calling Gemini API: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("reading response: %w", err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		log.Printf("ERROR: Gemini API request failed: %d - %s", resp.StatusCode, string(respBody))
		return "", &StatusError{Code: resp.StatusCode, Body: string(respBody)}
	}

	var genResp generateResponse
	if err := json.Unmarshal(respBody, &genResp); err != nil {
		return "", fmt.Errorf("decoding response: %w", err)
	}

	if len(genResp.Candidates) == 0 || len(genResp.Candidates[0].Content.Parts) == 0 {
		return "", ErrNoCandidates
	}

	return genResp.Candidates[0].Content.Parts[0].Text, nil
}
