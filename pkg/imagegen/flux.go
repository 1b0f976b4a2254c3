package imagegen

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

// fluxClient calls a FLUX-style text-to-image endpoint.
type fluxClient struct {
	endpoint   string
	apiKey     string
	httpClient *http.Client
}

func NewFluxClient(endpoint, apiKey string, timeout time.Duration) Generator {
	return &fluxClient{
		endpoint:   endpoint,
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: timeout},
	}
}

type fluxRequest struct {
	Prompt            string `json:"prompt"`
	ImageSize         string `json:"image_size"`
	NumInferenceSteps int    `json:"num_inference_steps"`
	NumImages         int    `json:"num_images"`
}

type fluxResponse struct {
	Images []struct {
		URL string `json:"url"`
	} `json:"images"`
}

func (c *fluxClient) Generate(ctx context.Context, req Request) (string, error) {

	payload, err := json.Marshal(fluxRequest{
		Prompt:            BuildPrompt(req),
		ImageSize:         "square_hd",
		NumInferenceSteps: 4,
		NumImages:         1,
	})
	if err != nil {
		return "", fmt.Errorf("failed to encode generation request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("failed to build generation request: %w", err)
	}

	httpReq.Header.Set("Authorization", "Key "+c.apiKey)
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("image generation call failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))

		return "", fmt.Errorf("image generation returned status %d: %s", resp.StatusCode, string(body))
	}

	var result fluxResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", fmt.Errorf("failed to decode generation response: %w", err)
	}

	if len(result.Images) == 0 || result.Images[0].URL == "" {
		return "", errors.New("no image generated")
	}

	return result.Images[0].URL, nil
}
