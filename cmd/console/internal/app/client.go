// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) 2026 Jared Redh. All rights reserved.

package app

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/jredh-dev/missionexploit/internal/console"
)

// DefaultSubmitPath is the exploit service route. Serverless deployments
// expose the same handler at /.netlify/functions/submit.
const DefaultSubmitPath = "/submit"

// submitResult mirrors the exploit service's /submit reply.
type submitResult struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Flag    string `json:"flag,omitempty"`
}

// Client talks to the exploit service over HTTP and implements
// console.Submitter.
type Client struct {
	baseURL    string
	path       string
	httpClient *http.Client
}

// NewClient creates a client for baseURL. An empty path means DefaultSubmitPath.
func NewClient(baseURL, path string) *Client {
	if path == "" {
		path = DefaultSubmitPath
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		path:       "/" + strings.TrimLeft(path, "/"),
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// Submit posts plaintext and decodes the verdict. A 500 still carries a JSON
// body, so only transport and decode failures are returned as errors.
func (c *Client) Submit(ctx context.Context, plaintext string) (console.Verdict, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	body, err := json.Marshal(map[string]string{"plaintext": plaintext})
	if err != nil {
		return console.Verdict{}, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+c.path, bytes.NewReader(body))
	if err != nil {
		return console.Verdict{}, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return console.Verdict{}, fmt.Errorf("submit: %w", err)
	}
	defer resp.Body.Close()

	var result submitResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return console.Verdict{}, fmt.Errorf("submit decode (status %d): %w", resp.StatusCode, err)
	}
	return console.Verdict{OK: result.Success, Reward: result.Flag, Message: result.Message}, nil
}
