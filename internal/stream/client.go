package stream

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/skundu42/doom-backend/internal/port"
)

// Client is a thin REST client for the stream provider's API
// (Cloudflare Stream shaped: direct uploads, video details, delete).
type Client struct {
	httpClient *http.Client
	baseURL    string
	accountID  string
	token      string
}

// compile-time check: *Client must satisfy port.StreamClient
var _ port.StreamClient = (*Client)(nil)

func NewClient(baseURL, accountID, token string) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: 15 * time.Second},
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		accountID:  accountID,
		token:      token,
	}
}

// envelope is the provider's standard response wrapper.
type envelope struct {
	Success bool            `json:"success"`
	Errors  []providerError `json:"errors"`
	Result  json.RawMessage `json:"result"`
}

type providerError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type directUploadResult struct {
	UID       string `json:"uid"`
	UploadURL string `json:"uploadURL"`
}

type videoResult struct {
	UID           string  `json:"uid"`
	ReadyToStream bool    `json:"readyToStream"`
	Duration      float64 `json:"duration"`
	Status        struct {
		State           string `json:"state"`
		ErrorReasonCode string `json:"errorReasonCode"`
		ErrorReasonText string `json:"errorReasonText"`
	} `json:"status"`
	Playback struct {
		HLS  string `json:"hls"`
		Dash string `json:"dash"`
	} `json:"playback"`
	Thumbnail string `json:"thumbnail"`
}

func (c *Client) CreateDirectUpload(ctx context.Context, maxDurationSeconds int, creator string, name string) (port.DirectUpload, error) {
	body := map[string]any{
		"maxDurationSeconds": maxDurationSeconds,
	}
	if creator != "" {
		body["creator"] = creator
	}
	if name != "" {
		body["meta"] = map[string]string{"name": name}
	}

	var result directUploadResult
	url := fmt.Sprintf("%s/accounts/%s/stream/direct_upload", c.baseURL, c.accountID)
	if err := c.do(ctx, http.MethodPost, url, body, &result); err != nil {
		return port.DirectUpload{}, err
	}

	return port.DirectUpload{UID: result.UID, UploadURL: result.UploadURL}, nil
}

func (c *Client) GetVideo(ctx context.Context, uid string) (port.VideoState, error) {
	var result videoResult
	url := fmt.Sprintf("%s/accounts/%s/stream/%s", c.baseURL, c.accountID, uid)
	if err := c.do(ctx, http.MethodGet, url, nil, &result); err != nil {
		return port.VideoState{}, err
	}

	return port.VideoState{
		UID:             result.UID,
		ReadyToStream:   result.ReadyToStream,
		State:           result.Status.State,
		ErrorCode:       result.Status.ErrorReasonCode,
		ErrorText:       result.Status.ErrorReasonText,
		DurationSeconds: result.Duration,
		HLS:             result.Playback.HLS,
		Dash:            result.Playback.Dash,
		Thumbnail:       result.Thumbnail,
	}, nil
}

// DeleteVideo removes the remote resource. A 404 counts as success so that
// concurrent backstop deletes for the same UID all settle cleanly.
func (c *Client) DeleteVideo(ctx context.Context, uid string) error {
	url := fmt.Sprintf("%s/accounts/%s/stream/%s", c.baseURL, c.accountID, uid)
	err := c.do(ctx, http.MethodDelete, url, nil, nil)
	if err == port.ErrVideoNotFoundRemote {
		return nil
	}
	return err
}

func (c *Client) do(ctx context.Context, method, url string, body any, out any) error {
	var reqBody io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("stream: encoding request: %w", err)
		}
		reqBody = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reqBody)
	if err != nil {
		return fmt.Errorf("stream: building request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("stream: provider call failed: %w", err)
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			return
		}
	}()

	if resp.StatusCode == http.StatusNotFound {
		return port.ErrVideoNotFoundRemote
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("stream: provider returned status %d", resp.StatusCode)
	}

	if out == nil {
		return nil
	}

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return fmt.Errorf("stream: decoding response: %w", err)
	}
	if !env.Success {
		if len(env.Errors) > 0 {
			return fmt.Errorf("stream: provider error %d: %s", env.Errors[0].Code, env.Errors[0].Message)
		}
		return fmt.Errorf("stream: provider reported failure")
	}
	if err := json.Unmarshal(env.Result, out); err != nil {
		return fmt.Errorf("stream: decoding result: %w", err)
	}

	return nil
}
