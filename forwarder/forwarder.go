package forwarder

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/danny0094/mcp-bridge-stack/jsonclient"
)

const DefaultTimeout = 10 * time.Second

// UpstreamError means the resolved backend could not be reached or returned
// something that cannot be relayed.
type UpstreamError struct {
	URL string
	Err error
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("upstream %s: %s", e.URL, e.Err)
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}

type Response struct {
	StatusCode  int
	ContentType string
	Body        []byte
}

// Forwarder relays a payload to a backend. It never retries.
type Forwarder struct {
	HTTPClient jsonclient.HttpClient
	Timeout    time.Duration
}

func (f *Forwarder) Forward(ctx context.Context, url string, payload []byte) (*Response, error) {
	timeout := f.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	request, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return nil, &UpstreamError{URL: url, Err: err}
	}
	request.Header.Set("Content-Type", "application/json")
	jsonclient.SetRequestID(request)

	resp, err := f.HTTPClient.Do(request)
	if err != nil {
		return nil, &UpstreamError{URL: url, Err: fmt.Errorf("http client: %w", err)}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &UpstreamError{URL: url, Err: fmt.Errorf("read body: %w", err)}
	}

	// an empty body is relayed as is, e.g. a 202 for a JSON-RPC notification
	if len(body) > 0 && !json.Valid(body) {
		return nil, &UpstreamError{
			URL: url,
			Err: fmt.Errorf("invalid json response, code %d", resp.StatusCode),
		}
	}

	contentType := resp.Header.Get("Content-Type")
	if contentType == "" && len(body) > 0 {
		contentType = "application/json"
	}
	return &Response{
		StatusCode:  resp.StatusCode,
		ContentType: contentType,
		Body:        body,
	}, nil
}
