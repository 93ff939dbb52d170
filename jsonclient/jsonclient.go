package jsonclient

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

const RequestIDHeader = "X-Request-Id"

//go:generate counterfeiter -o fakes/http_client.go --fake-name HTTPClient . HttpClient
type HttpClient interface {
	Do(*http.Request) (*http.Response, error)
}

type JSONClient struct {
	HTTPClient HttpClient
}

// MakeRequest sends the request and decodes a 200 response body into response.
func (c *JSONClient) MakeRequest(request *http.Request, response interface{}) error {
	SetRequestID(request)
	resp, err := c.HTTPClient.Do(request)
	if err != nil {
		return fmt.Errorf("http client: %w", err)
	}
	defer resp.Body.Close()

	respBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("bad response, code %d: %s", resp.StatusCode, string(respBytes))
	}

	err = json.Unmarshal(respBytes, response)
	if err != nil {
		return fmt.Errorf("unmarshal json: %w", err)
	}
	return nil
}

type requestIDKey struct{}

func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

func RequestID(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}

// SetRequestID copies the request id carried by the request context onto the
// outbound headers.
func SetRequestID(request *http.Request) {
	if id := RequestID(request.Context()); id != "" {
		request.Header.Set(RequestIDHeader, id)
	}
}
