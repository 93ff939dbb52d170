package decision

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"regexp"
	"strings"
	"time"
)

const DefaultTimeout = 5 * time.Second

// DelegateError means the decision service could not produce a usable suggestion.
type DelegateError struct {
	URL string
	Err error
}

func (e *DelegateError) Error() string {
	return fmt.Sprintf("decision delegate %s: %s", e.URL, e.Err)
}

func (e *DelegateError) Unwrap() error {
	return e.Err
}

//go:generate counterfeiter -o fakes/json_client.go --fake-name JSONClient . jsonClient
type jsonClient interface {
	MakeRequest(*http.Request, interface{}) error
}

// Client asks an external decision service which route should handle a payload.
type Client struct {
	URL        string
	JSONClient jsonClient
	Timeout    time.Duration
}

// Suggest posts the payload to the decision service and returns the suggested
// logical id. Every failure is reported as a *DelegateError.
func (c *Client) Suggest(ctx context.Context, payload []byte) (string, error) {
	timeout := c.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	request, err := http.NewRequestWithContext(ctx, http.MethodPost, c.URL, bytes.NewReader(payload))
	if err != nil {
		return "", &DelegateError{URL: c.URL, Err: err}
	}
	request.Header.Set("Content-Type", "application/json")

	response := &suggestion{}
	if err := c.JSONClient.MakeRequest(request, response); err != nil {
		return "", &DelegateError{URL: c.URL, Err: err}
	}
	tool := strings.TrimSpace(response.Tool)
	if tool == "" {
		return "", &DelegateError{URL: c.URL, Err: errors.New("response has no tool")}
	}
	return tool, nil
}

type suggestion struct {
	Tool string `json:"tool"`
}

var fencePattern = regexp.MustCompile("(?i)```(json)?")

// UnmarshalJSON accepts either {"tool": "..."} or a JSON string holding raw
// model output, optionally wrapped in markdown code fences.
func (s *suggestion) UnmarshalJSON(data []byte) error {
	var text string
	if err := json.Unmarshal(data, &text); err == nil {
		data = []byte(strings.TrimSpace(fencePattern.ReplaceAllString(text, "")))
	}

	type plain suggestion
	var decoded plain
	if err := json.Unmarshal(data, &decoded); err != nil {
		return err
	}
	*s = suggestion(decoded)
	return nil
}
