// SuiteBot - Slack to webhook relay bridge
// License: MIT

// Package webhook forwards channel messages to the automation endpoint
// and parses the synchronous reply. One POST per message, no retries.
package webhook

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"
)

// FallbackReply is posted when the webhook answers 200 without a usable
// "response" field.
const FallbackReply = "Sorry, no response from AI."

// ErrTimeout reports that the webhook did not answer within the
// configured timeout.
var ErrTimeout = errors.New("webhook request timed out")

// HTTPError is a response with a non-200 status.
type HTTPError struct {
	StatusCode int
	Body       string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("webhook returned status %d", e.StatusCode)
}

// TransportError is any connection-level failure: DNS, refused
// connection, malformed response.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("webhook transport error: %v", e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

type forwardRequest struct {
	ChannelID   string `json:"channel_id"`
	MessageText string `json:"message_text"`
}

type forwardResponse struct {
	Response string `json:"response"`
}

type Client struct {
	url        string
	timeout    time.Duration
	httpClient *http.Client
}

func New(url string, timeout time.Duration) *Client {
	return &Client{
		url:     url,
		timeout: timeout,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// Forward posts the message to the webhook and returns the reply text.
// Failures map to exactly one of ErrTimeout, *HTTPError or
// *TransportError; none of them is retried.
func (c *Client) Forward(ctx context.Context, channelID, messageText string) (string, error) {
	payload, err := json.Marshal(forwardRequest{
		ChannelID:   channelID,
		MessageText: messageText,
	})
	if err != nil {
		return "", &TransportError{Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(payload))
	if err != nil {
		return "", &TransportError{Err: err}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if isTimeout(err) {
			return "", fmt.Errorf("%w after %s", ErrTimeout, c.timeout)
		}
		return "", &TransportError{Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		if isTimeout(err) {
			return "", fmt.Errorf("%w after %s", ErrTimeout, c.timeout)
		}
		return "", &TransportError{Err: err}
	}

	if resp.StatusCode != http.StatusOK {
		return "", &HTTPError{StatusCode: resp.StatusCode, Body: string(body)}
	}

	var parsed forwardResponse
	if err := json.Unmarshal(body, &parsed); err != nil || parsed.Response == "" {
		return FallbackReply, nil
	}
	return parsed.Response, nil
}

func isTimeout(err error) bool {
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return true
	}
	return errors.Is(err, context.DeadlineExceeded)
}
