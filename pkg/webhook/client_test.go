// SuiteBot - Slack to webhook relay bridge
// License: MIT

package webhook

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestForward_Success(t *testing.T) {
	var gotReq forwardRequest
	var gotContentType string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotContentType = r.Header.Get("Content-Type")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotReq))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"response": "hello"}`))
	}))
	defer srv.Close()

	client := New(srv.URL, time.Second)
	reply, err := client.Forward(context.Background(), "C001", "what is the plan?")

	require.NoError(t, err)
	assert.Equal(t, "hello", reply)
	assert.Equal(t, "application/json", gotContentType)
	assert.Equal(t, "C001", gotReq.ChannelID)
	assert.Equal(t, "what is the plan?", gotReq.MessageText)
}

func TestForward_EmptyMessageText(t *testing.T) {
	var gotReq forwardRequest

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotReq))
		w.Write([]byte(`{"response": "ok"}`))
	}))
	defer srv.Close()

	client := New(srv.URL, time.Second)
	_, err := client.Forward(context.Background(), "C001", "")

	require.NoError(t, err)
	assert.Equal(t, "", gotReq.MessageText)
}

func TestForward_MissingResponseField(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	client := New(srv.URL, time.Second)
	reply, err := client.Forward(context.Background(), "C001", "hi")

	require.NoError(t, err)
	assert.Equal(t, FallbackReply, reply)
}

func TestForward_MalformedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`not json at all`))
	}))
	defer srv.Close()

	client := New(srv.URL, time.Second)
	reply, err := client.Forward(context.Background(), "C001", "hi")

	require.NoError(t, err)
	assert.Equal(t, FallbackReply, reply)
}

func TestForward_HTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`flow crashed`))
	}))
	defer srv.Close()

	client := New(srv.URL, time.Second)
	_, err := client.Forward(context.Background(), "C001", "hi")

	var httpErr *HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusInternalServerError, httpErr.StatusCode)
	assert.Equal(t, "flow crashed", httpErr.Body)
}

func TestForward_Timeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer srv.Close()

	client := New(srv.URL, 20*time.Millisecond)
	_, err := client.Forward(context.Background(), "C001", "hi")

	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrTimeout), "expected ErrTimeout, got %v", err)
}

func TestForward_TransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // refuse connections

	client := New(srv.URL, time.Second)
	_, err := client.Forward(context.Background(), "C001", "hi")

	var transportErr *TransportError
	require.ErrorAs(t, err, &transportErr)
}
