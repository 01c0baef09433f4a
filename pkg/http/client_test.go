package http

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSendAndParse_QueryAndDefaultHeaders(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "v1", r.Header.Get("X-Key"))
		assert.Empty(t, r.Header.Get("X-Empty"))
		assert.Equal(t, "1", r.URL.Query().Get("keep"))
		assert.Equal(t, []string{"a", "b"}, r.URL.Query()["tag"])
		_, _ = io.WriteString(w, `{"name":"ok"}`)
	}))
	defer srv.Close()

	c := NewClient(WithTimeout(time.Second), WithHeader("X-Key", "v1"), WithHeader("X-Empty", ""))
	var out struct {
		Name string `json:"name"`
	}
	err := c.SendAndParse(context.Background(), &RequestOptions{
		URL:         srv.URL + "/x?keep=1",
		QueryParams: map[string][]string{"tag": {"a", "b"}},
	}, &out)

	require.NoError(t, err)
	assert.Equal(t, "ok", out.Name)
}

func TestSendAndParse_Non2xx(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
		_, _ = io.WriteString(w, "  busy \n")
	}))
	defer srv.Close()

	err := NewClient().SendAndParse(context.Background(), &RequestOptions{Method: MethodGet, URL: srv.URL}, nil)

	var se *StatusError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, http.StatusServiceUnavailable, se.Code)
	assert.Equal(t, "busy", se.Body)
}

func TestSendAndParse_BadJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, "<html>")
	}))
	defer srv.Close()

	var out map[string]any
	err := NewClient().SendAndParse(context.Background(), &RequestOptions{URL: srv.URL}, &out)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode json")
}
