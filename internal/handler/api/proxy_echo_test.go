package api

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"TronLens/internal/service/cache"
	"TronLens/internal/service/tronscan"
	xhttp "TronLens/pkg/http"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func serve(t *testing.T, h xhttp.Handler, method, target string, hdr map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	e := xhttp.NewServer(h).Echo()
	req := httptest.NewRequest(method, target, nil)
	for k, v := range hdr {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestProxy_ForwardsQueryAndHeaders(t *testing.T) {
	var hits int
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		assert.Equal(t, tronscan.PathTRC20Transfers, r.URL.Path)
		assert.Equal(t, "limit=50&start=0&relatedAddress=TA", r.URL.RawQuery)
		assert.Equal(t, tronscan.DefaultOrigin, r.Header.Get("Origin"))
		assert.Equal(t, tronscan.DefaultReferer, r.Header.Get("Referer"))
		assert.Contains(t, r.Header.Get("User-Agent"), "Chrome")
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"total":0,"token_transfers":[]}`)
	}))
	defer upstream.Close()

	client := tronscan.New(tronscan.Config{BaseURL: upstream.URL}, nil)
	h := NewProxyEchoHandler(nil, client, nil, 0)

	rec := serve(t, h, http.MethodGet, "/api/filter/trc20/transfers?limit=50&start=0&relatedAddress=TA",
		map[string]string{echo.HeaderOrigin: "http://localhost:5173"})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"total":0,"token_transfers":[]}`, rec.Body.String())
	assert.Equal(t, "*", rec.Header().Get(echo.HeaderAccessControlAllowOrigin))
	assert.Empty(t, rec.Header().Get(headerXCache))
	assert.Equal(t, 1, hits)
}

func TestProxy_RelaysUpstreamStatus(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = io.WriteString(w, `{"message":"rate limited"}`)
	}))
	defer upstream.Close()

	h := NewProxyEchoHandler(nil, tronscan.New(tronscan.Config{BaseURL: upstream.URL}, nil), cache.NewTTLCache(), time.Minute)
	rec := serve(t, h, http.MethodGet, "/api/account?address=TA", nil)

	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.JSONEq(t, `{"message":"rate limited"}`, rec.Body.String())
}

type failingForwarder struct{ err error }

func (f failingForwarder) Forward(context.Context, string, string) (*http.Response, error) {
	return nil, f.err
}

func TestProxy_TransportFailureIs502(t *testing.T) {
	h := NewProxyEchoHandler(nil, failingForwarder{err: errors.New("dial tcp: connection refused")}, nil, 0)
	rec := serve(t, h, http.MethodGet, "/api/account/tokens?address=TA", nil)

	assert.Equal(t, http.StatusBadGateway, rec.Code)
	assert.JSONEq(t, `{"error":"dial tcp: connection refused"}`, rec.Body.String())
}

func TestProxy_CachesSuccessfulBodies(t *testing.T) {
	var hits int
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		_, _ = io.WriteString(w, `{"total":1}`)
	}))
	defer upstream.Close()

	c := cache.NewTTLCache()
	h := NewProxyEchoHandler(nil, tronscan.New(tronscan.Config{BaseURL: upstream.URL}, nil), c, time.Minute)

	first := serve(t, h, http.MethodGet, "/api/account/resourcev2?address=TA&resourceType=0", nil)
	require.Equal(t, http.StatusOK, first.Code)
	assert.Equal(t, "MISS", first.Header().Get(headerXCache))

	second := serve(t, h, http.MethodGet, "/api/account/resourcev2?address=TA&resourceType=0", nil)
	require.Equal(t, http.StatusOK, second.Code)
	assert.Equal(t, "HIT", second.Header().Get(headerXCache))
	assert.JSONEq(t, `{"total":1}`, second.Body.String())

	assert.Equal(t, 1, hits)
	assert.Equal(t, 1, c.Len())
}

type staticForwarder struct {
	status int
	body   []byte
	calls  int
}

func (f *staticForwarder) Forward(context.Context, string, string) (*http.Response, error) {
	f.calls++
	return &http.Response{
		StatusCode: f.status,
		Header:     http.Header{"Content-Type": []string{"application/json"}},
		Body:       io.NopCloser(bytes.NewReader(f.body)),
	}, nil
}

func TestProxy_OversizedBodyIs502AndNotCached(t *testing.T) {
	up := &staticForwarder{status: http.StatusOK, body: bytes.Repeat([]byte("a"), 9<<20)}
	c := cache.NewTTLCache()
	h := NewProxyEchoHandler(nil, up, c, time.Minute)

	for i := 0; i < 2; i++ {
		rec := serve(t, h, http.MethodGet, "/api/account?address=TA", nil)
		assert.Equal(t, http.StatusBadGateway, rec.Code)
		assert.JSONEq(t, `{"error":"upstream body too large"}`, rec.Body.String())
		assert.Empty(t, rec.Header().Get(headerXCache))
	}
	assert.Equal(t, 0, c.Len())
	assert.Equal(t, 2, up.calls)
}

func TestProxy_BodyAtLimitRelayed(t *testing.T) {
	up := &staticForwarder{status: http.StatusOK, body: bytes.Repeat([]byte("a"), maxProxyBody)}
	h := NewProxyEchoHandler(nil, up, nil, 0)

	rec := serve(t, h, http.MethodGet, "/api/account?address=TA", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, maxProxyBody, rec.Body.Len())
}

func TestProxy_PreflightAnswered(t *testing.T) {
	h := NewProxyEchoHandler(nil, failingForwarder{err: errors.New("unused")}, nil, 0)
	rec := serve(t, h, http.MethodOptions, "/api/account", map[string]string{
		echo.HeaderOrigin:                     "http://localhost:5173",
		echo.HeaderAccessControlRequestMethod: http.MethodGet,
	})

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "*", rec.Header().Get(echo.HeaderAccessControlAllowOrigin))
}
