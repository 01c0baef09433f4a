package api

import (
	"context"
	"io"
	"net/http"
	"time"

	"TronLens/internal/service/cache"
	svcmetrics "TronLens/internal/service/metrics"
	"TronLens/internal/service/tronscan"
	xhttp "TronLens/pkg/http"
	xlogger "TronLens/pkg/logger"

	"github.com/labstack/echo/v4"
)

// maxProxyBody caps how much of an upstream body is buffered for relay. Larger
// bodies are refused rather than relayed truncated.
const maxProxyBody = 8 << 20

const errBodyTooLarge = "upstream body too large"

const headerXCache = "X-Cache"

// ProxyPaths are the upstream endpoints exposed under /api.
var ProxyPaths = []string{
	tronscan.PathAccountTokens,
	tronscan.PathTRC20Transfers,
	tronscan.PathAccount,
	tronscan.PathAccountRes,
}

// Forwarder sends a GET to the explorer and returns the raw response.
type Forwarder interface {
	Forward(ctx context.Context, path, rawQuery string) (*http.Response, error)
}

// ProxyEchoHandler relays dashboard requests to the explorer so browsers can
// reach it through CORS. Successful bodies are optionally cached.
type ProxyEchoHandler struct {
	logger   *xlogger.Logger
	upstream Forwarder
	cache    cache.BytesCache
	ttl      time.Duration
}

// NewProxyEchoHandler builds the proxy. A nil cache or zero ttl disables caching.
func NewProxyEchoHandler(logger *xlogger.Logger, upstream Forwarder, c cache.BytesCache, ttl time.Duration) *ProxyEchoHandler {
	svcmetrics.Register()
	if logger == nil {
		logger = xlogger.Nop()
	}
	return &ProxyEchoHandler{logger: logger, upstream: upstream, cache: c, ttl: ttl}
}

func (h *ProxyEchoHandler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/api")
	for _, p := range ProxyPaths {
		g.GET(p, h.relay(p))
	}
}

func (h *ProxyEchoHandler) cacheEnabled() bool {
	return h.cache != nil && h.ttl > 0
}

func (h *ProxyEchoHandler) relay(path string) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()
		rawQuery := c.Request().URL.RawQuery
		key := cache.Key(path, rawQuery)

		if h.cacheEnabled() {
			b, ok, err := h.cache.GetBytes(ctx, key)
			switch {
			case err != nil:
				svcmetrics.ProxyCacheLookups.WithLabelValues(path, "error").Inc()
				h.logger.Warn("proxy cache read failed", xlogger.String("key", key), xlogger.Error(err))
			case ok:
				svcmetrics.ProxyCacheLookups.WithLabelValues(path, "hit").Inc()
				c.Response().Header().Set(headerXCache, "HIT")
				return c.Blob(http.StatusOK, echo.MIMEApplicationJSON, b)
			default:
				svcmetrics.ProxyCacheLookups.WithLabelValues(path, "miss").Inc()
			}
		}

		resp, err := h.upstream.Forward(ctx, path, rawQuery)
		if err != nil {
			svcmetrics.ProxyUpstreamStatus.WithLabelValues(path, svcmetrics.StatusClass(0)).Inc()
			h.logger.Error("proxy upstream failed", xlogger.String("path", path), xlogger.Error(err))
			return c.JSON(http.StatusBadGateway, xhttp.ErrorBody{Error: err.Error()})
		}
		defer resp.Body.Close()

		body, err := io.ReadAll(io.LimitReader(resp.Body, maxProxyBody+1))
		if err != nil {
			svcmetrics.ProxyUpstreamStatus.WithLabelValues(path, svcmetrics.StatusClass(0)).Inc()
			h.logger.Error("proxy upstream read failed", xlogger.String("path", path), xlogger.Error(err))
			return c.JSON(http.StatusBadGateway, xhttp.ErrorBody{Error: err.Error()})
		}
		if len(body) > maxProxyBody {
			svcmetrics.ProxyUpstreamStatus.WithLabelValues(path, svcmetrics.StatusClass(0)).Inc()
			h.logger.Warn("proxy upstream body too large", xlogger.String("path", path), xlogger.Int("limit", maxProxyBody))
			return c.JSON(http.StatusBadGateway, xhttp.ErrorBody{Error: errBodyTooLarge})
		}
		svcmetrics.ProxyUpstreamStatus.WithLabelValues(path, svcmetrics.StatusClass(resp.StatusCode)).Inc()

		contentType := resp.Header.Get(echo.HeaderContentType)
		if contentType == "" {
			contentType = echo.MIMEApplicationJSON
		}

		if h.cacheEnabled() && resp.StatusCode == http.StatusOK {
			c.Response().Header().Set(headerXCache, "MISS")
			if err := h.cache.SetBytes(ctx, key, body, h.ttl); err != nil {
				h.logger.Warn("proxy cache write failed", xlogger.String("key", key), xlogger.Error(err))
			}
		}
		return c.Blob(resp.StatusCode, contentType, body)
	}
}
