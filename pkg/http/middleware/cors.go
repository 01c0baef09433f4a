package middleware

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"
)

// CORSConfig holds CORS configuration.
type CORSConfig struct {
	AllowOrigins []string
	AllowMethods []string
	AllowHeaders []string
	MaxAge       int // seconds; 0 omits the header
}

// CORS returns CORS middleware. A "*" origin answers every caller with a
// wildcard; otherwise the request origin is echoed back when listed.
func CORS(cfg CORSConfig) echo.MiddlewareFunc {
	wildcard := false
	for _, o := range cfg.AllowOrigins {
		if o == "*" {
			wildcard = true
			break
		}
	}
	methods := strings.Join(cfg.AllowMethods, ", ")
	headers := strings.Join(cfg.AllowHeaders, ", ")

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			origin := c.Request().Header.Get(echo.HeaderOrigin)
			h := c.Response().Header()

			switch {
			case wildcard:
				h.Set(echo.HeaderAccessControlAllowOrigin, "*")
			case origin != "" && containsOrigin(cfg.AllowOrigins, origin):
				h.Set(echo.HeaderAccessControlAllowOrigin, origin)
				h.Add(echo.HeaderVary, echo.HeaderOrigin)
			default:
				return next(c)
			}

			if methods != "" {
				h.Set(echo.HeaderAccessControlAllowMethods, methods)
			}
			if headers != "" {
				h.Set(echo.HeaderAccessControlAllowHeaders, headers)
			}

			if c.Request().Method == http.MethodOptions {
				if cfg.MaxAge > 0 {
					h.Set(echo.HeaderAccessControlMaxAge, strconv.Itoa(cfg.MaxAge))
				}
				return c.NoContent(http.StatusNoContent)
			}

			return next(c)
		}
	}
}

func containsOrigin(list []string, origin string) bool {
	for _, o := range list {
		if o == origin {
			return true
		}
	}
	return false
}
