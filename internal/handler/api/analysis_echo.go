package api

import (
	"errors"

	models "TronLens/internal/domain/models"
	"TronLens/internal/usecase"
	xhttp "TronLens/pkg/http"
	xlogger "TronLens/pkg/logger"

	"github.com/labstack/echo/v4"
)

// AnalysisEchoHandler serves address reports and per-address explorer lookups.
type AnalysisEchoHandler struct {
	logger   *xlogger.Logger
	analyzer *usecase.AddressAnalyzer
}

func NewAnalysisEchoHandler(logger *xlogger.Logger, analyzer *usecase.AddressAnalyzer) *AnalysisEchoHandler {
	if logger == nil {
		logger = xlogger.Nop()
	}
	return &AnalysisEchoHandler{logger: logger, analyzer: analyzer}
}

func (h *AnalysisEchoHandler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/v1")
	g.GET("/analysis/:address", h.Analyze)

	a := g.Group("/address/:address")
	a.GET("/type", h.AddressType)
	a.GET("/tokens", h.Tokens)
	a.GET("/account", h.Account)
	a.GET("/resources", h.Resources)
}

func (h *AnalysisEchoHandler) Analyze(c echo.Context) error {
	req := &models.AnalysisRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}

	report, err := h.analyzer.Analyze(c.Request().Context(), req.Address, req.BatchSize)
	if err != nil {
		return h.fail(c, "analysis", err)
	}
	return xhttp.SuccessResponse(c, report)
}

func (h *AnalysisEchoHandler) AddressType(c echo.Context) error {
	req := &models.AddressRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}
	return xhttp.SuccessResponse(c, h.analyzer.AddressType(req.Address))
}

func (h *AnalysisEchoHandler) Tokens(c echo.Context) error {
	req := &models.TokenListRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}

	res, err := h.analyzer.TokenBalances(c.Request().Context(), req.Address, req.Start, req.Limit)
	if err != nil {
		return h.fail(c, "tokens", err)
	}
	return xhttp.SuccessResponse(c, res)
}

func (h *AnalysisEchoHandler) Account(c echo.Context) error {
	req := &models.AddressRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}

	res, err := h.analyzer.AccountInfo(c.Request().Context(), req.Address)
	if err != nil {
		return h.fail(c, "account", err)
	}
	return xhttp.SuccessResponse(c, res)
}

func (h *AnalysisEchoHandler) Resources(c echo.Context) error {
	req := &models.AddressRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}

	res, err := h.analyzer.ResourceInfo(c.Request().Context(), req.Address)
	if err != nil {
		return h.fail(c, "resources", err)
	}
	return xhttp.SuccessResponse(c, res)
}

// fail maps use case errors onto AppError statuses.
func (h *AnalysisEchoHandler) fail(c echo.Context, op string, err error) error {
	if errors.Is(err, usecase.ErrInvalidAddress) {
		return xhttp.AppErrorResponse(c, xhttp.BadRequestError(err.Error()).WithError(err))
	}

	var le *usecase.LabeledError
	if errors.As(err, &le) {
		h.logger.Error(op+" upstream error", xlogger.Error(le.Err))
		return xhttp.AppErrorResponse(c, xhttp.BadGatewayError(le.Error()).WithError(err))
	}

	h.logger.Error(op+" usecase error", xlogger.Error(err))
	return xhttp.AppErrorResponse(c, err)
}
