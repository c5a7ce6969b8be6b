package server

import (
	"errors"
	"io"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/cloud-ru/mcp-vehicle-loan-go/internal/tools"
)

// Коды ошибок в ErrorResponse
const (
	CodeInvalidRequest = "VALIDATION_001"
	CodeUnknownBank    = "BANK_001"
	CodeUnknownTool    = "TOOL_001"
	CodeInternal       = "SYSTEM_001"
	CodeRateLimited    = "SYSTEM_006"
)

// ErrorResponse тело ответа при ошибке
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	TraceID string `json:"trace_id,omitempty"`
}

// SuccessResponse результат инструмента
type SuccessResponse struct {
	Tool string      `json:"tool"`
	Data interface{} `json:"data"`
}

type toolHandler struct {
	registry map[string]tools.ToolHandler
	log      zerolog.Logger
}

// List возвращает имена зарегистрированных инструментов
func (h *toolHandler) List(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string][]string{"tools": tools.Names(h.registry)})
}

// Call разбирает JSON тело как параметры и вызывает инструмент
func (h *toolHandler) Call(c echo.Context) error {
	name := c.Param("name")
	handler, ok := h.registry[name]
	if !ok {
		return sendError(c, http.StatusNotFound, CodeUnknownTool, "unknown tool: "+name)
	}

	params := map[string]interface{}{}
	if c.Request().ContentLength != 0 {
		err := c.Echo().JSONSerializer.Deserialize(c, &params)
		if err != nil && !errors.Is(err, io.EOF) {
			return sendError(c, http.StatusBadRequest, CodeInvalidRequest, "request body must be a JSON object")
		}
	}

	result, err := handler(c.Request().Context(), params)
	if err != nil {
		switch {
		case errors.Is(err, tools.ErrUnknownBank):
			return sendError(c, http.StatusNotFound, CodeUnknownBank, err.Error())
		case errors.Is(err, tools.ErrInvalidParameter), errors.Is(err, tools.ErrValidation):
			return sendError(c, http.StatusBadRequest, CodeInvalidRequest, err.Error())
		default:
			h.log.Error().Err(err).Str("tool", name).Str("trace_id", GetTraceID(c)).Msg("tool call failed")
			return sendError(c, http.StatusInternalServerError, CodeInternal, "internal error")
		}
	}

	return c.JSON(http.StatusOK, SuccessResponse{Tool: name, Data: result})
}

func sendError(c echo.Context, status int, code, message string) error {
	return c.JSON(status, ErrorResponse{
		Code:    code,
		Message: message,
		TraceID: GetTraceID(c),
	})
}
