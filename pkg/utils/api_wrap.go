package utils

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type APIResponse struct {
	Status  string      `json:"status"`
	Code    int         `json:"code"`
	Message string      `json:"message,omitempty"`
	TraceID string      `json:"trace_id,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

func traceID(c *gin.Context) string {
	return c.GetString("trace_id")
}

func RespondSuccess(c *gin.Context, data interface{}, message string) {
	c.JSON(http.StatusOK, APIResponse{
		Status:  "success",
		Code:    http.StatusOK,
		Message: message,
		TraceID: traceID(c),
		Data:    data,
	})
}

func RespondCreated(c *gin.Context, data interface{}, message string) {
	c.JSON(http.StatusCreated, APIResponse{
		Status:  "success",
		Code:    http.StatusCreated,
		Message: message,
		TraceID: traceID(c),
		Data:    data,
	})
}

func RespondError(c *gin.Context, code int, message string) {
	c.JSON(code, APIResponse{
		Status:  "error",
		Code:    code,
		Message: message,
		TraceID: traceID(c),
	})
}

// StatusFor maps a service error onto the HTTP status and client message.
func StatusFor(err error) (int, string) {
	switch {
	case errors.Is(err, ErrSessionNotFound):
		return http.StatusNotFound, "Quiz session not found"
	case errors.Is(err, ErrPackageNotFound):
		return http.StatusNotFound, "Package not found"
	case errors.Is(err, ErrStepIncomplete):
		return http.StatusUnprocessableEntity, "Please answer the current question first"
	case errors.Is(err, ErrUnknownOption):
		return http.StatusBadRequest, "Option is not available for this question"
	case errors.Is(err, ErrInvalidInput):
		return http.StatusBadRequest, "Invalid request"
	case errors.Is(err, ErrQuizSubmitted):
		return http.StatusConflict, "Quiz already submitted"
	case errors.Is(err, ErrQuizNotSubmitted):
		return http.StatusConflict, "Quiz is not complete yet"
	case errors.Is(err, ErrPackageGenerationFailed), errors.Is(err, ErrMalformedResponse):
		return http.StatusBadGateway, "Could not generate packages, please retry"
	case errors.Is(err, ErrRendererUnavailable):
		return http.StatusServiceUnavailable, "Globe is unavailable, please reload"
	default:
		return http.StatusInternalServerError, "Internal server error"
	}
}

func HandleServiceError(c *gin.Context, err error) {
	code, message := StatusFor(err)
	if code >= http.StatusInternalServerError {
		zap.L().Error("request failed",
			zap.String("trace_id", traceID(c)),
			zap.String("path", c.FullPath()),
			zap.Error(err))
	}
	RespondError(c, code, message)
}
