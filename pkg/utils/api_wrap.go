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
	Hint    string      `json:"hint,omitempty"`
	TraceID string      `json:"trace_id,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

func traceID(c *gin.Context) string {
	id, _ := c.Get("trace_id")
	s, _ := id.(string)
	return s
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

func RespondError(c *gin.Context, code int, message string) {
	c.JSON(code, APIResponse{
		Status:  "error",
		Code:    code,
		Message: message,
		TraceID: traceID(c),
	})
}

func respondErrorWithHint(c *gin.Context, code int, message, hint string) {
	c.JSON(code, APIResponse{
		Status:  "error",
		Code:    code,
		Message: message,
		Hint:    hint,
		TraceID: traceID(c),
	})
}

// HandleServiceError maps service sentinels onto HTTP responses.
func HandleServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrInvalidInput):
		RespondError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, ErrPlanNotFound):
		RespondError(c, http.StatusNotFound, "Plan not found")
	case errors.Is(err, ErrSettingNotFound):
		RespondError(c, http.StatusNotFound, "Setting not found")
	case errors.Is(err, ErrInvalidCredentials):
		RespondError(c, http.StatusUnauthorized, "Invalid credentials")
	case errors.Is(err, ErrMissingCredentials):
		respondErrorWithHint(c, http.StatusPreconditionFailed, "API key is not configured",
			"Add the key on the settings page or in the server environment")
	case errors.Is(err, ErrServiceNotEnabled):
		respondErrorWithHint(c, http.StatusFailedDependency, "Google Places API is not enabled for this key",
			"Enable the Places API in the Google Cloud console for the project that owns the key")
	case errors.Is(err, ErrUpstreamGeneration):
		zap.L().Warn("generation failed", zap.Error(err), zap.String("trace_id", traceID(c)))
		respondErrorWithHint(c, http.StatusBadGateway, "Could not generate an itinerary",
			"Try again in a moment or adjust your preferences")
	case errors.Is(err, ErrUpstreamLookup):
		zap.L().Warn("destination lookup failed", zap.Error(err), zap.String("trace_id", traceID(c)))
		RespondError(c, http.StatusBadGateway, "Destination lookup failed")
	case errors.Is(err, ErrDatabaseError):
		zap.L().Error("database error", zap.Error(err), zap.String("trace_id", traceID(c)))
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	default:
		zap.L().Error("unknown error", zap.Error(err), zap.String("trace_id", traceID(c)))
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	}
}
