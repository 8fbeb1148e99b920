package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/brogergvhs/mangaread/internal/providers"
	"github.com/brogergvhs/mangaread/internal/scrape"
	"github.com/brogergvhs/mangaread/internal/util"
)

type errorDetail struct {
	Message    string `json:"message"`
	StatusCode int    `json:"status_code"`
}

type errorBody struct {
	Detail errorDetail `json:"detail"`
}

func abortWithError(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, errorBody{Detail: errorDetail{Message: message, StatusCode: status}})
}

// statusFor maps scraper and registry errors onto HTTP status codes.
func statusFor(err error) int {
	var te *util.TransportError

	switch {
	case errors.Is(err, scrape.ErrInvalidChart),
		errors.Is(err, scrape.ErrInvalidSort),
		errors.Is(err, providers.ErrUnknownProvider),
		errors.Is(err, providers.ErrUnsupported),
		errors.Is(err, scrape.ErrRandomDisabled):
		return http.StatusBadRequest
	case errors.Is(err, scrape.ErrInvalidPage),
		errors.Is(err, scrape.ErrEmptyKeyword),
		errors.Is(err, scrape.ErrEmptySlug),
		errors.Is(err, scrape.ErrInvalidSlug):
		return http.StatusUnprocessableEntity
	case errors.As(err, &te):
		if te.Timeout() {
			return http.StatusGatewayTimeout
		}
		if te.StatusCode == http.StatusNotFound {
			return http.StatusNotFound
		}
		return http.StatusBadGateway
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}
