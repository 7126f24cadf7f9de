package api

import (
	"errors"                               // Error inspection
	"fragrance_finder/internal/domain"     // Error kinds
	"fragrance_finder/internal/middleware" // Request id
	"net/http"                             // HTTP status codes

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Structured logging
)

// statusFor maps an error kind to its HTTP status
func statusFor(kind domain.Kind) int {
	switch kind {
	case domain.KindValidation, domain.KindConflict:
		return http.StatusBadRequest
	case domain.KindAuthentication:
		return http.StatusUnauthorized
	case domain.KindAuthorization:
		return http.StatusForbidden
	case domain.KindNotFound:
		return http.StatusNotFound
	}
	return http.StatusInternalServerError
}

// respondError writes the JSON error body for err. Infrastructure errors are logged and never leak detail.
func respondError(c *gin.Context, err error) {
	kind := domain.KindOf(err)
	status := statusFor(kind)
	msg := "internal server error"
	if kind != domain.KindInfrastructure {
		var de *domain.Error
		if errors.As(err, &de) {
			msg = de.Message
		}
	} else {
		logrus.WithFields(logrus.Fields{
			"request_id": middleware.RequestID(c), // Set by the request logger
			"path":       c.FullPath(),            // Route pattern
			"retryable":  domain.IsRetryable(err), // Transient failure
		}).WithError(err).Error("Request failed")
	}
	c.JSON(status, gin.H{"error": msg, "code": kind.String()})
}

// badRequest responds with a validation error
func badRequest(c *gin.Context, msg string) {
	respondError(c, domain.Validation(msg))
}
