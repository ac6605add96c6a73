package handlers

import (
	"net/http"

	"busbooking/internal/domain"
	"busbooking/internal/http/middleware"

	"github.com/gin-gonic/gin"
)

func respondDomainErrorWithCode(c *gin.Context, status int, code, message string) {
	c.JSON(status, gin.H{
		"error":      message,
		"code":       code,
		"request_id": middleware.GetRequestID(c),
	})
}

// RespondDomainError maps domain errors to HTTP responses. Every taxonomy
// member is recoverable; nothing here aborts the process.
func RespondDomainError(c *gin.Context, err error) {
	switch {
	case domain.IsValidation(err):
		respondDomainErrorWithCode(c, http.StatusBadRequest, "validation_error", err.Error())
	case domain.IsDuplicateName(err):
		respondDomainErrorWithCode(c, http.StatusConflict, "duplicate_name", err.Error())
	case domain.IsNotFound(err):
		respondDomainErrorWithCode(c, http.StatusNotFound, "not_found", err.Error())
	case domain.IsConflict(err):
		respondDomainErrorWithCode(c, http.StatusConflict, "conflict", err.Error())
	default:
		respondDomainErrorWithCode(c, http.StatusInternalServerError, "internal_error", "something went wrong")
	}
}
