package http

import (
	"errors"
	"net/http"

	"eventos/internal/domain"
	"eventos/internal/infra/auth/rbac"

	"github.com/gin-gonic/gin"
)

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeError(c *gin.Context, err error) {
	status, code := http.StatusInternalServerError, "INTERNAL"
	switch {
	case errors.Is(err, domain.ErrAuthenticationFailed):
		status, code = http.StatusUnauthorized, "AUTHENTICATION_FAILED"
	case errors.Is(err, domain.ErrDuplicateIdentity):
		status, code = http.StatusConflict, "DUPLICATE_IDENTITY"
	case errors.Is(err, domain.ErrDuplicateGuest):
		status, code = http.StatusConflict, "DUPLICATE_GUEST"
	case errors.Is(err, domain.ErrForbidden):
		status, code = http.StatusForbidden, "FORBIDDEN"
	case errors.Is(err, domain.ErrNotFound):
		status, code = http.StatusNotFound, "NOT_FOUND"
	case errors.Is(err, domain.ErrValidation):
		status, code = http.StatusBadRequest, "VALIDATION"
	case errors.Is(err, domain.ErrInvalidRole):
		status, code = http.StatusBadRequest, "INVALID_ROLE"
	case errors.Is(err, domain.ErrAlreadyJoined):
		status, code = http.StatusBadRequest, "ALREADY_JOINED"
	case errors.Is(err, domain.ErrNotParticipant):
		status, code = http.StatusBadRequest, "NOT_PARTICIPANT"
	}
	writeErrorCode(c, status, code, err.Error())
}

func writeErrorCode(c *gin.Context, status int, code, message string) {
	c.AbortWithStatusJSON(status, errorResponse{
		Code:    code,
		Message: message,
	})
}

func writeAuthzError(c *gin.Context, err error) {
	if authz, ok := rbac.IsAuthzError(err); ok {
		writeErrorCode(c, http.StatusForbidden, authz.Code, "forbidden")
		return
	}
	writeErrorCode(c, http.StatusForbidden, "FORBIDDEN", "forbidden")
}
