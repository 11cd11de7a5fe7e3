package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	apperrors "workzen/errors"
	"workzen/response"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// handleServiceError maps an AppError onto the right HTTP response. Anything
// that is not an AppError becomes a 500.
func handleServiceError(c *gin.Context, err error) {
	appErr := apperrors.GetAppError(err)
	if appErr == nil {
		response.ServerError(c)
		return
	}

	switch appErr.Code {
	case apperrors.ErrCodeNotFound, apperrors.ErrCodeUserNotFound, apperrors.ErrCodeDBNotFound:
		response.NotFoundMessage(c, appErr.Message)
	case apperrors.ErrCodeConflict, apperrors.ErrCodeUserExists, apperrors.ErrCodeDBDuplicate:
		response.Conflict(c, appErr.Message)
	case apperrors.ErrCodeInsufficientBalance:
		response.Error(c, http.StatusBadRequest, appErr.Message)
	case apperrors.ErrCodeValidation, apperrors.ErrCodeRequiredField,
		apperrors.ErrCodeInvalidFormat, apperrors.ErrCodeInvalidEmail,
		apperrors.ErrCodeInvalidRole, apperrors.ErrCodeInvalidOperation:
		response.ValidationError(c, appErr.Message)
	case apperrors.ErrCodeUnauthorized, apperrors.ErrCodeInvalidToken,
		apperrors.ErrCodeMissingToken, apperrors.ErrCodeInvalidPassword:
		response.Unauthorized(c)
	case apperrors.ErrCodeForbidden:
		response.Forbidden(c)
	default:
		response.ServerError(c)
	}
}

// bindingErrorMessage turns a ShouldBindJSON failure into a field-level
// message instead of the raw validator dump.
func bindingErrorMessage(err error) string {
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return err.Error()
	}

	parts := make([]string, 0, len(validationErrs))
	for _, fieldErr := range validationErrs {
		switch fieldErr.Tag() {
		case "required":
			parts = append(parts, fmt.Sprintf("%s is required", fieldErr.Field()))
		case "email":
			parts = append(parts, fmt.Sprintf("%s must be a valid email", fieldErr.Field()))
		case "min":
			parts = append(parts, fmt.Sprintf("%s must be at least %s characters", fieldErr.Field(), fieldErr.Param()))
		default:
			parts = append(parts, fmt.Sprintf("%s is invalid", fieldErr.Field()))
		}
	}
	return strings.Join(parts, "; ")
}

// currentUserID reads the authenticated user id set by the auth middleware.
func currentUserID(c *gin.Context) uint {
	if v, ok := c.Get("userID"); ok {
		if id, ok := v.(uint); ok {
			return id
		}
	}
	return 0
}

func currentUserRole(c *gin.Context) string {
	if v, ok := c.Get("userRole"); ok {
		if role, ok := v.(string); ok {
			return role
		}
	}
	return ""
}

func queryInt(c *gin.Context, key string, fallback int) int {
	raw := c.Query(key)
	if raw == "" {
		return fallback
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return n
}

// parseDate parses a YYYY-MM-DD query or body value.
func parseDate(value string) (time.Time, error) {
	return time.Parse("2006-01-02", value)
}
