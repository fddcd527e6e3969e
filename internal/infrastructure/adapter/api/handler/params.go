package handler

import (
	"errors"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	domainerr "github.com/amirhossein-jamali/raffle-service/internal/domain/error"
)

// uintParam parses a positive numeric path parameter
func uintParam(c *gin.Context, name string) (uint64, error) {
	value, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || value == 0 {
		return 0, domainerr.NewValidationError(domainerr.ErrInvalidRequest, name, "must be a positive integer")
	}
	return value, nil
}

// intQuery parses an optional integer query parameter
func intQuery(c *gin.Context, name string, fallback int) (int, error) {
	raw := c.Query(name)
	if raw == "" {
		return fallback, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, domainerr.NewValidationError(domainerr.ErrInvalidRequest, name, "must be an integer")
	}
	return value, nil
}

// bindJSON decodes and validates the body, naming the first offending field
func bindJSON(c *gin.Context, obj any) error {
	if err := c.ShouldBindJSON(obj); err != nil {
		return bindingError(err)
	}
	return nil
}

// bindQuery decodes and validates query parameters
func bindQuery(c *gin.Context, obj any) error {
	if err := c.ShouldBindQuery(obj); err != nil {
		return bindingError(err)
	}
	return nil
}

func bindingError(err error) error {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) && len(validationErrs) > 0 {
		first := validationErrs[0]
		reason := "failed " + first.Tag()
		if first.Param() != "" {
			reason += "=" + first.Param()
		}
		return domainerr.NewValidationError(domainerr.ErrInvalidRequest, lowerFirst(first.Field()), reason)
	}
	return domainerr.NewValidationError(domainerr.ErrInvalidRequest, "body", strings.TrimSpace(err.Error()))
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToLower(s[:1]) + s[1:]
}
