package utils

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"bulletin/internal/shared/errors"
)

// ParseUintParam reads a positive integer path parameter.
func ParseUintParam(c *gin.Context, name string) (uint, error) {
	raw := strings.TrimSpace(c.Param(name))
	if raw == "" {
		return 0, errors.NewValidationError(name + " is required")
	}
	n, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || n == 0 {
		return 0, errors.NewValidationError("invalid "+name, raw)
	}
	return uint(n), nil
}

// ParseOptionalUintQuery reads an optional positive integer query parameter.
// It returns 0 when the parameter is absent.
func ParseOptionalUintQuery(c *gin.Context, name string) (uint, error) {
	raw, ok := c.GetQuery(name)
	if !ok || strings.TrimSpace(raw) == "" {
		return 0, nil
	}
	n, err := strconv.ParseUint(strings.TrimSpace(raw), 10, 64)
	if err != nil {
		return 0, errors.NewValidationError("invalid "+name, raw)
	}
	return uint(n), nil
}

// ParseBoolQuery reads a boolean query parameter, accepting 1/0 and true/false.
func ParseBoolQuery(c *gin.Context, name string) (value bool, present bool, err error) {
	raw, ok := c.GetQuery(name)
	if !ok || strings.TrimSpace(raw) == "" {
		return false, false, nil
	}
	b, parseErr := strconv.ParseBool(strings.TrimSpace(raw))
	if parseErr != nil {
		return false, true, errors.NewValidationError("invalid "+name, raw)
	}
	return b, true, nil
}
