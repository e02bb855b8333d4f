package handlers

import (
	"fmt"
	"strconv"

	"github.com/labstack/echo/v4"
)

const (
	defaultLimit = 100
	maxLimit     = 1000
)

// parseLimit reads the limit query parameter. Values above the hard ceiling
// are rejected, not clamped.
func parseLimit(c echo.Context) (int64, error) {
	raw := c.QueryParam("limit")
	if raw == "" {
		return defaultLimit, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("limit must be an integer")
	}
	if n < 1 {
		return 0, fmt.Errorf("limit must be at least 1")
	}
	if n > maxLimit {
		return 0, fmt.Errorf("limit must not exceed %d", maxLimit)
	}
	return int64(n), nil
}
