package handler

import (
	"strconv"

	"github.com/labstack/echo/v4"
)

// intQueryParam parses an optional integer query parameter. An absent
// parameter yields zero; a non-numeric value is an error.
func intQueryParam(c echo.Context, name string) (int, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return 0, nil
	}

	return strconv.Atoi(raw)
}

// boolQueryParam parses an optional boolean query parameter, falling back
// to the given default when the parameter is absent.
func boolQueryParam(c echo.Context, name string, fallback bool) (bool, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return fallback, nil
	}

	return strconv.ParseBool(raw)
}
