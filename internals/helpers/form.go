package helper

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/text/unicode/norm"

	"snowschool_backend/internals/constants"
)

// CleanString normalises user input (NFKC + trim).
func CleanString(s string) string {
	return strings.TrimSpace(norm.NFKC.String(s))
}

func FormString(c *fiber.Ctx, key string) string {
	return CleanString(c.FormValue(key))
}

// FormOptionalString returns nil for an empty field.
func FormOptionalString(c *fiber.Ctx, key string) *string {
	v := FormString(c, key)
	if v == "" {
		return nil
	}
	return &v
}

// FormChecked reports an HTML checkbox sent as "on".
func FormChecked(c *fiber.Ctx, key string) bool {
	return c.FormValue(key) == "on"
}

func FormUint(c *fiber.Ctx, key string) (uint, error) {
	v := strings.TrimSpace(c.FormValue(key))
	if v == "" {
		return 0, fmt.Errorf("%s is required", key)
	}
	n, err := strconv.ParseUint(v, 10, 64)
	if err != nil || n == 0 {
		return 0, fmt.Errorf("%s must be a positive integer", key)
	}
	return uint(n), nil
}

// FormOptionalUint returns nil for an empty field.
func FormOptionalUint(c *fiber.Ctx, key string) (*uint, error) {
	if strings.TrimSpace(c.FormValue(key)) == "" {
		return nil, nil
	}
	n, err := FormUint(c, key)
	if err != nil {
		return nil, err
	}
	return &n, nil
}

// FormInt falls back to def when the field is empty.
func FormInt(c *fiber.Ctx, key string, def int) (int, error) {
	v := strings.TrimSpace(c.FormValue(key))
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer", key)
	}
	return n, nil
}

func FormFloat(c *fiber.Ctx, key string) (float64, error) {
	v := strings.TrimSpace(c.FormValue(key))
	if v == "" {
		return 0, fmt.Errorf("%s is required", key)
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, fmt.Errorf("%s must be a number", key)
	}
	return f, nil
}

// ParseDate parses YYYY-MM-DD as a UTC calendar date.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(constants.DateLayout, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, expected YYYY-MM-DD", s)
	}
	return t, nil
}

// FormOptionalDate returns nil for an empty field.
func FormOptionalDate(c *fiber.Ctx, key string) (*time.Time, error) {
	v := strings.TrimSpace(c.FormValue(key))
	if v == "" {
		return nil, nil
	}
	t, err := ParseDate(v)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func ParamUint(c *fiber.Ctx, name string) (uint, error) {
	n, err := strconv.ParseUint(c.Params(name), 10, 64)
	if err != nil || n == 0 {
		return 0, fiber.NewError(fiber.StatusNotFound, "Not Found")
	}
	return uint(n), nil
}
