package web

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
)

// ParamValidator reports whether a parsed numeric parameter is acceptable.
type ParamValidator func(value float64) bool

// Gt returns a ParamValidator that accepts values strictly greater than the bound.
func Gt(bound float64) ParamValidator {
	return func(value float64) bool {
		return value > bound
	}
}

// Gte returns a ParamValidator that accepts values greater than or equal to the bound.
func Gte(bound float64) ParamValidator {
	return func(value float64) bool {
		return value >= bound
	}
}

// ParseOptionalInt parses an optional integer query parameter. The fallback is
// returned when the parameter is absent. Responds with 400 and returns ok=false
// when the value does not parse as an integer or fails the validator.
func ParseOptionalInt(r *http.Request, w http.ResponseWriter, logger *slog.Logger, key string, fallback int64, valid ParamValidator) (int64, bool) {
	value := r.URL.Query().Get(key)
	if value == "" {
		return fallback, true
	}
	intValue, err := strconv.ParseInt(value, 10, 64)
	if err != nil || !valid(float64(intValue)) {
		RespondError(w, logger, http.StatusBadRequest, fmt.Sprintf("Invalid %s number: %s", key, value))
		return 0, false
	}
	return intValue, true
}

// ParseOptionalFloat parses an optional floating point query parameter.
// Returns nil when the parameter is absent. Responds with 400 and returns
// ok=false when the value does not parse or fails the validator.
func ParseOptionalFloat(r *http.Request, w http.ResponseWriter, logger *slog.Logger, key string, valid ParamValidator) (*float64, bool) {
	value := r.URL.Query().Get(key)
	if value == "" {
		return nil, true
	}
	floatValue, err := strconv.ParseFloat(value, 64)
	if err != nil || !valid(floatValue) {
		RespondError(w, logger, http.StatusBadRequest, fmt.Sprintf("Invalid %s number: %s", key, value))
		return nil, false
	}
	return &floatValue, true
}
