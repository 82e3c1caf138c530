package api

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/vytor/gridstats/internal/errors"
)

const (
	minSeasonYear = 1869
	maxSeasonYear = 9999
)

func playerIDParam(r *http.Request) (int64, error) {
	raw := chi.URLParam(r, "playerID")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, errors.NewValidationError("player_id", "must be a positive integer")
	}
	return id, nil
}

func yearValue(raw string) (int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, errors.NewValidationError("year", "is required")
	}
	year, err := strconv.Atoi(raw)
	if err != nil {
		return 0, errors.NewValidationError("year", "must be an integer")
	}
	if year < minSeasonYear || year > maxSeasonYear {
		return 0, errors.NewValidationError("year", "must be a four digit season year")
	}
	return year, nil
}

func positionValue(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", errors.NewValidationError("position", "is required")
	}
	return raw, nil
}
