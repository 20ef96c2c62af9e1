package rest

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/flashcards-backend/internal/domain"
	"github.com/heartmarshall/flashcards-backend/internal/service/generate"
	"github.com/heartmarshall/flashcards-backend/internal/service/study"
)

const maxBodyBytes = 1 << 20

type errorResponse struct {
	Error  string       `json:"error"`
	Fields []fieldError `json:"fields,omitempty"`
}

type fieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Error: message})
}

// decodeJSON reads a single JSON object from the request body into dst.
// An empty body leaves dst untouched.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return domain.NewValidationError("body", "invalid JSON: "+err.Error())
	}
	if dec.More() {
		return domain.NewValidationError("body", "unexpected data after JSON object")
	}
	return nil
}

func pathID(r *http.Request, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(r.PathValue(name))
	if err != nil {
		return uuid.Nil, domain.NewValidationError(name, "must be a UUID")
	}
	return id, nil
}

// parseGroupFilter reads a group selector: "" matches every card, "none"
// matches ungrouped cards, anything else must be a group UUID.
func parseGroupFilter(s string) (domain.GroupFilter, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "":
		return domain.AllGroups(), nil
	case "none":
		return domain.Ungrouped(), nil
	}
	id, err := uuid.Parse(strings.TrimSpace(s))
	if err != nil {
		return domain.GroupFilter{}, domain.NewValidationError("group", `must be a UUID or "none"`)
	}
	return domain.InGroup(id), nil
}

// handleError maps service errors onto HTTP statuses. Anything unrecognised
// is logged and reported as a bare 500.
func handleError(log *slog.Logger, w http.ResponseWriter, r *http.Request, err error) {
	var verr *domain.ValidationError
	switch {
	case errors.As(err, &verr):
		resp := errorResponse{Error: "validation failed"}
		for _, fe := range verr.Errors {
			resp.Fields = append(resp.Fields, fieldError{Field: fe.Field, Message: fe.Message})
		}
		writeJSON(w, http.StatusBadRequest, resp)
	case errors.Is(err, domain.ErrUnauthorized):
		writeError(w, http.StatusUnauthorized, "unauthorized")
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, "not found")
	case errors.Is(err, study.ErrRatingInFlight):
		writeError(w, http.StatusConflict, "a rating is already in flight")
	case errors.Is(err, study.ErrNotCurrentCard),
		errors.Is(err, study.ErrInvalidTransition),
		errors.Is(err, study.ErrEmptyQueue),
		errors.Is(err, domain.ErrConflict):
		writeError(w, http.StatusConflict, err.Error())
	case errors.Is(err, generate.ErrNoCards):
		writeError(w, http.StatusUnprocessableEntity, err.Error())
	default:
		log.ErrorContext(r.Context(), "request failed",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.String("error", err.Error()),
		)
		if errors.Is(err, domain.ErrPersistence) {
			writeError(w, http.StatusServiceUnavailable, "storage unavailable")
			return
		}
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}
