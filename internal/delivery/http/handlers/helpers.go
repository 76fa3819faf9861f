package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/khaledhaj12/Nanus-Website-Sales-Report-sub001/internal/delivery/http/dto/response"
	"github.com/khaledhaj12/Nanus-Website-Sales-Report-sub001/internal/domain"
)

func respondWithError(w http.ResponseWriter, code int, message string) {
	respondWithJSON(w, code, response.ErrorResponse{Error: message})
}

func respondWithJSON(w http.ResponseWriter, code int, payload any) {
	body, err := json.Marshal(payload)
	if err != nil {
		slog.Error("failed to marshal JSON response", "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":"failed to marshal JSON response"}`))
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if _, err := w.Write(body); err != nil {
		slog.Error("failed to write JSON response", "error", err)
	}
}

func mapErrorToStatusCode(err error) int {
	switch {
	case errors.Is(err, domain.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrConflict),
		errors.Is(err, domain.ErrDuplicate),
		errors.Is(err, domain.ErrSyncInProgress):
		return http.StatusConflict
	case errors.Is(err, domain.ErrUpstream):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// respondWithDomainError writes err with its mapped status. Internal errors
// are logged and hidden from the client.
func respondWithDomainError(w http.ResponseWriter, r *http.Request, err error) {
	code := mapErrorToStatusCode(err)
	if code == http.StatusInternalServerError {
		slog.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "error", err)
		respondWithError(w, code, "internal server error")
		return
	}

	var inUse *domain.LocationInUseError
	if errors.As(err, &inUse) {
		respondWithJSON(w, code, map[string]any{
			"error":       inUse.Error(),
			"locationIds": inUse.IDs,
		})
		return
	}
	respondWithError(w, code, err.Error())
}

type requestValidator struct {
	validate *validator.Validate
}

func newRequestValidator() *requestValidator {
	v := validator.New()
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return &requestValidator{validate: v}
}

// decode reads a JSON body into dst and validates it. It writes the error
// response itself and reports whether the handler may continue.
func (rv *requestValidator) decode(w http.ResponseWriter, r *http.Request, dst any) bool {
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(dst); err != nil {
		respondWithError(w, http.StatusBadRequest, fmt.Sprintf("invalid request payload: %v", err))
		return false
	}

	if err := rv.validate.Struct(dst); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			respondWithJSON(w, http.StatusBadRequest, response.ValidationErrorResponse{
				Error:   "validation failed",
				Details: formatValidationErrors(validationErrors),
			})
			return false
		}
		slog.ErrorContext(r.Context(), "unexpected validation error", "error", err)
		respondWithError(w, http.StatusInternalServerError, "internal validation error")
		return false
	}
	return true
}

func formatValidationErrors(errs validator.ValidationErrors) map[string]string {
	details := make(map[string]string, len(errs))
	for _, fe := range errs {
		field := fe.Field()
		switch fe.Tag() {
		case "required":
			details[field] = "is required"
		case "min":
			details[field] = fmt.Sprintf("must be at least %s", fe.Param())
		case "max":
			details[field] = fmt.Sprintf("must be at most %s", fe.Param())
		case "oneof":
			details[field] = fmt.Sprintf("must be one of: %s", fe.Param())
		case "url":
			details[field] = "must be a valid URL"
		default:
			details[field] = fmt.Sprintf("failed on %s", fe.Tag())
		}
	}
	return details
}

func uintParam(r *http.Request, name string) (uint, error) {
	raw := chi.URLParam(r, name)
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return 0, domain.Validationf("invalid %s %q", name, raw)
	}
	return uint(id), nil
}

// optionalUint parses an optional numeric query value. Empty and "all" mean
// unset.
func optionalUint(r *http.Request, name string) (*uint, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(name))
	if raw == "" || strings.EqualFold(raw, "all") {
		return nil, nil
	}
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return nil, domain.Validationf("invalid %s %q", name, raw)
	}
	v := uint(id)
	return &v, nil
}

func optionalInt(r *http.Request, name string) (*int, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(name))
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return nil, domain.Validationf("invalid %s %q", name, raw)
	}
	return &v, nil
}

// statusesParam accepts statuses[]=a&statuses[]=b, statuses=a,b or both.
func statusesParam(r *http.Request) []domain.OrderStatus {
	q := r.URL.Query()
	var out []domain.OrderStatus
	for _, key := range []string{"statuses[]", "statuses"} {
		for _, v := range q[key] {
			for _, s := range strings.Split(v, ",") {
				if s = strings.ToLower(strings.TrimSpace(s)); s != "" {
					out = append(out, domain.OrderStatus(s))
				}
			}
		}
	}
	return out
}
