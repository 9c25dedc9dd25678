package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"dvdstore/internal/api/handler/dto"
	"dvdstore/internal/domain/catalog"
	"dvdstore/internal/domain/customer"
	"dvdstore/internal/pkg/apperrors"

	"github.com/go-chi/chi/v5"
)

type CustomerHandler struct {
	service customer.CustomerService
	logger  *slog.Logger
}

func NewCustomerHandler(s customer.CustomerService, l *slog.Logger) *CustomerHandler {
	if s == nil {
		panic("customer service cannot be nil")
	}
	if l == nil {
		panic("logger cannot be nil")
	}
	return &CustomerHandler{
		service: s,
		logger:  l.With("component", "CustomerHandler"),
	}
}

func decodeJSON(r *http.Request, v interface{}) error {
	if r.Body == nil {
		return fmt.Errorf("no request body")
	}
	defer r.Body.Close()
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	return decoder.Decode(v)
}

func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	response, err := json.Marshal(payload)
	if err != nil {
		slog.Default().Error("Failed to marshal JSON response", "error", err)
		http.Error(w, `{"status":"error","data":{},"message":"Internal server error"}`, http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(response)
}

func respondError(w http.ResponseWriter, err error) {
	status, message := http.StatusInternalServerError, "An unexpected error occurred."
	var validationError *apperrors.ValidationError
	var appErr *apperrors.AppError

	switch {
	case errors.Is(err, apperrors.ErrNotFound), errors.Is(err, customer.ErrNotFound), errors.Is(err, catalog.ErrActorNotFound):
		status, message = http.StatusNotFound, "Resource not found."
	case errors.As(err, &validationError):
		status, message = http.StatusBadRequest, validationError.Error()
	case errors.Is(err, apperrors.ErrInvalidArgument), errors.Is(err, apperrors.ErrValidation):
		status, message = http.StatusBadRequest, err.Error()
	case errors.Is(err, apperrors.ErrAlreadyExists):
		status, message = http.StatusConflict, err.Error()
	case errors.Is(err, apperrors.ErrConstraintViolation):
		status, message = http.StatusUnprocessableEntity, err.Error()
	case errors.Is(err, apperrors.ErrUnauthorized):
		status, message = http.StatusUnauthorized, "Unauthorized."
	case errors.As(err, &appErr):
		message = appErr.Error()
	default:
		slog.Default().Error("Unhandled internal error", "error", err)
	}

	respondJSON(w, status, dto.NewErrorResponse(message))
}

func getCustomerIDFromURL(r *http.Request) (int32, error) {
	idStr := chi.URLParam(r, "customerID")
	if idStr == "" {
		return 0, fmt.Errorf("%w: customerID not found in URL path", apperrors.ErrInvalidArgument)
	}
	id, err := strconv.ParseInt(idStr, 10, 32)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: invalid customerID format in URL path: %s", apperrors.ErrInvalidArgument, idStr)
	}
	return int32(id), nil
}

// CreateCustomer handles POST /api/customers. It validates the payload,
// runs the onboarding transaction and answers with the envelope the
// storefront expects: either the fully persisted customer or an error
// envelope, never a partially linked record.
func (h *CustomerHandler) CreateCustomer(w http.ResponseWriter, r *http.Request) {
	h.logger.DebugContext(r.Context(), "Received create customer request")

	var req dto.CreateCustomerRequest
	if err := decodeJSON(r, &req); err != nil {
		h.logger.WarnContext(r.Context(), "Failed to decode request body", slog.Any("error", err))
		respondError(w, fmt.Errorf("%w: %v", apperrors.ErrInvalidArgument, err))
		return
	}
	if err := req.Validate(); err != nil {
		h.logger.WarnContext(r.Context(), "Request validation failed", slog.Any("error", err))
		respondError(w, fmt.Errorf("%w: %v", apperrors.ErrInvalidArgument, err))
		return
	}
	h.logger.DebugContext(r.Context(), "Request validation passed")

	createdCustomer, err := h.service.OnboardCustomer(r.Context(), req.ToOnboardingInput())
	if err != nil {
		h.logger.ErrorContext(r.Context(), "Service failed to onboard customer", slog.Any("error", err))
		respondError(w, err)
		return
	}

	resp := dto.NewCustomerResponse(createdCustomer)
	h.logger.InfoContext(r.Context(), "Customer onboarded successfully", slog.Int("customerID", int(resp.CustomerID)))
	respondJSON(w, http.StatusCreated, dto.NewSuccessResponse(resp, "Successfully created customer"))
}

// GetCustomerDetails handles GET /api/customers/{customerID}.
func (h *CustomerHandler) GetCustomerDetails(w http.ResponseWriter, r *http.Request) {
	customerID, err := getCustomerIDFromURL(r)
	if err != nil {
		h.logger.WarnContext(r.Context(), "Failed to get customer ID from URL", slog.Any("error", err))
		respondError(w, err)
		return
	}

	details, err := h.service.GetCustomerDetails(r.Context(), customerID)
	if err != nil {
		level := slog.LevelWarn
		if !errors.Is(err, customer.ErrNotFound) && !errors.Is(err, apperrors.ErrNotFound) {
			level = slog.LevelError
		}
		h.logger.Log(r.Context(), level, "Service failed to get customer details", slog.Any("error", err))
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, dto.NewSuccessResponse(details, "Returned customer details"))
}

// ListCustomersByStore handles GET /api/customers/shop/{storeID}.
func (h *CustomerHandler) ListCustomersByStore(w http.ResponseWriter, r *http.Request) {
	storeIDStr := chi.URLParam(r, "storeID")
	storeID, err := strconv.ParseInt(storeIDStr, 10, 16)
	if err != nil || storeID <= 0 {
		h.logger.WarnContext(r.Context(), "Invalid storeID in URL path", slog.String("storeID", storeIDStr))
		respondError(w, fmt.Errorf("%w: invalid storeID format in URL path: %s", apperrors.ErrInvalidArgument, storeIDStr))
		return
	}

	customers, err := h.service.ListCustomersByStore(r.Context(), int16(storeID))
	if err != nil {
		h.logger.ErrorContext(r.Context(), "Service failed to list customers for store", slog.Any("error", err))
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, dto.NewSuccessResponse(customers, "Returned customers for a single shop"))
}

// CountCustomersPerStore handles GET /api/customers/total_per_shop.
func (h *CustomerHandler) CountCustomersPerStore(w http.ResponseWriter, r *http.Request) {
	counts, err := h.service.CountCustomersPerStore(r.Context())
	if err != nil {
		h.logger.ErrorContext(r.Context(), "Service failed to count customers per store", slog.Any("error", err))
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, dto.NewSuccessResponse(counts, "Returned customers per shop"))
}
