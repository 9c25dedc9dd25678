package handler

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"dvdstore/internal/api/handler/dto"
	"dvdstore/internal/domain/geo"
	"dvdstore/internal/pkg/apperrors"

	"github.com/go-chi/chi/v5"
)

type GeoHandler struct {
	service geo.GeoService
	logger  *slog.Logger
}

func NewGeoHandler(s geo.GeoService, l *slog.Logger) *GeoHandler {
	if s == nil {
		panic("geo service cannot be nil")
	}
	if l == nil {
		panic("logger cannot be nil")
	}
	return &GeoHandler{
		service: s,
		logger:  l.With("component", "GeoHandler"),
	}
}

// ListCities handles GET /api/cities.
func (h *GeoHandler) ListCities(w http.ResponseWriter, r *http.Request) {
	cities, err := h.service.ListCities(r.Context())
	if err != nil {
		h.logger.ErrorContext(r.Context(), "Service failed to list cities", slog.Any("error", err))
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, dto.NewSuccessResponse(cities, "Returned all cities"))
}

// ListCitiesByCountry handles GET /api/cities/{countryID}.
func (h *GeoHandler) ListCitiesByCountry(w http.ResponseWriter, r *http.Request) {
	idStr := chi.URLParam(r, "countryID")
	id, err := strconv.ParseInt(idStr, 10, 32)
	if err != nil || id <= 0 {
		h.logger.WarnContext(r.Context(), "Invalid countryID in URL path", slog.String("countryID", idStr))
		respondError(w, fmt.Errorf("%w: invalid countryID format in URL path: %s", apperrors.ErrInvalidArgument, idStr))
		return
	}

	cities, err := h.service.ListCitiesByCountry(r.Context(), int32(id))
	if err != nil {
		h.logger.ErrorContext(r.Context(), "Service failed to list cities for country", slog.Any("error", err))
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, dto.NewSuccessResponse(cities, "Returned cities for a single country"))
}

// CreateCity handles POST /api/cities.
func (h *GeoHandler) CreateCity(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateCityRequest
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

	city, err := h.service.AddCity(r.Context(), req.City, req.CountryID)
	if err != nil {
		h.logger.ErrorContext(r.Context(), "Service failed to add city", slog.Any("error", err))
		respondError(w, err)
		return
	}

	h.logger.InfoContext(r.Context(), "City created", slog.Int("cityID", int(city.CityID)))
	respondJSON(w, http.StatusCreated, dto.NewSuccessResponse(city, "Successfully created city"))
}

// CountStoresPerCountry handles GET /api/stores_per_country.
func (h *GeoHandler) CountStoresPerCountry(w http.ResponseWriter, r *http.Request) {
	counts, err := h.service.CountStoresPerCountry(r.Context())
	if err != nil {
		h.logger.ErrorContext(r.Context(), "Service failed to count stores per country", slog.Any("error", err))
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, dto.NewSuccessResponse(counts, "Returned stores per country"))
}
