package handler

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"dvdstore/internal/api/handler/dto"
	"dvdstore/internal/domain/catalog"
	"dvdstore/internal/pkg/apperrors"

	"github.com/go-chi/chi/v5"
)

type CatalogHandler struct {
	service catalog.CatalogService
	logger  *slog.Logger
}

func NewCatalogHandler(s catalog.CatalogService, l *slog.Logger) *CatalogHandler {
	if s == nil {
		panic("catalog service cannot be nil")
	}
	if l == nil {
		panic("logger cannot be nil")
	}
	return &CatalogHandler{
		service: s,
		logger:  l.With("component", "CatalogHandler"),
	}
}

func parseIDParam(r *http.Request, name string) (int32, error) {
	idStr := chi.URLParam(r, name)
	id, err := strconv.ParseInt(idStr, 10, 32)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: invalid %s format in URL path: %s", apperrors.ErrInvalidArgument, name, idStr)
	}
	return int32(id), nil
}

func parseIDQuery(r *http.Request, name string) (int32, error) {
	idStr := r.URL.Query().Get(name)
	id, err := strconv.ParseInt(idStr, 10, 32)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: invalid %s query parameter: %s", apperrors.ErrInvalidArgument, name, idStr)
	}
	return int32(id), nil
}

// ListActors handles GET /api/actors.
func (h *CatalogHandler) ListActors(w http.ResponseWriter, r *http.Request) {
	actors, err := h.service.ListActors(r.Context())
	if err != nil {
		h.logger.ErrorContext(r.Context(), "Service failed to list actors", slog.Any("error", err))
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, dto.NewSuccessResponse(actors, "Returned all actors"))
}

// GetActorByID handles GET /api/actors/{actorID}.
func (h *CatalogHandler) GetActorByID(w http.ResponseWriter, r *http.Request) {
	actorID, err := parseIDParam(r, "actorID")
	if err != nil {
		h.logger.WarnContext(r.Context(), "Invalid actorID in URL path", slog.Any("error", err))
		respondError(w, err)
		return
	}

	actor, err := h.service.GetActor(r.Context(), actorID)
	if err != nil {
		level := slog.LevelWarn
		if !errors.Is(err, catalog.ErrActorNotFound) && !errors.Is(err, apperrors.ErrNotFound) {
			level = slog.LevelError
		}
		h.logger.Log(r.Context(), level, "Service failed to get actor", slog.Any("error", err))
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, dto.NewSuccessResponse(actor, "Returned single actor"))
}

// FindActorByName handles GET /api/actor-query?first_name=..&last_name=..
func (h *CatalogHandler) FindActorByName(w http.ResponseWriter, r *http.Request) {
	firstName := r.URL.Query().Get("first_name")
	lastName := r.URL.Query().Get("last_name")

	actor, err := h.service.FindActor(r.Context(), firstName, lastName)
	if err != nil {
		level := slog.LevelWarn
		if !errors.Is(err, catalog.ErrActorNotFound) && !errors.Is(err, apperrors.ErrValidation) {
			level = slog.LevelError
		}
		h.logger.Log(r.Context(), level, "Service failed to find actor by name", slog.Any("error", err))
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, dto.NewSuccessResponse(actor, "Returned matching actor"))
}

// GetActorFilmsInCategory handles GET /api/actor-film-in-category. It drives
// the get_actor_film_in_category stored function, which aggregates the
// actor's titles in that category.
func (h *CatalogHandler) GetActorFilmsInCategory(w http.ResponseWriter, r *http.Request) {
	actorID, err := parseIDQuery(r, "actor_id")
	if err != nil {
		respondError(w, err)
		return
	}
	categoryID, err := parseIDQuery(r, "category_id")
	if err != nil {
		respondError(w, err)
		return
	}

	films, err := h.service.GetActorFilmsInCategory(r.Context(), actorID, categoryID)
	if err != nil {
		h.logger.ErrorContext(r.Context(), "Service failed to get actor films in category", slog.Any("error", err))
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, dto.NewSuccessResponse(films, "Returned actor films in category"))
}

// CountFilmsPerCategory handles GET /api/movies/totals_per_category.
func (h *CatalogHandler) CountFilmsPerCategory(w http.ResponseWriter, r *http.Request) {
	counts, err := h.service.CountFilmsPerCategory(r.Context())
	if err != nil {
		h.logger.ErrorContext(r.Context(), "Service failed to count films per category", slog.Any("error", err))
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, dto.NewSuccessResponse(counts, "Returned film totals per category"))
}

// TopRentedFilms handles GET /api/movies/top_three_rented.
func (h *CatalogHandler) TopRentedFilms(w http.ResponseWriter, r *http.Request) {
	films, err := h.service.TopRentedFilms(r.Context())
	if err != nil {
		h.logger.ErrorContext(r.Context(), "Service failed to get top rented films", slog.Any("error", err))
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, dto.NewSuccessResponse(films, "Returned top rented films"))
}
