package catalog

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"dvdstore/internal/pkg/apperrors"
)

// topRentedLimit is the fixed window of the "most rented" report.
const topRentedLimit = 3

type CatalogService interface {
	ListActors(ctx context.Context) ([]Actor, error)
	GetActor(ctx context.Context, actorID int32) (*Actor, error)
	FindActor(ctx context.Context, firstName, lastName string) (*Actor, error)
	GetActorFilmsInCategory(ctx context.Context, actorID, categoryID int32) (*ActorCategoryFilms, error)
	CountFilmsPerCategory(ctx context.Context) ([]CategoryFilmCount, error)
	TopRentedFilms(ctx context.Context) ([]RentalCount, error)
}

var _ CatalogService = (*catalogService)(nil)

type catalogService struct {
	repo   CatalogRepository
	logger *slog.Logger
}

func NewCatalogService(repo CatalogRepository, logger *slog.Logger) CatalogService {
	if repo == nil {
		panic("catalog repository cannot be nil")
	}
	return &catalogService{
		repo:   repo,
		logger: logger.With(slog.String("component", "catalogService")),
	}
}

func (s *catalogService) ListActors(ctx context.Context) ([]Actor, error) {
	actors, err := s.repo.ListActors(ctx)
	if err != nil {
		s.logger.ErrorContext(ctx, "Repository error listing actors", slog.Any("error", err))
		return nil, fmt.Errorf("failed to list actors: %w", err)
	}
	return actors, nil
}

func (s *catalogService) GetActor(ctx context.Context, actorID int32) (*Actor, error) {
	actor, err := s.repo.FindActorByID(ctx, actorID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			s.logger.WarnContext(ctx, "Actor not found", slog.Int("actorID", int(actorID)))
			return nil, ErrActorNotFound
		}
		s.logger.ErrorContext(ctx, "Repository error finding actor", slog.Any("error", err))
		return nil, fmt.Errorf("failed to get actor %d: %w", actorID, err)
	}
	return actor, nil
}

func (s *catalogService) FindActor(ctx context.Context, firstName, lastName string) (*Actor, error) {
	firstName = strings.TrimSpace(firstName)
	lastName = strings.TrimSpace(lastName)
	if firstName == "" || lastName == "" {
		return nil, apperrors.NewValidationError("name", "first and last name are required")
	}

	actor, err := s.repo.FindActorByName(ctx, firstName, lastName)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, ErrActorNotFound
		}
		s.logger.ErrorContext(ctx, "Repository error querying actor by name", slog.Any("error", err))
		return nil, fmt.Errorf("failed to query actor by name: %w", err)
	}
	return actor, nil
}

func (s *catalogService) GetActorFilmsInCategory(ctx context.Context, actorID, categoryID int32) (*ActorCategoryFilms, error) {
	films, err := s.repo.ActorFilmsInCategory(ctx, actorID, categoryID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, ErrActorNotFound
		}
		s.logger.ErrorContext(ctx, "Repository error fetching actor films in category", slog.Any("error", err))
		return nil, fmt.Errorf("failed to get films for actor %d in category %d: %w", actorID, categoryID, err)
	}
	return films, nil
}

func (s *catalogService) CountFilmsPerCategory(ctx context.Context) ([]CategoryFilmCount, error) {
	counts, err := s.repo.CountFilmsPerCategory(ctx)
	if err != nil {
		s.logger.ErrorContext(ctx, "Repository error counting films per category", slog.Any("error", err))
		return nil, fmt.Errorf("failed to count films per category: %w", err)
	}
	return counts, nil
}

func (s *catalogService) TopRentedFilms(ctx context.Context) ([]RentalCount, error) {
	top, err := s.repo.TopRentedFilms(ctx, topRentedLimit)
	if err != nil {
		s.logger.ErrorContext(ctx, "Repository error fetching top rented films", slog.Any("error", err))
		return nil, fmt.Errorf("failed to get top rented films: %w", err)
	}
	return top, nil
}
