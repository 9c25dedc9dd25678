package geo

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"dvdstore/internal/pkg/apperrors"
)

type GeoService interface {
	ListCities(ctx context.Context) ([]City, error)
	ListCitiesByCountry(ctx context.Context, countryID int32) ([]City, error)
	AddCity(ctx context.Context, name string, countryID int32) (*City, error)
	CountStoresPerCountry(ctx context.Context) ([]StoreCountryCount, error)
}

var _ GeoService = (*geoService)(nil)

type geoService struct {
	repo   GeoRepository
	logger *slog.Logger
}

func NewGeoService(repo GeoRepository, logger *slog.Logger) GeoService {
	if repo == nil {
		panic("geo repository cannot be nil")
	}
	return &geoService{
		repo:   repo,
		logger: logger.With(slog.String("component", "geoService")),
	}
}

func (s *geoService) ListCities(ctx context.Context) ([]City, error) {
	cities, err := s.repo.ListCities(ctx)
	if err != nil {
		s.logger.ErrorContext(ctx, "Repository error listing cities", slog.Any("error", err))
		return nil, fmt.Errorf("failed to list cities: %w", err)
	}
	return cities, nil
}

func (s *geoService) ListCitiesByCountry(ctx context.Context, countryID int32) ([]City, error) {
	cities, err := s.repo.FindCitiesByCountry(ctx, countryID)
	if err != nil {
		s.logger.ErrorContext(ctx, "Repository error listing cities by country", slog.Any("error", err))
		return nil, fmt.Errorf("failed to list cities for country %d: %w", countryID, err)
	}
	return cities, nil
}

func (s *geoService) AddCity(ctx context.Context, name string, countryID int32) (*City, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, apperrors.NewValidationError("city", "cannot be empty")
	}
	if countryID <= 0 {
		return nil, apperrors.NewValidationError("countryId", "must be a positive country reference")
	}

	city, err := s.repo.AddCity(ctx, name, countryID)
	if err != nil {
		s.logger.ErrorContext(ctx, "Repository error adding city", slog.Any("error", err))
		return nil, fmt.Errorf("failed to add city %q: %w", name, err)
	}
	s.logger.InfoContext(ctx, "City added", slog.Int("cityID", int(city.CityID)))
	return city, nil
}

func (s *geoService) CountStoresPerCountry(ctx context.Context) ([]StoreCountryCount, error) {
	counts, err := s.repo.CountStoresPerCountry(ctx)
	if err != nil {
		s.logger.ErrorContext(ctx, "Repository error counting stores per country", slog.Any("error", err))
		return nil, fmt.Errorf("failed to count stores per country: %w", err)
	}
	return counts, nil
}
