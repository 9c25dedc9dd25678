package postgres

import (
	"context"
	"fmt"
	"log/slog"

	"dvdstore/internal/domain/geo"
	"dvdstore/internal/pkg/apperrors"
)

type GeoRepository struct {
	db     DBPool
	logger *slog.Logger
}

var _ geo.GeoRepository = (*GeoRepository)(nil)

func NewGeoRepository(db DBPool, logger *slog.Logger) *GeoRepository {
	return &GeoRepository{db: db, logger: logger.With("component", "GeoRepository")}
}

func (r *GeoRepository) ListCities(ctx context.Context) ([]geo.City, error) {
	query := `SELECT city_id, city, country_id, last_update FROM city`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.logger.ErrorContext(ctx, "Failed to query cities", slog.Any("error", err))
		return nil, fmt.Errorf(errMsgFormat, apperrors.ErrDatabase, err)
	}
	defer rows.Close()

	cities := make([]geo.City, 0)
	for rows.Next() {
		var c geo.City
		if err := rows.Scan(&c.CityID, &c.City, &c.CountryID, &c.LastUpdate); err != nil {
			r.logger.ErrorContext(ctx, "Failed to scan city row", slog.Any("error", err))
			return nil, fmt.Errorf(errMsgFormat, apperrors.ErrDatabase, err)
		}
		cities = append(cities, c)
	}
	if err = rows.Err(); err != nil {
		r.logger.ErrorContext(ctx, "Error iterating city rows", slog.Any("error", err))
		return nil, fmt.Errorf(errMsgFormat, apperrors.ErrDatabase, err)
	}

	return cities, nil
}

func (r *GeoRepository) FindCitiesByCountry(ctx context.Context, countryID int32) ([]geo.City, error) {
	query := `SELECT city_id, city, country_id, last_update FROM city WHERE country_id = $1`

	rows, err := r.db.Query(ctx, query, countryID)
	if err != nil {
		r.logger.ErrorContext(ctx, "Failed to query cities by country", "country_id", countryID, slog.Any("error", err))
		return nil, fmt.Errorf(errMsgFormat, apperrors.ErrDatabase, err)
	}
	defer rows.Close()

	cities := make([]geo.City, 0)
	for rows.Next() {
		var c geo.City
		if err := rows.Scan(&c.CityID, &c.City, &c.CountryID, &c.LastUpdate); err != nil {
			r.logger.ErrorContext(ctx, "Failed to scan city row", slog.Any("error", err))
			return nil, fmt.Errorf(errMsgFormat, apperrors.ErrDatabase, err)
		}
		cities = append(cities, c)
	}
	if err = rows.Err(); err != nil {
		r.logger.ErrorContext(ctx, "Error iterating city rows", slog.Any("error", err))
		return nil, fmt.Errorf(errMsgFormat, apperrors.ErrDatabase, err)
	}

	return cities, nil
}

func (r *GeoRepository) AddCity(ctx context.Context, name string, countryID int32) (*geo.City, error) {
	query := `
        INSERT INTO city (city, country_id)
        VALUES ($1, $2)
        RETURNING city_id, city, country_id, last_update`

	var c geo.City
	err := r.db.QueryRow(ctx, query, name, countryID).Scan(&c.CityID, &c.City, &c.CountryID, &c.LastUpdate)
	if err != nil {
		translated := translateDBError(err, r.logger)
		r.logger.ErrorContext(ctx, "Failed to insert city", "city", name, "country_id", countryID, slog.Any("error", err))
		return nil, fmt.Errorf("failed to insert city: %w", translated)
	}

	r.logger.InfoContext(ctx, "City inserted", "city_id", c.CityID)
	return &c, nil
}

func (r *GeoRepository) CountStoresPerCountry(ctx context.Context) ([]geo.StoreCountryCount, error) {
	query := `
        SELECT count(*) AS count, ct.country
        FROM store st
        JOIN address ad ON st.address_id = ad.address_id
        JOIN city ci ON ad.city_id = ci.city_id
        JOIN country ct ON ct.country_id = ci.country_id
        GROUP BY ct.country_id, ct.country`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.logger.ErrorContext(ctx, "Failed to query stores per country", slog.Any("error", err))
		return nil, fmt.Errorf(errMsgFormat, apperrors.ErrDatabase, err)
	}
	defer rows.Close()

	counts := make([]geo.StoreCountryCount, 0)
	for rows.Next() {
		var c geo.StoreCountryCount
		if err := rows.Scan(&c.Count, &c.Country); err != nil {
			r.logger.ErrorContext(ctx, "Failed to scan store country row", slog.Any("error", err))
			return nil, fmt.Errorf(errMsgFormat, apperrors.ErrDatabase, err)
		}
		counts = append(counts, c)
	}
	if err = rows.Err(); err != nil {
		r.logger.ErrorContext(ctx, "Error iterating store country rows", slog.Any("error", err))
		return nil, fmt.Errorf(errMsgFormat, apperrors.ErrDatabase, err)
	}

	return counts, nil
}
