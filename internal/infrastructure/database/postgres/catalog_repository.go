package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"dvdstore/internal/domain/catalog"
	"dvdstore/internal/infrastructure/monitoring"
	"dvdstore/internal/pkg/apperrors"

	"github.com/jackc/pgx/v5"
)

type CatalogRepository struct {
	db     DBPool
	logger *slog.Logger
}

var _ catalog.CatalogRepository = (*CatalogRepository)(nil)

func NewCatalogRepository(db DBPool, logger *slog.Logger) *CatalogRepository {
	return &CatalogRepository{db: db, logger: logger.With("component", "CatalogRepository")}
}

func (r *CatalogRepository) ListActors(ctx context.Context) ([]catalog.Actor, error) {
	query := `SELECT actor_id, first_name, last_name, last_update FROM actor`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.logger.ErrorContext(ctx, "Failed to query actors", slog.Any("error", err))
		return nil, fmt.Errorf(errMsgFormat, apperrors.ErrDatabase, err)
	}
	defer rows.Close()

	actors := make([]catalog.Actor, 0)
	for rows.Next() {
		var a catalog.Actor
		if err := rows.Scan(&a.ActorID, &a.FirstName, &a.LastName, &a.LastUpdate); err != nil {
			r.logger.ErrorContext(ctx, "Failed to scan actor row", slog.Any("error", err))
			return nil, fmt.Errorf(errMsgFormat, apperrors.ErrDatabase, err)
		}
		actors = append(actors, a)
	}
	if err = rows.Err(); err != nil {
		r.logger.ErrorContext(ctx, "Error iterating actor rows", slog.Any("error", err))
		return nil, fmt.Errorf(errMsgFormat, apperrors.ErrDatabase, err)
	}

	return actors, nil
}

func (r *CatalogRepository) FindActorByID(ctx context.Context, actorID int32) (*catalog.Actor, error) {
	query := `SELECT actor_id, first_name, last_name, last_update FROM actor WHERE actor_id = $1`
	status := "success"
	startTime := time.Now()

	var a catalog.Actor
	err := r.db.QueryRow(ctx, query, actorID).Scan(&a.ActorID, &a.FirstName, &a.LastName, &a.LastUpdate)

	if err != nil {
		status = "error"
	}
	monitoring.RecordDBQuery("FindActorByID", status, time.Since(startTime))

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			r.logger.WarnContext(ctx, "Actor not found", "actor_id", actorID)
			return nil, apperrors.ErrNotFound
		}
		r.logger.ErrorContext(ctx, "Failed to get actor by ID", "actor_id", actorID, slog.Any("error", err))
		return nil, fmt.Errorf(errMsgFormat, apperrors.ErrDatabase, err)
	}
	return &a, nil
}

func (r *CatalogRepository) FindActorByName(ctx context.Context, firstName, lastName string) (*catalog.Actor, error) {
	query := `
        SELECT actor_id, first_name, last_name, last_update
        FROM actor
        WHERE first_name = $1
        AND last_name = $2`

	var a catalog.Actor
	err := r.db.QueryRow(ctx, query, firstName, lastName).Scan(&a.ActorID, &a.FirstName, &a.LastName, &a.LastUpdate)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			r.logger.WarnContext(ctx, "Actor not found by name", "first_name", firstName, "last_name", lastName)
			return nil, apperrors.ErrNotFound
		}
		r.logger.ErrorContext(ctx, "Failed to query actor by name", slog.Any("error", err))
		return nil, fmt.Errorf(errMsgFormat, apperrors.ErrDatabase, err)
	}
	return &a, nil
}

func (r *CatalogRepository) ActorFilmsInCategory(ctx context.Context, actorID, categoryID int32) (*catalog.ActorCategoryFilms, error) {
	query := `SELECT * FROM get_actor_film_in_category($1, $2)`

	var films catalog.ActorCategoryFilms
	err := r.db.QueryRow(ctx, query, actorID, categoryID).Scan(&films.FirstName, &films.LastName, &films.Titles)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			r.logger.WarnContext(ctx, "No films found for actor in category", "actor_id", actorID, "category_id", categoryID)
			return nil, apperrors.ErrNotFound
		}
		r.logger.ErrorContext(ctx, "Failed to call get_actor_film_in_category", slog.Any("error", err))
		return nil, fmt.Errorf(errMsgFormat, apperrors.ErrDatabase, err)
	}
	return &films, nil
}

func (r *CatalogRepository) CountFilmsPerCategory(ctx context.Context) ([]catalog.CategoryFilmCount, error) {
	query := `
        SELECT t1.name AS category_name, count(*)
        FROM category t1
        JOIN film_category t2
            ON t1.category_id = t2.category_id
        GROUP BY category_name`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.logger.ErrorContext(ctx, "Failed to query film counts per category", slog.Any("error", err))
		return nil, fmt.Errorf(errMsgFormat, apperrors.ErrDatabase, err)
	}
	defer rows.Close()

	counts := make([]catalog.CategoryFilmCount, 0)
	for rows.Next() {
		var c catalog.CategoryFilmCount
		if err := rows.Scan(&c.CategoryName, &c.Count); err != nil {
			r.logger.ErrorContext(ctx, "Failed to scan category count row", slog.Any("error", err))
			return nil, fmt.Errorf(errMsgFormat, apperrors.ErrDatabase, err)
		}
		counts = append(counts, c)
	}
	if err = rows.Err(); err != nil {
		r.logger.ErrorContext(ctx, "Error iterating category count rows", slog.Any("error", err))
		return nil, fmt.Errorf(errMsgFormat, apperrors.ErrDatabase, err)
	}

	return counts, nil
}

func (r *CatalogRepository) TopRentedFilms(ctx context.Context, limit int) ([]catalog.RentalCount, error) {
	query := `
        SELECT t3.title, count(*)
        FROM rental t1
        JOIN inventory t2
            ON t1.inventory_id = t2.inventory_id
        JOIN film t3
            ON t2.film_id = t3.film_id
        GROUP BY t3.title
        ORDER BY count(*) DESC
        LIMIT $1`

	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		r.logger.ErrorContext(ctx, "Failed to query top rented films", slog.Any("error", err))
		return nil, fmt.Errorf(errMsgFormat, apperrors.ErrDatabase, err)
	}
	defer rows.Close()

	top := make([]catalog.RentalCount, 0, limit)
	for rows.Next() {
		var c catalog.RentalCount
		if err := rows.Scan(&c.Title, &c.Count); err != nil {
			r.logger.ErrorContext(ctx, "Failed to scan rental count row", slog.Any("error", err))
			return nil, fmt.Errorf(errMsgFormat, apperrors.ErrDatabase, err)
		}
		top = append(top, c)
	}
	if err = rows.Err(); err != nil {
		r.logger.ErrorContext(ctx, "Error iterating rental count rows", slog.Any("error", err))
		return nil, fmt.Errorf(errMsgFormat, apperrors.ErrDatabase, err)
	}

	return top, nil
}
