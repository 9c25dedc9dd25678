package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"regexp"
	"testing"
	"time"

	"dvdstore/internal/domain/catalog"
	"dvdstore/internal/pkg/apperrors"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupCatalogRepo(t *testing.T) (context.Context, *CatalogRepository, pgxmock.PgxPoolIface) {
	t.Helper()
	mockPool, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("failed to open a stub database connection: %v", err)
	}

	ctx := context.Background()
	repo := NewCatalogRepository(mockPool, testLogger)

	return ctx, repo, mockPool
}

func TestListActors(t *testing.T) {
	ctx, repo, mockPool := setupCatalogRepo(t)
	defer mockPool.Close()

	lastUpdate := time.Date(2025, 2, 15, 9, 34, 33, 0, time.UTC)
	mockPool.ExpectQuery(regexp.QuoteMeta("SELECT actor_id, first_name, last_name, last_update FROM actor")).
		WillReturnRows(pgxmock.NewRows([]string{"actor_id", "first_name", "last_name", "last_update"}).
			AddRow(int32(1), "Penelope", "Guiness", lastUpdate).
			AddRow(int32(2), "Nick", "Wahlberg", lastUpdate))

	actors, err := repo.ListActors(ctx)
	require.NoError(t, err)
	require.Len(t, actors, 2)
	assert.Equal(t, "Penelope", actors[0].FirstName)
	assert.NoError(t, mockPool.ExpectationsWereMet(), pgxmockExpectationsNotMetMsg)
}

func TestFindActorByID(t *testing.T) {
	ctx, repo, mockPool := setupCatalogRepo(t)
	defer mockPool.Close()

	lastUpdate := time.Date(2025, 2, 15, 9, 34, 33, 0, time.UTC)
	mockPool.ExpectQuery(regexp.QuoteMeta("FROM actor WHERE actor_id = $1")).WithArgs(int32(1)).
		WillReturnRows(pgxmock.NewRows([]string{"actor_id", "first_name", "last_name", "last_update"}).
			AddRow(int32(1), "Penelope", "Guiness", lastUpdate))

	actor, err := repo.FindActorByID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, int32(1), actor.ActorID)
	assert.Equal(t, "Guiness", actor.LastName)
	assert.NoError(t, mockPool.ExpectationsWereMet(), pgxmockExpectationsNotMetMsg)
}

func TestFindActorByIDNotFound(t *testing.T) {
	ctx, repo, mockPool := setupCatalogRepo(t)
	defer mockPool.Close()

	mockPool.ExpectQuery(regexp.QuoteMeta("FROM actor WHERE actor_id = $1")).WithArgs(int32(9999)).
		WillReturnError(pgx.ErrNoRows)

	actor, err := repo.FindActorByID(ctx, 9999)
	require.Error(t, err)
	assert.Nil(t, actor)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	assert.NoError(t, mockPool.ExpectationsWereMet(), pgxmockExpectationsNotMetMsg)
}

func TestFindActorByName(t *testing.T) {
	ctx, repo, mockPool := setupCatalogRepo(t)
	defer mockPool.Close()

	lastUpdate := time.Date(2025, 2, 15, 9, 34, 33, 0, time.UTC)
	mockPool.ExpectQuery(regexp.QuoteMeta("WHERE first_name = $1")).WithArgs("Nick", "Wahlberg").
		WillReturnRows(pgxmock.NewRows([]string{"actor_id", "first_name", "last_name", "last_update"}).
			AddRow(int32(2), "Nick", "Wahlberg", lastUpdate))

	actor, err := repo.FindActorByName(ctx, "Nick", "Wahlberg")
	require.NoError(t, err)
	assert.Equal(t, int32(2), actor.ActorID)
	assert.NoError(t, mockPool.ExpectationsWereMet(), pgxmockExpectationsNotMetMsg)
}

func TestActorFilmsInCategory(t *testing.T) {
	ctx, repo, mockPool := setupCatalogRepo(t)
	defer mockPool.Close()

	titles := json.RawMessage(`["ACADEMY DINOSAUR", "ANACONDA CONFESSIONS"]`)
	mockPool.ExpectQuery(regexp.QuoteMeta("SELECT * FROM get_actor_film_in_category($1, $2)")).
		WithArgs(int32(1), int32(6)).
		WillReturnRows(pgxmock.NewRows([]string{"first_name", "last_name", "titles"}).
			AddRow("Penelope", "Guiness", titles))

	films, err := repo.ActorFilmsInCategory(ctx, 1, 6)
	require.NoError(t, err)
	assert.Equal(t, "Penelope", films.FirstName)
	assert.JSONEq(t, string(titles), string(films.Titles))
	assert.NoError(t, mockPool.ExpectationsWereMet(), pgxmockExpectationsNotMetMsg)
}

func TestActorFilmsInCategoryNotFound(t *testing.T) {
	ctx, repo, mockPool := setupCatalogRepo(t)
	defer mockPool.Close()

	mockPool.ExpectQuery(regexp.QuoteMeta("get_actor_film_in_category")).
		WithArgs(int32(77), int32(6)).
		WillReturnError(pgx.ErrNoRows)

	films, err := repo.ActorFilmsInCategory(ctx, 77, 6)
	require.Error(t, err)
	assert.Nil(t, films)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	assert.NoError(t, mockPool.ExpectationsWereMet(), pgxmockExpectationsNotMetMsg)
}

func TestCountFilmsPerCategory(t *testing.T) {
	ctx, repo, mockPool := setupCatalogRepo(t)
	defer mockPool.Close()

	mockPool.ExpectQuery(regexp.QuoteMeta("JOIN film_category")).
		WillReturnRows(pgxmock.NewRows([]string{"category_name", "count"}).
			AddRow("Sports", int64(74)).
			AddRow("Sci-Fi", int64(61)))

	counts, err := repo.CountFilmsPerCategory(ctx)
	require.NoError(t, err)
	require.Len(t, counts, 2)
	assert.Equal(t, catalog.CategoryFilmCount{CategoryName: "Sports", Count: 74}, counts[0])
	assert.NoError(t, mockPool.ExpectationsWereMet(), pgxmockExpectationsNotMetMsg)
}

func TestTopRentedFilms(t *testing.T) {
	ctx, repo, mockPool := setupCatalogRepo(t)
	defer mockPool.Close()

	mockPool.ExpectQuery(regexp.QuoteMeta("FROM rental")).WithArgs(3).
		WillReturnRows(pgxmock.NewRows([]string{"title", "count"}).
			AddRow("BUCKET BROTHERHOOD", int64(34)).
			AddRow("ROCKETEER MOTHER", int64(33)).
			AddRow("FORWARD TEMPLE", int64(32)))

	top, err := repo.TopRentedFilms(ctx, 3)
	require.NoError(t, err)
	require.Len(t, top, 3)
	assert.Equal(t, "BUCKET BROTHERHOOD", top[0].Title)
	assert.Equal(t, int64(34), top[0].Count)
	assert.NoError(t, mockPool.ExpectationsWereMet(), pgxmockExpectationsNotMetMsg)
}

func TestTopRentedFilmsQueryError(t *testing.T) {
	ctx, repo, mockPool := setupCatalogRepo(t)
	defer mockPool.Close()

	mockPool.ExpectQuery(regexp.QuoteMeta("FROM rental")).WithArgs(3).
		WillReturnError(errors.New("relation does not exist"))

	top, err := repo.TopRentedFilms(ctx, 3)
	require.Error(t, err)
	assert.Nil(t, top)
	assert.ErrorIs(t, err, apperrors.ErrDatabase)
	assert.NoError(t, mockPool.ExpectationsWereMet(), pgxmockExpectationsNotMetMsg)
}
