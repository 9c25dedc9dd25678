package catalog

import (
	"context"
	"errors"
)

var ErrActorNotFound = errors.New("actor not found")

type CatalogRepository interface {
	ListActors(ctx context.Context) ([]Actor, error)

	FindActorByID(ctx context.Context, actorID int32) (*Actor, error)

	FindActorByName(ctx context.Context, firstName, lastName string) (*Actor, error)

	ActorFilmsInCategory(ctx context.Context, actorID, categoryID int32) (*ActorCategoryFilms, error)

	CountFilmsPerCategory(ctx context.Context) ([]CategoryFilmCount, error)

	TopRentedFilms(ctx context.Context, limit int) ([]RentalCount, error)
}
