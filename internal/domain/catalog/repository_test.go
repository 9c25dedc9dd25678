package catalog

import (
	"context"

	"github.com/stretchr/testify/mock"
)

type MockCatalogRepository struct {
	mock.Mock
}

func (_m *MockCatalogRepository) ListActors(ctx context.Context) ([]Actor, error) {
	ret := _m.Called(ctx)

	var r0 []Actor
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]Actor)
	}

	return r0, ret.Error(1)
}

func (_m *MockCatalogRepository) FindActorByID(ctx context.Context, actorID int32) (*Actor, error) {
	ret := _m.Called(ctx, actorID)

	var r0 *Actor
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*Actor)
	}

	return r0, ret.Error(1)
}

func (_m *MockCatalogRepository) FindActorByName(ctx context.Context, firstName, lastName string) (*Actor, error) {
	ret := _m.Called(ctx, firstName, lastName)

	var r0 *Actor
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*Actor)
	}

	return r0, ret.Error(1)
}

func (_m *MockCatalogRepository) ActorFilmsInCategory(ctx context.Context, actorID, categoryID int32) (*ActorCategoryFilms, error) {
	ret := _m.Called(ctx, actorID, categoryID)

	var r0 *ActorCategoryFilms
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*ActorCategoryFilms)
	}

	return r0, ret.Error(1)
}

func (_m *MockCatalogRepository) CountFilmsPerCategory(ctx context.Context) ([]CategoryFilmCount, error) {
	ret := _m.Called(ctx)

	var r0 []CategoryFilmCount
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]CategoryFilmCount)
	}

	return r0, ret.Error(1)
}

func (_m *MockCatalogRepository) TopRentedFilms(ctx context.Context, limit int) ([]RentalCount, error) {
	ret := _m.Called(ctx, limit)

	var r0 []RentalCount
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]RentalCount)
	}

	return r0, ret.Error(1)
}
