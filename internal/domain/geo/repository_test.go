package geo

import (
	"context"

	"github.com/stretchr/testify/mock"
)

type MockGeoRepository struct {
	mock.Mock
}

func (_m *MockGeoRepository) ListCities(ctx context.Context) ([]City, error) {
	ret := _m.Called(ctx)

	var r0 []City
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]City)
	}

	return r0, ret.Error(1)
}

func (_m *MockGeoRepository) FindCitiesByCountry(ctx context.Context, countryID int32) ([]City, error) {
	ret := _m.Called(ctx, countryID)

	var r0 []City
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]City)
	}

	return r0, ret.Error(1)
}

func (_m *MockGeoRepository) AddCity(ctx context.Context, name string, countryID int32) (*City, error) {
	ret := _m.Called(ctx, name, countryID)

	var r0 *City
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*City)
	}

	return r0, ret.Error(1)
}

func (_m *MockGeoRepository) CountStoresPerCountry(ctx context.Context) ([]StoreCountryCount, error) {
	ret := _m.Called(ctx)

	var r0 []StoreCountryCount
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]StoreCountryCount)
	}

	return r0, ret.Error(1)
}
