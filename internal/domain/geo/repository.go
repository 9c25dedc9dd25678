package geo

import "context"

type GeoRepository interface {
	ListCities(ctx context.Context) ([]City, error)

	FindCitiesByCountry(ctx context.Context, countryID int32) ([]City, error)

	AddCity(ctx context.Context, name string, countryID int32) (*City, error)

	CountStoresPerCountry(ctx context.Context) ([]StoreCountryCount, error)
}
