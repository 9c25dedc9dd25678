package geo_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"dvdstore/internal/domain/geo"
	"dvdstore/internal/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func setupTest() (*geo.MockGeoRepository, geo.GeoService) {
	mockRepo := new(geo.MockGeoRepository)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	service := geo.NewGeoService(mockRepo, logger)
	return mockRepo, service
}

func TestGeoService_AddCity(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		mockRepo, service := setupTest()
		created := &geo.City{CityID: 601, City: "Springfield", CountryID: 103}

		mockRepo.On("AddCity", ctx, "Springfield", int32(103)).Return(created, nil).Once()

		city, err := service.AddCity(ctx, "  Springfield ", 103)
		require.NoError(t, err)
		assert.Equal(t, created, city)
		mockRepo.AssertExpectations(t)
	})

	t.Run("EmptyName", func(t *testing.T) {
		mockRepo, service := setupTest()

		city, err := service.AddCity(ctx, "   ", 103)
		require.Error(t, err)
		assert.Nil(t, city)
		assert.ErrorIs(t, err, apperrors.ErrValidation)
		mockRepo.AssertNotCalled(t, "AddCity", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("InvalidCountry", func(t *testing.T) {
		mockRepo, service := setupTest()

		city, err := service.AddCity(ctx, "Springfield", 0)
		require.Error(t, err)
		assert.Nil(t, city)
		assert.ErrorIs(t, err, apperrors.ErrValidation)
		mockRepo.AssertNotCalled(t, "AddCity", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestGeoService_ListCitiesByCountry(t *testing.T) {
	ctx := context.Background()
	mockRepo, service := setupTest()

	cities := []geo.City{{CityID: 1, City: "A Coruna", CountryID: 87}}
	mockRepo.On("FindCitiesByCountry", ctx, int32(87)).Return(cities, nil).Once()

	got, err := service.ListCitiesByCountry(ctx, 87)
	require.NoError(t, err)
	assert.Equal(t, cities, got)
	mockRepo.AssertExpectations(t)
}

func TestGeoService_CountStoresPerCountryPropagatesError(t *testing.T) {
	ctx := context.Background()
	mockRepo, service := setupTest()

	repoErr := errors.New("connection lost")
	mockRepo.On("CountStoresPerCountry", ctx).Return(nil, repoErr).Once()

	counts, err := service.CountStoresPerCountry(ctx)
	require.Error(t, err)
	assert.Nil(t, counts)
	assert.ErrorIs(t, err, repoErr)
}
