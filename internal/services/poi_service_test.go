package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"naturapi/pkg/utils"
)

func TestCreatePoiRoundTrip(t *testing.T) {
	s := newTestServices(t)
	ctx := context.Background()
	req := samplePOI()

	created, err := s.poi.CreatePoi(ctx, req)
	require.NoError(t, err)
	assert.Greater(t, created.ID, int64(0))

	got, err := s.poi.GetPOIById(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, got)
	assert.Equal(t, req.Nombre, got.Nombre)
	assert.Equal(t, req.Descripcion, got.Descripcion)
	assert.Equal(t, req.FotoURL, got.FotoURL)
	assert.Equal(t, req.Tipo, got.Tipo)
	assert.Equal(t, req.Longitud, got.Longitud)
	assert.Equal(t, req.Latitud, got.Latitud)
}

func TestGetPOIByIdNotFound(t *testing.T) {
	s := newTestServices(t)

	_, err := s.poi.GetPOIById(context.Background(), 12345)

	assert.ErrorIs(t, err, utils.ErrPOINotFound)
}

func TestDeletePoiIsIdempotent(t *testing.T) {
	s := newTestServices(t)
	ctx := context.Background()
	created, err := s.poi.CreatePoi(ctx, samplePOI())
	require.NoError(t, err)

	for _, id := range []int64{created.ID, created.ID, 999} {
		require.NoError(t, s.poi.DeletePoi(ctx, id))
		_, err := s.poi.GetPOIById(ctx, id)
		assert.ErrorIs(t, err, utils.ErrPOINotFound)
	}
}

func TestListPoisRespectsLimit(t *testing.T) {
	s := newTestServices(t)
	ctx := context.Background()
	for i := 0; i < 4; i++ {
		_, err := s.poi.CreatePoi(ctx, samplePOI())
		require.NoError(t, err)
	}

	for limit := 0; limit <= 6; limit++ {
		pois, err := s.poi.ListPois(ctx, 0, limit)
		require.NoError(t, err)
		assert.LessOrEqual(t, len(pois), limit)
	}

	empty, err := s.poi.ListPois(ctx, 100, 10)
	require.NoError(t, err)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)
}

func TestListPoisRejectsNegativePagination(t *testing.T) {
	s := newTestServices(t)

	_, err := s.poi.ListPois(context.Background(), -1, 10)
	assert.ErrorIs(t, err, utils.ErrInvalidPagination)

	_, err = s.poi.ListPois(context.Background(), 0, -5)
	assert.ErrorIs(t, err, utils.ErrInvalidPagination)
}

func TestPoiServiceReportsConnectionErrors(t *testing.T) {
	s := newTestServices(t)
	sqlDB, err := s.db.DB()
	require.NoError(t, err)
	require.NoError(t, sqlDB.Close())

	_, err = s.poi.GetPOIById(context.Background(), 1)

	assert.ErrorIs(t, err, utils.ErrDatabaseConnection)
}
