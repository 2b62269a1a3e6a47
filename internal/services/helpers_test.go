package services

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"naturapi/internal/infra"
	"naturapi/internal/models/request_models"
	"naturapi/internal/repositories"
	"naturapi/pkg/logger"
	"naturapi/pkg/metrics"
)

type testServices struct {
	db    *gorm.DB
	poi   POIServiceInterface
	flora FloraServiceInterface
	fauna FaunaServiceInterface
}

func newTestServices(t *testing.T) testServices {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, infra.Migrate(db))

	log := logger.NewNop()
	m := metrics.NewManager()
	poiRepo := repositories.NewPOIRepository()

	return testServices{
		db:    db,
		poi:   NewPOIService(db, poiRepo, log, m),
		flora: NewFloraService(db, repositories.NewFloraRepository(), poiRepo, log, m),
		fauna: NewFaunaService(db, repositories.NewFaunaRepository(), poiRepo, log, m),
	}
}

func samplePOI() request_models.CreatePoiRequest {
	return request_models.CreatePoiRequest{
		Nombre:      "Bosque de Pinos",
		Descripcion: "Bosque templado",
		FotoURL:     "http://example.com/bosque.jpg",
		Tipo:        "Natural",
		Longitud:    "-99.1234",
		Latitud:     "19.4321",
	}
}

func sampleFlora(poiID int64) request_models.CreateFloraRequest {
	return request_models.CreateFloraRequest{
		NombreCientifico: "Dahlia coccinea",
		NombreComun:      "Dalia",
		Familia:          "Asteraceae",
		FotoURL:          "http://example.com/dalia.jpg",
		PoiID:            poiID,
	}
}

func sampleFauna(poiID int64) request_models.CreateFaunaRequest {
	return request_models.CreateFaunaRequest{
		NombreCientifico: "Canis latrans",
		NombreComun:      "Coyote",
		Especie:          "C. latrans",
		Habitat:          "Bosque",
		FotoURL:          "http://example.com/coyote.jpg",
		PoiID:            poiID,
	}
}
