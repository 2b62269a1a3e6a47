package services

import (
	"context"

	"gorm.io/gorm"

	"naturapi/internal/infra"
	"naturapi/internal/models/db_models"
	"naturapi/internal/models/request_models"
	"naturapi/internal/models/response_models"
	"naturapi/internal/repositories"
	"naturapi/pkg/logger"
	"naturapi/pkg/metrics"
	"naturapi/pkg/utils"
)

type FaunaServiceInterface interface {
	ListFauna(ctx context.Context, skip, limit int) ([]response_models.Fauna, error)
	GetFaunaById(ctx context.Context, id int64) (response_models.Fauna, error)
	CreateFauna(ctx context.Context, req request_models.CreateFaunaRequest) (response_models.Fauna, error)
	DeleteFauna(ctx context.Context, id int64) error
}

type FaunaService struct {
	db              *gorm.DB
	faunaRepository repositories.FaunaRepository
	poiRepository   repositories.POIRepository
	log             *logger.Logger
	metrics         *metrics.Manager
}

func NewFaunaService(db *gorm.DB, faunaRepository repositories.FaunaRepository, poiRepository repositories.POIRepository, log *logger.Logger, m *metrics.Manager) FaunaServiceInterface {
	return &FaunaService{
		db:              db,
		faunaRepository: faunaRepository,
		poiRepository:   poiRepository,
		log:             log.With("service", "FaunaService"),
		metrics:         m,
	}
}

func (f *FaunaService) ListFauna(ctx context.Context, skip, limit int) ([]response_models.Fauna, error) {
	if skip < 0 || limit < 0 {
		return nil, utils.ErrInvalidPagination
	}

	var fauna []db_models.Fauna
	err := infra.WithSession(ctx, f.db, func(session *gorm.DB) error {
		var err error
		fauna, err = f.faunaRepository.List(ctx, session, skip, limit)
		return err
	})
	if err != nil {
		f.log.Error("Error listing fauna", "error", err)
		return nil, storageError(err)
	}

	out := make([]response_models.Fauna, 0, len(fauna))
	for _, item := range fauna {
		out = append(out, toFaunaResponse(item))
	}
	return out, nil
}

func (f *FaunaService) GetFaunaById(ctx context.Context, id int64) (response_models.Fauna, error) {
	var fauna *db_models.Fauna
	err := infra.WithSession(ctx, f.db, func(session *gorm.DB) error {
		var err error
		fauna, err = f.faunaRepository.GetByID(ctx, session, id)
		return err
	})
	if err != nil {
		f.log.Error("Error fetching fauna", "id", id, "error", err)
		return response_models.Fauna{}, storageError(err)
	}

	if fauna == nil {
		return response_models.Fauna{}, utils.ErrFaunaNotFound
	}
	return toFaunaResponse(*fauna), nil
}

// CreateFauna applies the same POI check as CreateFlora.
func (f *FaunaService) CreateFauna(ctx context.Context, req request_models.CreateFaunaRequest) (response_models.Fauna, error) {
	newFauna := &db_models.Fauna{
		NombreCientifico: req.NombreCientifico,
		NombreComun:      req.NombreComun,
		Especie:          req.Especie,
		Habitat:          req.Habitat,
		FotoURL:          req.FotoURL,
		PoiID:            req.PoiID,
	}

	err := infra.WithSession(ctx, f.db, func(session *gorm.DB) error {
		if err := ensurePOIExists(ctx, session, f.poiRepository, req.PoiID); err != nil {
			return err
		}
		return f.faunaRepository.Create(ctx, session, newFauna)
	})
	if err != nil {
		if isReferenceError(err) {
			f.log.Warn("Rejected fauna for unknown POI", "poi_id", req.PoiID)
			return response_models.Fauna{}, err
		}
		f.log.Error("Error creating fauna", "poi_id", req.PoiID, "error", err)
		return response_models.Fauna{}, storageError(err)
	}

	f.metrics.IncEntityCreated("fauna")
	return toFaunaResponse(*newFauna), nil
}

func (f *FaunaService) DeleteFauna(ctx context.Context, id int64) error {
	err := infra.WithSession(ctx, f.db, func(session *gorm.DB) error {
		return f.faunaRepository.Delete(ctx, session, id)
	})
	if err != nil {
		f.log.Error("Error deleting fauna", "id", id, "error", err)
		return storageError(err)
	}

	f.metrics.IncEntityDeleted("fauna")
	return nil
}

func toFaunaResponse(fauna db_models.Fauna) response_models.Fauna {
	return response_models.Fauna{
		ID:               fauna.ID,
		NombreCientifico: fauna.NombreCientifico,
		NombreComun:      fauna.NombreComun,
		Especie:          fauna.Especie,
		Habitat:          fauna.Habitat,
		FotoURL:          fauna.FotoURL,
		PoiID:            fauna.PoiID,
	}
}
