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

type FloraServiceInterface interface {
	ListFlora(ctx context.Context, skip, limit int) ([]response_models.Flora, error)
	GetFloraById(ctx context.Context, id int64) (response_models.Flora, error)
	CreateFlora(ctx context.Context, req request_models.CreateFloraRequest) (response_models.Flora, error)
	DeleteFlora(ctx context.Context, id int64) error
}

type FloraService struct {
	db              *gorm.DB
	floraRepository repositories.FloraRepository
	poiRepository   repositories.POIRepository
	log             *logger.Logger
	metrics         *metrics.Manager
}

func NewFloraService(db *gorm.DB, floraRepository repositories.FloraRepository, poiRepository repositories.POIRepository, log *logger.Logger, m *metrics.Manager) FloraServiceInterface {
	return &FloraService{
		db:              db,
		floraRepository: floraRepository,
		poiRepository:   poiRepository,
		log:             log.With("service", "FloraService"),
		metrics:         m,
	}
}

func (f *FloraService) ListFlora(ctx context.Context, skip, limit int) ([]response_models.Flora, error) {
	if skip < 0 || limit < 0 {
		return nil, utils.ErrInvalidPagination
	}

	var flora []db_models.Flora
	err := infra.WithSession(ctx, f.db, func(session *gorm.DB) error {
		var err error
		flora, err = f.floraRepository.List(ctx, session, skip, limit)
		return err
	})
	if err != nil {
		f.log.Error("Error listing flora", "error", err)
		return nil, storageError(err)
	}

	out := make([]response_models.Flora, 0, len(flora))
	for _, item := range flora {
		out = append(out, toFloraResponse(item))
	}
	return out, nil
}

func (f *FloraService) GetFloraById(ctx context.Context, id int64) (response_models.Flora, error) {
	var flora *db_models.Flora
	err := infra.WithSession(ctx, f.db, func(session *gorm.DB) error {
		var err error
		flora, err = f.floraRepository.GetByID(ctx, session, id)
		return err
	})
	if err != nil {
		f.log.Error("Error fetching flora", "id", id, "error", err)
		return response_models.Flora{}, storageError(err)
	}

	if flora == nil {
		return response_models.Flora{}, utils.ErrFloraNotFound
	}
	return toFloraResponse(*flora), nil
}

// CreateFlora checks the referenced POI and inserts in the same session, so a
// missing POI never leaves a flora row behind.
func (f *FloraService) CreateFlora(ctx context.Context, req request_models.CreateFloraRequest) (response_models.Flora, error) {
	newFlora := &db_models.Flora{
		NombreCientifico: req.NombreCientifico,
		NombreComun:      req.NombreComun,
		Familia:          req.Familia,
		FotoURL:          req.FotoURL,
		PoiID:            req.PoiID,
	}

	err := infra.WithSession(ctx, f.db, func(session *gorm.DB) error {
		if err := ensurePOIExists(ctx, session, f.poiRepository, req.PoiID); err != nil {
			return err
		}
		return f.floraRepository.Create(ctx, session, newFlora)
	})
	if err != nil {
		if isReferenceError(err) {
			f.log.Warn("Rejected flora for unknown POI", "poi_id", req.PoiID)
			return response_models.Flora{}, err
		}
		f.log.Error("Error creating flora", "poi_id", req.PoiID, "error", err)
		return response_models.Flora{}, storageError(err)
	}

	f.metrics.IncEntityCreated("flora")
	return toFloraResponse(*newFlora), nil
}

func (f *FloraService) DeleteFlora(ctx context.Context, id int64) error {
	err := infra.WithSession(ctx, f.db, func(session *gorm.DB) error {
		return f.floraRepository.Delete(ctx, session, id)
	})
	if err != nil {
		f.log.Error("Error deleting flora", "id", id, "error", err)
		return storageError(err)
	}

	f.metrics.IncEntityDeleted("flora")
	return nil
}

func toFloraResponse(flora db_models.Flora) response_models.Flora {
	return response_models.Flora{
		ID:               flora.ID,
		NombreCientifico: flora.NombreCientifico,
		NombreComun:      flora.NombreComun,
		Familia:          flora.Familia,
		FotoURL:          flora.FotoURL,
		PoiID:            flora.PoiID,
	}
}

func ensurePOIExists(ctx context.Context, session *gorm.DB, poiRepository repositories.POIRepository, poiID int64) error {
	poi, err := poiRepository.GetByID(ctx, session, poiID)
	if err != nil {
		return err
	}
	if poi == nil {
		return &utils.ReferenceNotFoundError{Entity: "POI", ID: poiID}
	}
	return nil
}
