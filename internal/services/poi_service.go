package services

import (
	"context"
	"errors"

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

type POIServiceInterface interface {
	ListPois(ctx context.Context, skip, limit int) ([]response_models.POI, error)
	GetPOIById(ctx context.Context, id int64) (response_models.POI, error)
	CreatePoi(ctx context.Context, req request_models.CreatePoiRequest) (response_models.POI, error)
	DeletePoi(ctx context.Context, id int64) error
}

type PoiService struct {
	db            *gorm.DB
	poiRepository repositories.POIRepository
	log           *logger.Logger
	metrics       *metrics.Manager
}

func NewPOIService(db *gorm.DB, poiRepository repositories.POIRepository, log *logger.Logger, m *metrics.Manager) POIServiceInterface {
	return &PoiService{
		db:            db,
		poiRepository: poiRepository,
		log:           log.With("service", "POIService"),
		metrics:       m,
	}
}

func (p *PoiService) ListPois(ctx context.Context, skip, limit int) ([]response_models.POI, error) {
	if skip < 0 || limit < 0 {
		return nil, utils.ErrInvalidPagination
	}

	var pois []db_models.POI
	err := infra.WithSession(ctx, p.db, func(session *gorm.DB) error {
		var err error
		pois, err = p.poiRepository.List(ctx, session, skip, limit)
		return err
	})
	if err != nil {
		p.log.Error("Error listing POIs", "error", err)
		return nil, storageError(err)
	}

	poiResponses := make([]response_models.POI, 0, len(pois))
	for _, poi := range pois {
		poiResponses = append(poiResponses, toPOIResponse(poi))
	}
	return poiResponses, nil
}

func (p *PoiService) GetPOIById(ctx context.Context, id int64) (response_models.POI, error) {
	var poi *db_models.POI
	err := infra.WithSession(ctx, p.db, func(session *gorm.DB) error {
		var err error
		poi, err = p.poiRepository.GetByID(ctx, session, id)
		return err
	})
	if err != nil {
		p.log.Error("Error fetching POI", "id", id, "error", err)
		return response_models.POI{}, storageError(err)
	}

	if poi == nil {
		return response_models.POI{}, utils.ErrPOINotFound
	}

	return toPOIResponse(*poi), nil
}

func (p *PoiService) CreatePoi(ctx context.Context, req request_models.CreatePoiRequest) (response_models.POI, error) {
	newPOI := &db_models.POI{
		Nombre:      req.Nombre,
		Descripcion: req.Descripcion,
		FotoURL:     req.FotoURL,
		Tipo:        req.Tipo,
		Longitud:    req.Longitud,
		Latitud:     req.Latitud,
	}

	err := infra.WithSession(ctx, p.db, func(session *gorm.DB) error {
		return p.poiRepository.Create(ctx, session, newPOI)
	})
	if err != nil {
		p.log.Error("Error creating POI", "error", err)
		return response_models.POI{}, storageError(err)
	}

	p.metrics.IncEntityCreated("poi")
	return toPOIResponse(*newPOI), nil
}

func (p *PoiService) DeletePoi(ctx context.Context, id int64) error {
	err := infra.WithSession(ctx, p.db, func(session *gorm.DB) error {
		return p.poiRepository.Delete(ctx, session, id)
	})
	if err != nil {
		p.log.Error("Error deleting POI", "id", id, "error", err)
		return storageError(err)
	}

	p.metrics.IncEntityDeleted("poi")
	return nil
}

func toPOIResponse(poi db_models.POI) response_models.POI {
	return response_models.POI{
		ID:          poi.ID,
		Nombre:      poi.Nombre,
		Descripcion: poi.Descripcion,
		FotoURL:     poi.FotoURL,
		Tipo:        poi.Tipo,
		Longitud:    poi.Longitud,
		Latitud:     poi.Latitud,
	}
}

// storageError maps infrastructure failures onto the API sentinels while
// letting domain errors raised inside a session pass through untouched.
func storageError(err error) error {
	switch {
	case isReferenceError(err):
		return err
	case errors.Is(err, infra.ErrBeginSession):
		return utils.ErrDatabaseConnection
	default:
		return utils.ErrDatabaseError
	}
}

func isReferenceError(err error) bool {
	var refErr *utils.ReferenceNotFoundError
	return errors.As(err, &refErr)
}
