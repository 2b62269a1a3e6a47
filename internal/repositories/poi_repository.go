package repositories

import "naturapi/internal/models/db_models"

type POIRepository = EntityRepository[db_models.POI]

func NewPOIRepository() POIRepository {
	return entityRepository[db_models.POI]{}
}
