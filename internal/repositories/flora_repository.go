package repositories

import "naturapi/internal/models/db_models"

type FloraRepository = EntityRepository[db_models.Flora]

func NewFloraRepository() FloraRepository {
	return entityRepository[db_models.Flora]{}
}
