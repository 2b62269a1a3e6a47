package repositories

import "naturapi/internal/models/db_models"

type FaunaRepository = EntityRepository[db_models.Fauna]

func NewFaunaRepository() FaunaRepository {
	return entityRepository[db_models.Fauna]{}
}
