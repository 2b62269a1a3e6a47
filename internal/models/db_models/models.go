package db_models

// All lists the models migrated at startup.
func All() []interface{} {
	return []interface{}{
		&POI{},
		&Flora{},
		&Fauna{},
	}
}
