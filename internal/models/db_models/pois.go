package db_models

// POI is a point of interest. Flora and Fauna point at it through PoiID;
// there is no database constraint so deleting a POI leaves them orphaned.
type POI struct {
	BaseModel
	Nombre      string `gorm:"index;not null"`
	Descripcion string `gorm:"not null"`
	FotoURL     string `gorm:"column:foto_url;not null"`
	Tipo        string `gorm:"not null"`
	Longitud    string `gorm:"not null"`
	Latitud     string `gorm:"not null"`
}

func (POI) TableName() string {
	return "puntos_de_interes"
}
