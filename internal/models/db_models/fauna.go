package db_models

type Fauna struct {
	BaseModel
	NombreCientifico string `gorm:"index;not null"`
	NombreComun      string `gorm:"not null"`
	Especie          string `gorm:"index;not null"`
	Habitat          string `gorm:"not null"`
	FotoURL          string `gorm:"column:foto_url;not null"`
	PoiID            int64  `gorm:"column:poi_id;index;not null"`
}

func (Fauna) TableName() string {
	return "fauna"
}
