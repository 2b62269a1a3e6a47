package db_models

type Flora struct {
	BaseModel
	NombreCientifico string `gorm:"index;not null"`
	NombreComun      string `gorm:"index;not null"`
	Familia          string `gorm:"not null"`
	FotoURL          string `gorm:"column:foto_url;not null"`
	PoiID            int64  `gorm:"column:poi_id;index;not null"`
}

func (Flora) TableName() string {
	return "flora"
}
