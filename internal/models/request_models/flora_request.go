package request_models

type CreateFloraRequest struct {
	NombreCientifico string `json:"nombre_cientifico" binding:"required"`
	NombreComun      string `json:"nombre_comun" binding:"required"`
	Familia          string `json:"familia" binding:"required"`
	FotoURL          string `json:"foto_url" binding:"required"`
	PoiID            int64  `json:"poi_id" binding:"required"`
}
