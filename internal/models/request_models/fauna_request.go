package request_models

type CreateFaunaRequest struct {
	NombreCientifico string `json:"nombre_cientifico" binding:"required"`
	NombreComun      string `json:"nombre_comun" binding:"required"`
	Especie          string `json:"especie" binding:"required"`
	Habitat          string `json:"habitat" binding:"required"`
	FotoURL          string `json:"foto_url" binding:"required"`
	PoiID            int64  `json:"poi_id" binding:"required"`
}
