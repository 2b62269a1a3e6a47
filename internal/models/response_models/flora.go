package response_models

type Flora struct {
	ID               int64  `json:"id"`
	NombreCientifico string `json:"nombre_cientifico"`
	NombreComun      string `json:"nombre_comun"`
	Familia          string `json:"familia"`
	FotoURL          string `json:"foto_url"`
	PoiID            int64  `json:"poi_id"`
}
