package response_models

type Fauna struct {
	ID               int64  `json:"id"`
	NombreCientifico string `json:"nombre_cientifico"`
	NombreComun      string `json:"nombre_comun"`
	Especie          string `json:"especie"`
	Habitat          string `json:"habitat"`
	FotoURL          string `json:"foto_url"`
	PoiID            int64  `json:"poi_id"`
}
