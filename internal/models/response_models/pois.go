package response_models

type POI struct {
	ID          int64  `json:"id"`
	Nombre      string `json:"nombre"`
	Descripcion string `json:"descripcion"`
	FotoURL     string `json:"foto_url"`
	Tipo        string `json:"tipo"`
	Longitud    string `json:"longitud"`
	Latitud     string `json:"latitud"`
}
