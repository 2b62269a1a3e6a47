package request_models

type CreatePoiRequest struct {
	Nombre      string `json:"nombre" binding:"required"`
	Descripcion string `json:"descripcion" binding:"required"`
	FotoURL     string `json:"foto_url" binding:"required"`
	Tipo        string `json:"tipo" binding:"required"`
	Longitud    string `json:"longitud" binding:"required"`
	Latitud     string `json:"latitud" binding:"required"`
}
