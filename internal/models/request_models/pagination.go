package request_models

// Pagination mirrors the skip/limit query string of the list endpoints.
type Pagination struct {
	Skip  int `form:"skip,default=0" binding:"min=0"`
	Limit int `form:"limit,default=10" binding:"min=0"`
}
