package response_models

// ImageUpload is always returned with 200; Status is "success" or "error".
type ImageUpload struct {
	Status  string `json:"status"`
	URL     string `json:"url,omitempty"`
	Message string `json:"message,omitempty"`
}

type Message struct {
	Message string `json:"message"`
}
