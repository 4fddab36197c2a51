package dto

// DataResponse wraps every successful payload as {"data": ...}.
type DataResponse struct {
	Data interface{} `json:"data"`
}

// ErrorResponse is the failure envelope: {"error": "<message>"}.
type ErrorResponse struct {
	Error string `json:"error"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
	DB        string `json:"db"`
	Storage   string `json:"storage"`
}

type UploadResponse struct {
	URL         string `json:"url"`
	Key         string `json:"key"`
	Size        int64  `json:"size"`
	ContentType string `json:"content_type"`
}
