package dto

// ErrorResponse is the wire shape of every error the API returns.
type ErrorResponse struct {
	Detail string `json:"detail"`
}

// HealthResponse is returned by GET /healthy on success.
type HealthResponse struct {
	Status   string `json:"status"`
	Database string `json:"database"`
}
