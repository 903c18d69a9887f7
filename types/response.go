package types

// ApiResponse is the JSON envelope every route responds with.
type ApiResponse struct {
	Message string      `json:"message"`
	Status  int         `json:"status"`
	Data    interface{} `json:"data,omitempty"`
}

// ErrorResponse is used for failure payloads that carry no data.
type ErrorResponse struct {
	Message string `json:"message"`
	Status  int    `json:"status"`
}
