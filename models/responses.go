package models

// DataResponse is the success envelope for a single value.
type DataResponse struct {
	Success bool `json:"success"`
	Data    any  `json:"data"`
}

// ListResponse is the success envelope for collections.
// Count is the number of entries in Data.
type ListResponse struct {
	Success bool `json:"success"`
	Count   int  `json:"count"`
	Data    any  `json:"data"`
}

// TokenResponse is returned by the register and login endpoints.
type TokenResponse struct {
	Success bool   `json:"success"`
	Token   string `json:"token"`
}

// ErrorResponse is the uniform error envelope.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}
