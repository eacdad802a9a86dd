package dto

// ErrorResponse cuerpo de error HTTP para clientes JSON.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// MessageResponse confirmación simple para clientes JSON.
type MessageResponse struct {
	Message string `json:"message"`
}
