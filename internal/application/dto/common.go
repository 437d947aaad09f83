package dto

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// MessageResponse cuerpo de confirmación simple.
type MessageResponse struct {
	Message string `json:"message"`
}

// CreatedResponse id generado por una operación de alta.
type CreatedResponse struct {
	ID int64 `json:"id"`
}
