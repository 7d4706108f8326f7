package dto

// ErrorResponse cuerpo de error HTTP de los endpoints de consulta.
type ErrorResponse struct {
	Error string `json:"error"`
}

// MessageResponse cuerpo simple de estado.
type MessageResponse struct {
	Message string `json:"message"`
}
