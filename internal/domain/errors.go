package domain

import "errors"

// Errores de dominio (sin dependencias externas).
// Los casos de uso los envuelven con %w; la capa HTTP los clasifica con errors.Is.
var (
	ErrNotFound     = errors.New("recurso no encontrado")
	ErrInvalidInput = errors.New("entrada inválida")
	ErrDuplicate    = errors.New("recurso duplicado")
)
