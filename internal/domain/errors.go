package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound     = errors.New("recurso no encontrado")
	ErrInvalidInput = errors.New("entrada inválida")
)

// RuleError es un error de dominio con mensaje propio para el cliente.
// Kind es ErrNotFound o ErrInvalidInput; errors.Is funciona a través de Unwrap.
type RuleError struct {
	Kind    error
	Message string
}

func (e *RuleError) Error() string { return e.Message }

func (e *RuleError) Unwrap() error { return e.Kind }

// Invalid construye un error de validación.
func Invalid(message string) error {
	return &RuleError{Kind: ErrInvalidInput, Message: message}
}

// NotFound construye un error de recurso inexistente.
func NotFound(message string) error {
	return &RuleError{Kind: ErrNotFound, Message: message}
}
