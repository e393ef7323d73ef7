// Package catalog contiene el motor de reglas del catálogo: validación de entradas,
// herencia de impuestos entre Category → SubCategory → Product y derivación de montos.
//
// Todas las funciones trabajan sobre el candidato completamente fusionado y no tocan el
// registro recibido; si devuelven error, nada se persiste.
package catalog

import (
	"bytes"
	"encoding/json"
)

// Field es un valor de entrada opcional. Set indica que el campo vino en la petición;
// Null, que vino explícitamente como null.
type Field[T any] struct {
	Value T
	Set   bool
	Null  bool
}

// Of construye un Field presente.
func Of[T any](v T) Field[T] {
	return Field[T]{Value: v, Set: true}
}

// Null construye un Field presente con valor null.
func Null[T any]() Field[T] {
	return Field[T]{Set: true, Null: true}
}

// Present indica que el campo vino con un valor distinto de null.
func (f Field[T]) Present() bool {
	return f.Set && !f.Null
}

// UnmarshalJSON solo se invoca si la clave existe en el JSON.
func (f *Field[T]) UnmarshalJSON(data []byte) error {
	f.Set = true
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		f.Null = true
		return nil
	}
	return json.Unmarshal(data, &f.Value)
}

// Number guarda el texto de un valor numérico tal como llegó (número JSON o string).
// La conversión la hace el motor para reportar los fallos como errores de validación.
type Number string

func (n *Number) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*n = Number(s)
		return nil
	}
	*n = Number(bytes.TrimSpace(data))
	return nil
}
