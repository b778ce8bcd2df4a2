package service

import (
	"errors"
	"fmt"
)

// Domain error taxonomy. Handlers map these to HTTP status codes:
// validation and stock errors → 400, not-found sentinels → 404,
// anything else → 500 with the raw store message.
var (
	ErrArticuloNoEncontrado = errors.New("Artículo no encontrado")
	ErrMaquinaNoEncontrada  = errors.New("Máquina no encontrada")
	ErrCargaNoEncontrada    = errors.New("Carga no encontrada")
	ErrConteoNoEncontrado   = errors.New("Conteo no encontrado")
)

// ValidacionError marks malformed or missing input. It is always raised
// before any store access, so a failed validation never leaves partial state.
type ValidacionError struct {
	Msg string
}

func (e *ValidacionError) Error() string { return e.Msg }

func newValidacion(format string, args ...interface{}) error {
	return &ValidacionError{Msg: fmt.Sprintf(format, args...)}
}

// StockInsuficienteError rejects a mutation that would overdraw an article.
type StockInsuficienteError struct {
	Disponible int
	Solicitado int
}

func (e *StockInsuficienteError) Error() string {
	return fmt.Sprintf("Stock insuficiente. Disponible: %d, solicitado: %d", e.Disponible, e.Solicitado)
}

// EsNotFound reports whether err should surface as HTTP 404.
func EsNotFound(err error) bool {
	return errors.Is(err, ErrArticuloNoEncontrado) ||
		errors.Is(err, ErrMaquinaNoEncontrada) ||
		errors.Is(err, ErrCargaNoEncontrada) ||
		errors.Is(err, ErrConteoNoEncontrado)
}
