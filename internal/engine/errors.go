package engine

import "errors"

var (
	// ErrEmptyPopulation indica pedido de referência ou ranking sobre zero
	// registros; o consumidor reporta "sem dados", não é pânico.
	ErrEmptyPopulation = errors.New("população vazia")
)
