package util

import "errors"

var (
	ErrUserNotFound       = errors.New("usuário não encontrado")
	ErrInvalidCredentials = errors.New("credenciais inválidas")
	ErrIESNotFound        = errors.New("IES não encontrada")
	ErrNoScoreableRecords = errors.New("nenhum registro pontuável para a consulta")
	ErrUnknownDataset     = errors.New("dataset de importação desconhecido")
	ErrEmptyDatabase      = errors.New("banco vazio")
)
