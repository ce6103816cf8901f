// Package engine implementa o núcleo de correção e agregação: cruzamento do
// vetor de respostas com o gabarito do caderno, agregação por tema, gaps
// contra a referência nacional e ranking de instituições. O pacote é puro:
// não faz I/O, não guarda estado global e recebe os índices por injeção.
package engine

import (
	"p360_analytics_backend/internal/model"
)

// Marcadores de questão anulada no gabarito. Uma posição anulada conta como
// acerto para qualquer resposta, inclusive em branco.
func IsAnnulled(symbol byte) bool {
	switch symbol {
	case 'X', 'Z', '*':
		return true
	}
	return false
}

// AnswerKeyIndex mapeia co_caderno para a sequência de símbolos corretos.
// Construído uma vez na carga do contexto e somente leitura depois disso,
// pode ser compartilhado entre requisições sem trava.
type AnswerKeyIndex map[int][]byte

// BuildAnswerKeyIndex monta o índice de gabaritos, normalizando cada chave
// para exatamente 100 posições: excedente é cortado e chaves curtas são
// completadas com 'X' (mesmo fallback do importador para colunas ausentes,
// que trata a posição como anulada em vez de inventar uma alternativa).
func BuildAnswerKeyIndex(keys []model.AnswerKey) AnswerKeyIndex {
	idx := make(AnswerKeyIndex, len(keys))
	for _, k := range keys {
		seq := make([]byte, model.NumQuestoes)
		copy(seq, k.Respostas)
		for i := len(k.Respostas); i < model.NumQuestoes; i++ {
			seq[i] = 'X'
		}
		idx[k.CoCaderno] = seq
	}
	return idx
}
