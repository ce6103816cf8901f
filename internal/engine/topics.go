package engine

import (
	"p360_analytics_backend/internal/model"
)

// TopicKey identifica uma questão dentro de um caderno.
type TopicKey struct {
	CoCaderno int
	NuQuestao int
}

// Topic é a classificação temática de uma questão.
type Topic struct {
	GrandeArea       string
	Subespecialidade string
	Diagnostico      string
}

// TopicIndex mapeia (co_caderno, nu_questao) para o tema da questão.
// Somente leitura após a construção.
type TopicIndex map[TopicKey]Topic

// BuildTopicIndex monta o índice temático. Chaves duplicadas: a última linha
// vence (a base é deduplicada na origem; invariante documentada, não
// verificada aqui).
func BuildTopicIndex(mappings []model.QuestionMapping) TopicIndex {
	idx := make(TopicIndex, len(mappings))
	for _, m := range mappings {
		idx[TopicKey{CoCaderno: m.CoCaderno, NuQuestao: m.NuQuestao}] = Topic{
			GrandeArea:       m.GrandeArea,
			Subespecialidade: m.Subespecialidade,
			Diagnostico:      m.Diagnostico,
		}
	}
	return idx
}
