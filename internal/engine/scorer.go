package engine

import (
	"p360_analytics_backend/internal/model"
)

// ScoredQuestion é o resultado transitório da correção de uma posição do
// vetor de respostas. Nunca é persistido.
type ScoredQuestion struct {
	RecordID  uint
	CoCaderno int
	NuQuestao int
	Acerto    int // 0 ou 1
}

// ScoreRecord corrige o vetor de respostas de um aluno contra o gabarito do
// seu caderno. Retorna nil quando o caderno não tem gabarito no índice: o
// registro é impontuável e o chamador deve ignorá-lo, nunca falhar.
//
// A comparação é feita símbolo a símbolo, sensível a caixa e sem
// normalização; posições além da sequência mais curta não são pontuadas.
// Com a ingestão normalizando ambos os lados para 100 posições, o min() aqui
// é só uma guarda para entradas fora do fluxo normal.
func ScoreRecord(rec *model.Student, keys AnswerKeyIndex) []ScoredQuestion {
	key, ok := keys[rec.CoCaderno]
	if !ok {
		return nil
	}

	n := len(rec.Respostas)
	if len(key) < n {
		n = len(key)
	}

	scored := make([]ScoredQuestion, 0, n)
	for i := 0; i < n; i++ {
		acerto := 0
		if IsAnnulled(key[i]) || rec.Respostas[i] == key[i] {
			acerto = 1
		}
		scored = append(scored, ScoredQuestion{
			RecordID:  rec.ID,
			CoCaderno: rec.CoCaderno,
			NuQuestao: i + 1,
			Acerto:    acerto,
		})
	}
	return scored
}

// ScorePopulation corrige um conjunto de registros, pulando os impontuáveis.
// Devolve também quantos registros ficaram sem gabarito, para observabilidade.
func ScorePopulation(records []model.Student, keys AnswerKeyIndex) (scored []ScoredQuestion, skipped int) {
	for i := range records {
		qs := ScoreRecord(&records[i], keys)
		if qs == nil {
			skipped++
			continue
		}
		scored = append(scored, qs...)
	}
	return scored, skipped
}

// OverallMeanPct calcula a média geral de acertos (0–100) de um conjunto de
// registros sem passar pelo cruzamento temático, no mesmo recorte usado pelo
// benchmark nacional. Denominador zero resulta em 0, nunca NaN.
func OverallMeanPct(records []model.Student, keys AnswerKeyIndex) float64 {
	correct, total := 0, 0
	for i := range records {
		for _, q := range ScoreRecord(&records[i], keys) {
			total++
			correct += q.Acerto
		}
	}
	if total == 0 {
		return 0
	}
	return float64(correct) / float64(total) * 100
}
