package engine

import (
	"sort"

	"p360_analytics_backend/internal/model"
)

// RankingEntry é uma linha do leaderboard de instituições.
type RankingEntry struct {
	CoCurso    int     `json:"co_curso"`
	IesNome    string  `json:"ies_nome"`
	MediaGeral float64 `json:"media_geral"` // percentual 0–100
}

// Rank calcula o ranking geral de instituições sobre a população dada.
// allowed, quando não-nil, restringe os registros ao conjunto de cursos da
// região (o chamador resolve UF/município para códigos de curso). Registros
// cujo caderno não tem gabarito são pulados. Retorna a lista ordenada
// decrescente por média (empates mantêm a ordem de primeira aparição), a
// posição 1-based do curso alvo — 0 quando o alvo não pontuou nenhuma
// questão na população filtrada — e o total de instituições ranqueadas.
func Rank(records []model.Student, keys AnswerKeyIndex, target int, allowed map[int]bool) ([]RankingEntry, int, int, error) {
	if len(records) == 0 {
		return nil, 0, 0, ErrEmptyPopulation
	}

	type acc struct {
		nome    string
		correct int
		total   int
	}
	byCurso := make(map[int]*acc)
	var order []int // ordem de primeira aparição, para desempate estável

	for i := range records {
		rec := &records[i]
		if allowed != nil && !allowed[rec.CoCurso] {
			continue
		}
		scored := ScoreRecord(rec, keys)
		if scored == nil {
			continue
		}
		a, ok := byCurso[rec.CoCurso]
		if !ok {
			a = &acc{nome: rec.IesNome}
			byCurso[rec.CoCurso] = a
			order = append(order, rec.CoCurso)
		}
		for _, q := range scored {
			a.total++
			a.correct += q.Acerto
		}
	}

	entries := make([]RankingEntry, 0, len(order))
	for _, curso := range order {
		a := byCurso[curso]
		media := 0.0
		if a.total > 0 {
			media = float64(a.correct) / float64(a.total) * 100
		}
		entries = append(entries, RankingEntry{
			CoCurso:    curso,
			IesNome:    a.nome,
			MediaGeral: media,
		})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].MediaGeral > entries[j].MediaGeral
	})

	position := 0
	for i, e := range entries {
		if e.CoCurso == target {
			position = i + 1
			break
		}
	}

	return entries, position, len(entries), nil
}
