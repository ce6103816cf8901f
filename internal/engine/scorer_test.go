package engine

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"p360_analytics_backend/internal/model"
)

func newStudent(id uint, coCurso, coCaderno int, respostas string) model.Student {
	s := model.Student{
		CoCurso:   coCurso,
		CoCaderno: coCaderno,
		IesNome:   "IES Teste",
		Respostas: model.NormalizeAnswers(respostas),
	}
	s.ID = id
	return s
}

func TestBuildAnswerKeyIndex_NormalizesTo100(t *testing.T) {
	idx := BuildAnswerKeyIndex([]model.AnswerKey{
		{CoCaderno: 1, Respostas: "ABC"},
		{CoCaderno: 2, Respostas: strings.Repeat("A", 150)},
	})

	require.Len(t, idx[1], model.NumQuestoes)
	require.Len(t, idx[2], model.NumQuestoes)

	// chave curta completa com marcador de anulada
	assert.Equal(t, byte('C'), idx[1][2])
	assert.Equal(t, byte('X'), idx[1][3])
	assert.Equal(t, byte('X'), idx[1][99])
}

func TestScoreRecord_MissingKeyReturnsNil(t *testing.T) {
	idx := BuildAnswerKeyIndex([]model.AnswerKey{{CoCaderno: 1, Respostas: strings.Repeat("A", 100)}})
	rec := newStudent(1, 10, 99, strings.Repeat("A", 100))

	assert.Nil(t, ScoreRecord(&rec, idx))
}

func TestScoreRecord_TwoCorrectOutOf100(t *testing.T) {
	// gabarito "AB" + 98×'C'; respostas "AB" + 98×'D' => média geral 2%
	idx := BuildAnswerKeyIndex([]model.AnswerKey{
		{CoCaderno: 1, Respostas: "AB" + strings.Repeat("C", 98)},
	})
	rec := newStudent(1, 10, 1, "AB"+strings.Repeat("D", 98))

	scored := ScoreRecord(&rec, idx)
	require.Len(t, scored, 100)

	correct := 0
	for _, q := range scored {
		correct += q.Acerto
	}
	assert.Equal(t, 2, correct)
	assert.Equal(t, 1, scored[0].Acerto)
	assert.Equal(t, 1, scored[1].Acerto)
	assert.Equal(t, 0, scored[2].Acerto)

	assert.InDelta(t, 2.0, OverallMeanPct([]model.Student{rec}, idx), 1e-9)
}

func TestScoreRecord_AnnulledAlwaysCorrect(t *testing.T) {
	// posição 5 anulada ('X'): acerto 1 qualquer que seja a resposta
	key := []byte(strings.Repeat("A", 100))
	key[4] = 'X'
	idx := BuildAnswerKeyIndex([]model.AnswerKey{{CoCaderno: 1, Respostas: string(key)}})

	for _, resposta := range []byte{'A', 'B', 'E', model.SemResposta} {
		resp := []byte(strings.Repeat("B", 100))
		resp[4] = resposta
		rec := newStudent(1, 10, 1, string(resp))

		scored := ScoreRecord(&rec, idx)
		require.Len(t, scored, 100)
		assert.Equal(t, 1, scored[4].Acerto, "resposta %q na posição anulada", resposta)
		assert.Equal(t, 5, scored[4].NuQuestao)
	}
}

func TestScoreRecord_AllAnnulledMarkers(t *testing.T) {
	idx := BuildAnswerKeyIndex([]model.AnswerKey{
		{CoCaderno: 1, Respostas: "XZ*" + strings.Repeat("A", 97)},
	})
	rec := newStudent(1, 10, 1, strings.Repeat(" ", 100))

	scored := ScoreRecord(&rec, idx)
	require.Len(t, scored, 100)
	assert.Equal(t, 1, scored[0].Acerto)
	assert.Equal(t, 1, scored[1].Acerto)
	assert.Equal(t, 1, scored[2].Acerto)
	assert.Equal(t, 0, scored[3].Acerto)
}

func TestScoreRecord_CaseSensitiveComparison(t *testing.T) {
	idx := BuildAnswerKeyIndex([]model.AnswerKey{
		{CoCaderno: 1, Respostas: strings.Repeat("A", 100)},
	})
	rec := newStudent(1, 10, 1, strings.Repeat("a", 100))

	scored := ScoreRecord(&rec, idx)
	for _, q := range scored {
		assert.Equal(t, 0, q.Acerto)
	}
}

func TestScoreRecord_ShortResponsesNotScoredBeyondLength(t *testing.T) {
	// sem normalização na ingestão, posições além da sequência mais curta
	// não são pontuadas
	idx := BuildAnswerKeyIndex([]model.AnswerKey{
		{CoCaderno: 1, Respostas: strings.Repeat("A", 100)},
	})
	rec := model.Student{CoCaderno: 1, Respostas: "AAA"}
	rec.ID = 1

	scored := ScoreRecord(&rec, idx)
	require.Len(t, scored, 3)
	assert.Equal(t, 3, scored[2].NuQuestao)
}

func TestScorePopulation_CountsSkipped(t *testing.T) {
	idx := BuildAnswerKeyIndex([]model.AnswerKey{
		{CoCaderno: 1, Respostas: strings.Repeat("A", 100)},
	})
	records := []model.Student{
		newStudent(1, 10, 1, strings.Repeat("A", 100)),
		newStudent(2, 10, 7, strings.Repeat("A", 100)), // caderno sem gabarito
		newStudent(3, 11, 1, strings.Repeat("B", 100)),
	}

	scored, skipped := ScorePopulation(records, idx)
	assert.Equal(t, 1, skipped)
	assert.Len(t, scored, 200)
}

func TestOverallMeanPct_EmptyIsZero(t *testing.T) {
	idx := BuildAnswerKeyIndex(nil)
	assert.Equal(t, 0.0, OverallMeanPct(nil, idx))
	// registros presentes mas nenhum pontuável
	rec := newStudent(1, 10, 42, strings.Repeat("A", 100))
	assert.Equal(t, 0.0, OverallMeanPct([]model.Student{rec}, idx))
}

func TestNormalizeAnswers(t *testing.T) {
	assert.Len(t, model.NormalizeAnswers("AB"), 100)
	assert.Equal(t, "AB"+strings.Repeat(" ", 98), model.NormalizeAnswers("AB"))
	assert.Equal(t, strings.Repeat("C", 100), model.NormalizeAnswers(strings.Repeat("C", 120)))
}
