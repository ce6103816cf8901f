package engine

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"p360_analytics_backend/internal/model"
)

func mappingRows() []model.QuestionMapping {
	return []model.QuestionMapping{
		{CoCaderno: 1, NuQuestao: 1, GrandeArea: "Clínica Médica", Subespecialidade: "Cardiologia", Diagnostico: "IAM"},
		{CoCaderno: 1, NuQuestao: 2, GrandeArea: "Clínica Médica", Subespecialidade: "Cardiologia", Diagnostico: "ICC"},
		{CoCaderno: 1, NuQuestao: 3, GrandeArea: "Cirurgia", Subespecialidade: "Trauma", Diagnostico: "TCE"},
		// questão 4 sem mapeamento: descartada no cruzamento
	}
}

func TestBuildTopicIndex_LastWriteWins(t *testing.T) {
	idx := BuildTopicIndex([]model.QuestionMapping{
		{CoCaderno: 1, NuQuestao: 1, GrandeArea: "A", Subespecialidade: "S1"},
		{CoCaderno: 1, NuQuestao: 1, GrandeArea: "B", Subespecialidade: "S2"},
	})
	require.Len(t, idx, 1)
	assert.Equal(t, "B", idx[TopicKey{1, 1}].GrandeArea)
}

func TestAggregate_InnerJoinDropsUnmapped(t *testing.T) {
	topics := BuildTopicIndex(mappingRows())
	scored := []ScoredQuestion{
		{RecordID: 1, CoCaderno: 1, NuQuestao: 1, Acerto: 1},
		{RecordID: 1, CoCaderno: 1, NuQuestao: 2, Acerto: 0},
		{RecordID: 1, CoCaderno: 1, NuQuestao: 3, Acerto: 1},
		{RecordID: 1, CoCaderno: 1, NuQuestao: 4, Acerto: 1}, // sem mapeamento
		{RecordID: 2, CoCaderno: 1, NuQuestao: 1, Acerto: 0},
	}

	res := Aggregate(scored, topics, BySubspecialty)

	assert.Equal(t, 5, res.ScoredRows)
	assert.Equal(t, 1, res.DroppedRows)
	assert.Equal(t, 2, res.Students)
	// média geral sobre as 4 linhas mapeadas: (1+0+1+0)/4
	assert.InDelta(t, 0.5, res.MeanAcerto, 1e-9)
	require.Len(t, res.Aggregates, 2)

	// saída ordenada pela chave: Cirurgia antes de Clínica Médica
	assert.Equal(t, "Cirurgia", res.Aggregates[0].GrandeArea)
	assert.InDelta(t, 1.0, res.Aggregates[0].Acerto, 1e-9)
	assert.Equal(t, 1, res.Aggregates[0].VolumeQuestoes)

	assert.Equal(t, "Cardiologia", res.Aggregates[1].Subespecialidade)
	// 3 linhas (q1 acerto, q2 erro, q1 erro) => média 1/3
	assert.InDelta(t, 1.0/3.0, res.Aggregates[1].Acerto, 1e-9)
	assert.Equal(t, 2, res.Aggregates[1].VolumeQuestoes)

	// conservatividade do join: questões agregadas <= questões pontuadas
	agg := 0
	for _, a := range res.Aggregates {
		agg += a.VolumeQuestoes
	}
	assert.LessOrEqual(t, agg, res.ScoredRows)
}

func TestAggregate_ByDiagnosisSplitsGroups(t *testing.T) {
	topics := BuildTopicIndex(mappingRows())
	scored := []ScoredQuestion{
		{RecordID: 1, CoCaderno: 1, NuQuestao: 1, Acerto: 1},
		{RecordID: 1, CoCaderno: 1, NuQuestao: 2, Acerto: 0},
	}

	bySub := Aggregate(scored, topics, BySubspecialty)
	byDiag := Aggregate(scored, topics, ByDiagnosis)

	require.Len(t, bySub.Aggregates, 1)
	require.Len(t, byDiag.Aggregates, 2)
	assert.Empty(t, bySub.Aggregates[0].Diagnostico)
	assert.Equal(t, "IAM", byDiag.Aggregates[0].Diagnostico)
	assert.Equal(t, "ICC", byDiag.Aggregates[1].Diagnostico)
}

func TestAggregate_EmptyScoredIsEmptyResult(t *testing.T) {
	topics := BuildTopicIndex(mappingRows())
	res := Aggregate(nil, topics, BySubspecialty)
	assert.Empty(t, res.Aggregates)
	assert.Equal(t, 0, res.Students)
}

func TestAggregate_Deterministic(t *testing.T) {
	topics := BuildTopicIndex(mappingRows())
	scored := []ScoredQuestion{
		{RecordID: 1, CoCaderno: 1, NuQuestao: 3, Acerto: 1},
		{RecordID: 1, CoCaderno: 1, NuQuestao: 1, Acerto: 0},
		{RecordID: 2, CoCaderno: 1, NuQuestao: 2, Acerto: 1},
	}
	first := Aggregate(scored, topics, ByDiagnosis)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, Aggregate(scored, topics, ByDiagnosis))
	}
}

func TestBuildReference_EmptyPopulation(t *testing.T) {
	topics := BuildTopicIndex(mappingRows())
	keys := BuildAnswerKeyIndex(nil)
	_, err := BuildReference(nil, keys, topics)
	assert.ErrorIs(t, err, ErrEmptyPopulation)
}

func TestBuildReference_MatchesAggregatePipeline(t *testing.T) {
	topics := BuildTopicIndex(mappingRows())
	keys := BuildAnswerKeyIndex([]model.AnswerKey{
		{CoCaderno: 1, Respostas: strings.Repeat("A", 100)},
	})
	records := []model.Student{
		newStudent(1, 10, 1, "AAB"+strings.Repeat("A", 97)),
		newStudent(2, 20, 1, "BAA"+strings.Repeat("B", 97)),
	}

	ref, err := BuildReference(records, keys, topics)
	require.NoError(t, err)

	scored, _ := ScorePopulation(records, keys)
	direct := Aggregate(scored, topics, ByDiagnosis)
	assert.Equal(t, direct, ref)
}
