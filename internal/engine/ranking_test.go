package engine

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"p360_analytics_backend/internal/model"
)

func rankingFixture() ([]model.Student, AnswerKeyIndex) {
	keys := BuildAnswerKeyIndex([]model.AnswerKey{
		{CoCaderno: 1, Respostas: strings.Repeat("A", 100)},
	})
	// curso 10 com 80% de acerto, curso 20 com 60%
	records := []model.Student{
		newStudent(1, 10, 1, strings.Repeat("A", 80)+strings.Repeat("B", 20)),
		newStudent(2, 20, 1, strings.Repeat("A", 60)+strings.Repeat("B", 40)),
	}
	return records, keys
}

func TestRank_OrderAndPosition(t *testing.T) {
	records, keys := rankingFixture()

	entries, pos, total, err := Rank(records, keys, 10, nil)
	require.NoError(t, err)
	assert.Equal(t, 2, total)
	assert.Equal(t, 1, pos)
	require.Len(t, entries, 2)
	assert.Equal(t, 10, entries[0].CoCurso)
	assert.InDelta(t, 80.0, entries[0].MediaGeral, 1e-9)
	assert.InDelta(t, 60.0, entries[1].MediaGeral, 1e-9)
}

func TestRank_RegionFilterExcludesTarget(t *testing.T) {
	records, keys := rankingFixture()

	// região contendo só o curso 20: alvo 10 fora do ranking (posição 0)
	entries, pos, total, err := Rank(records, keys, 10, map[int]bool{20: true})
	require.NoError(t, err)
	assert.Equal(t, 1, total)
	assert.Equal(t, 0, pos)
	require.Len(t, entries, 1)
	assert.Equal(t, 20, entries[0].CoCurso)
}

func TestRank_EmptyPopulation(t *testing.T) {
	_, keys := rankingFixture()
	_, _, _, err := Rank(nil, keys, 10, nil)
	assert.ErrorIs(t, err, ErrEmptyPopulation)
}

func TestRank_SkipsRecordsWithoutKey(t *testing.T) {
	records, keys := rankingFixture()
	records = append(records, newStudent(3, 30, 9, strings.Repeat("A", 100)))

	entries, pos, total, err := Rank(records, keys, 30, nil)
	require.NoError(t, err)
	// curso 30 só tem registro impontuável: fora do ranking
	assert.Equal(t, 2, total)
	assert.Equal(t, 0, pos)
	assert.Len(t, entries, 2)
}

func TestRank_Deterministic(t *testing.T) {
	records, keys := rankingFixture()
	// empate exato entre dois cursos
	records = append(records,
		newStudent(3, 30, 1, strings.Repeat("A", 80)+strings.Repeat("C", 20)),
	)

	first, firstPos, _, err := Rank(records, keys, 30, nil)
	require.NoError(t, err)
	for i := 0; i < 10; i++ {
		entries, pos, _, err := Rank(records, keys, 30, nil)
		require.NoError(t, err)
		assert.Equal(t, first, entries)
		assert.Equal(t, firstPos, pos)
	}
	// empate em 80%: ordem de primeira aparição (10 antes de 30)
	assert.Equal(t, 10, first[0].CoCurso)
	assert.Equal(t, 30, first[1].CoCurso)
	assert.Equal(t, 2, firstPos)
}

func TestRank_ZeroDivisionSafe(t *testing.T) {
	// caderno inteiro anulado gera média 100, nunca NaN; registro com
	// respostas vazias no caderno sem anulação gera média 0
	keys := BuildAnswerKeyIndex([]model.AnswerKey{
		{CoCaderno: 1, Respostas: strings.Repeat("X", 100)},
	})
	records := []model.Student{newStudent(1, 10, 1, "")}

	entries, pos, total, err := Rank(records, keys, 10, nil)
	require.NoError(t, err)
	assert.Equal(t, 1, total)
	assert.Equal(t, 1, pos)
	assert.False(t, entries[0].MediaGeral != entries[0].MediaGeral, "NaN")
}
