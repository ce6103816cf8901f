package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompare_FixedBaseline(t *testing.T) {
	inst := []TopicAggregate{
		{GrandeArea: "Clínica Médica", Subespecialidade: "Cardiologia", Acerto: 0.70},
		{GrandeArea: "Cirurgia", Subespecialidade: "Trauma", Acerto: 0.45},
	}

	gaps := Compare(inst, nil)
	require.Len(t, gaps, 2)
	assert.InDelta(t, 20.0, gaps[0].Gap, 1e-9)
	assert.InDelta(t, -5.0, gaps[1].Gap, 1e-9)
	assert.InDelta(t, FixedBaseline, gaps[0].Referencia, 1e-9)
}

func TestCompare_ReferenceJoin(t *testing.T) {
	// IES com 0.70 contra referência 0.55 no mesmo tema => gap +15.0 pp
	inst := []TopicAggregate{
		{GrandeArea: "Clínica Médica", Subespecialidade: "Cardiologia", Diagnostico: "IAM", Acerto: 0.70},
		{GrandeArea: "Pediatria", Subespecialidade: "Neonatologia", Diagnostico: "Icterícia", Acerto: 0.50},
		{GrandeArea: "Só na IES", Subespecialidade: "X", Diagnostico: "Y", Acerto: 0.90},
	}
	ref := []TopicAggregate{
		{GrandeArea: "Clínica Médica", Subespecialidade: "Cardiologia", Diagnostico: "IAM", Acerto: 0.55},
		{GrandeArea: "Pediatria", Subespecialidade: "Neonatologia", Diagnostico: "Icterícia", Acerto: 0.55},
		{GrandeArea: "Só na referência", Subespecialidade: "W", Diagnostico: "Z", Acerto: 0.40},
	}

	gaps := Compare(inst, ref)
	// inner join: tema presente em só um dos lados cai fora
	require.Len(t, gaps, 2)
	assert.InDelta(t, 15.0, gaps[0].Gap, 1e-9)
	assert.InDelta(t, -5.0, gaps[1].Gap, 1e-9)

	strengths := Strengths(gaps, 5)
	assert.Equal(t, "Cardiologia", strengths[0].Subespecialidade)
	attention := Attention(gaps, 5)
	assert.Equal(t, "Neonatologia", attention[0].Subespecialidade)
}

func TestCompare_Antisymmetry(t *testing.T) {
	a := []TopicAggregate{
		{GrandeArea: "CM", Subespecialidade: "Cardio", Diagnostico: "IAM", Acerto: 0.62},
		{GrandeArea: "CM", Subespecialidade: "Pneumo", Diagnostico: "TEP", Acerto: 0.31},
	}
	b := []TopicAggregate{
		{GrandeArea: "CM", Subespecialidade: "Cardio", Diagnostico: "IAM", Acerto: 0.48},
		{GrandeArea: "CM", Subespecialidade: "Pneumo", Diagnostico: "TEP", Acerto: 0.59},
	}

	ab := Compare(a, b)
	ba := Compare(b, a)
	require.Len(t, ab, 2)
	require.Len(t, ba, 2)
	for i := range ab {
		assert.InDelta(t, ab[i].Gap, -ba[i].Gap, 1e-9)
	}
}

func TestStrengthsAttention_StableAndBounded(t *testing.T) {
	gaps := []GapRecord{
		{Subespecialidade: "primeiro", Gap: 10},
		{Subespecialidade: "segundo", Gap: 10},
		{Subespecialidade: "terceiro", Gap: -3},
	}

	top := Strengths(gaps, 2)
	require.Len(t, top, 2)
	// empate em 10: ordem de chegada preservada
	assert.Equal(t, "primeiro", top[0].Subespecialidade)
	assert.Equal(t, "segundo", top[1].Subespecialidade)

	// entrada original não é reordenada
	assert.Equal(t, "terceiro", gaps[2].Subespecialidade)

	all := Attention(gaps, 0)
	assert.Len(t, all, 3)
	assert.Equal(t, "terceiro", all[0].Subespecialidade)
}

func TestCompare_EmptyInputs(t *testing.T) {
	assert.Empty(t, Compare(nil, nil))
	assert.Empty(t, Compare(nil, []TopicAggregate{{Acerto: 0.5}}))
}
