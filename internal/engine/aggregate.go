package engine

import (
	"sort"

	"p360_analytics_backend/internal/model"
)

// Granularity define a chave de agrupamento dos agregados temáticos.
type Granularity int

const (
	// BySubspecialty agrupa por (grande_area, subespecialidade); usado no
	// dashboard simples e na matriz de priorização.
	BySubspecialty Granularity = iota
	// ByDiagnosis agrupa por (grande_area, subespecialidade, diagnostico);
	// usado no comparativo contra a referência nacional.
	ByDiagnosis
)

// TopicAggregate é a média de acertos de um grupo temático.
type TopicAggregate struct {
	GrandeArea       string  `json:"grande_area"`
	Subespecialidade string  `json:"subespecialidade"`
	Diagnostico      string  `json:"diagnostico,omitempty"`
	Acerto           float64 `json:"acerto"`          // média 0.0–1.0
	VolumeQuestoes   int     `json:"volume_questoes"` // questões distintas no grupo
}

// AggregateResult carrega os agregados mais os contadores laterais do
// cruzamento best-effort, para o chamador distinguir "sem dados" de
// "dados todos zerados" e reportar linhas descartadas.
type AggregateResult struct {
	Aggregates []TopicAggregate
	// MeanAcerto é a média de acerto (0.0–1.0) sobre todas as linhas que
	// sobreviveram ao cruzamento; é a "média geral" do dashboard.
	MeanAcerto float64
	// ScoredRows é o total de questões pontuadas que entraram no cruzamento.
	ScoredRows int
	// DroppedRows é quantas dessas questões não tinham mapeamento temático.
	DroppedRows int
	// Students é o número de registros distintos que contribuíram com ao
	// menos uma questão mapeada.
	Students int
}

type groupKey struct {
	grandeArea       string
	subespecialidade string
	diagnostico      string
}

type groupAcc struct {
	sum       int
	rows      int
	questions map[TopicKey]struct{}
}

// Aggregate cruza as questões pontuadas com o índice temático (inner join em
// (co_caderno, nu_questao) — questão sem mapeamento é descartada) e calcula a
// média de acerto por grupo na granularidade pedida. A ordem de iteração dos
// grupos não afeta o resultado numérico; a saída sai ordenada pela chave de
// agrupamento para ser determinística.
func Aggregate(scored []ScoredQuestion, topics TopicIndex, g Granularity) AggregateResult {
	res := AggregateResult{ScoredRows: len(scored)}

	groups := make(map[groupKey]*groupAcc)
	students := make(map[uint]struct{})
	totalSum, totalRows := 0, 0

	for _, q := range scored {
		tk := TopicKey{CoCaderno: q.CoCaderno, NuQuestao: q.NuQuestao}
		topic, ok := topics[tk]
		if !ok {
			res.DroppedRows++
			continue
		}

		gk := groupKey{
			grandeArea:       topic.GrandeArea,
			subespecialidade: topic.Subespecialidade,
		}
		if g == ByDiagnosis {
			gk.diagnostico = topic.Diagnostico
		}

		acc, ok := groups[gk]
		if !ok {
			acc = &groupAcc{questions: make(map[TopicKey]struct{})}
			groups[gk] = acc
		}
		acc.sum += q.Acerto
		acc.rows++
		acc.questions[tk] = struct{}{}
		students[q.RecordID] = struct{}{}
		totalSum += q.Acerto
		totalRows++
	}

	if totalRows > 0 {
		res.MeanAcerto = float64(totalSum) / float64(totalRows)
	}
	res.Students = len(students)
	res.Aggregates = make([]TopicAggregate, 0, len(groups))
	for gk, acc := range groups {
		mean := 0.0
		if acc.rows > 0 {
			mean = float64(acc.sum) / float64(acc.rows)
		}
		res.Aggregates = append(res.Aggregates, TopicAggregate{
			GrandeArea:       gk.grandeArea,
			Subespecialidade: gk.subespecialidade,
			Diagnostico:      gk.diagnostico,
			Acerto:           mean,
			VolumeQuestoes:   len(acc.questions),
		})
	}

	sort.Slice(res.Aggregates, func(i, j int) bool {
		a, b := res.Aggregates[i], res.Aggregates[j]
		if a.GrandeArea != b.GrandeArea {
			return a.GrandeArea < b.GrandeArea
		}
		if a.Subespecialidade != b.Subespecialidade {
			return a.Subespecialidade < b.Subespecialidade
		}
		return a.Diagnostico < b.Diagnostico
	})

	return res
}

// BuildReference roda o mesmo pipeline de correção e agregação sobre a
// população inteira, na granularidade diagnóstica, para servir de linha de
// base do comparativo. As regras de cruzamento são exatamente as de
// Aggregate; qualquer divergência invalidaria a comparação IES × referência.
func BuildReference(records []model.Student, keys AnswerKeyIndex, topics TopicIndex) (AggregateResult, error) {
	if len(records) == 0 {
		return AggregateResult{}, ErrEmptyPopulation
	}
	scored, _ := ScorePopulation(records, keys)
	return Aggregate(scored, topics, ByDiagnosis), nil
}
