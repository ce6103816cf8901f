package service

import (
	"context"
	"strings"

	"p360_analytics_backend/internal/engine"
	"p360_analytics_backend/internal/model"
	"p360_analytics_backend/internal/repository"
	"p360_analytics_backend/internal/util"
	"p360_analytics_backend/pkg/monitoring"
)

// EliteTier é o conceito ENAMED usado como recorte de excelência no
// benchmark.
const EliteTier = "5"

type BenchmarkService struct {
	StudentRepo *repository.StudentRepository
	Context     *ExamContextService
}

func NewBenchmarkService(studentRepo *repository.StudentRepository, examContext *ExamContextService) *BenchmarkService {
	return &BenchmarkService{StudentRepo: studentRepo, Context: examContext}
}

// Benchmark compara a média geral da IES com a média nacional e com a média
// dos cursos de conceito 5, sobre a correção bruta (sem cruzamento temático).
type Benchmark struct {
	Performance BenchmarkPerformance `json:"performance"`
	Gaps        BenchmarkGaps        `json:"gaps"`
}

type BenchmarkPerformance struct {
	IesAtual      float64 `json:"ies_atual"`
	MediaNacional float64 `json:"media_nacional"`
	MediaElite    float64 `json:"media_elite_enamed_5"`
}

type BenchmarkGaps struct {
	VsNacional float64 `json:"vs_nacional"`
	VsElite    float64 `json:"vs_elite"`
}

// GetBenchmark calcula o benchmark de uma IES. util.ErrEmptyDatabase quando
// não há população; util.ErrIESNotFound quando o curso não tem registros.
func (s *BenchmarkService) GetBenchmark(coCurso int) (*Benchmark, error) {
	todos, err := s.StudentRepo.FindAll()
	if err != nil {
		return nil, err
	}
	if len(todos) == 0 {
		return nil, util.ErrEmptyDatabase
	}

	keys := s.Context.Keys()

	var daIes, elite []model.Student
	for i := range todos {
		if todos[i].CoCurso == coCurso {
			daIes = append(daIes, todos[i])
		}
		if strings.TrimSpace(todos[i].EnamedIes) == EliteTier {
			elite = append(elite, todos[i])
		}
	}
	if len(daIes) == 0 {
		return nil, util.ErrIESNotFound
	}

	mediaIes := engine.OverallMeanPct(daIes, keys)
	mediaNac := engine.OverallMeanPct(todos, keys)
	mediaElite := engine.OverallMeanPct(elite, keys)

	return &Benchmark{
		Performance: BenchmarkPerformance{
			IesAtual:      util.Round2(mediaIes),
			MediaNacional: util.Round2(mediaNac),
			MediaElite:    util.Round2(mediaElite),
		},
		Gaps: BenchmarkGaps{
			VsNacional: util.Round2(mediaIes - mediaNac),
			VsElite:    util.Round2(mediaIes - mediaElite),
		},
	}, nil
}

// Comparativo é a análise de gaps de uma IES contra a referência nacional,
// na granularidade diagnóstica.
type Comparativo struct {
	Ies        string             `json:"ies"`
	MediaGeral float64            `json:"media_geral"`
	Temas      int                `json:"temas"`
	Fortalezas []engine.GapRecord `json:"fortalezas"`
	Atencao    []engine.GapRecord `json:"atencao"`
	Gaps       []engine.GapRecord `json:"gaps"`
}

// CompareWithReference cruza os agregados diagnósticos da IES com a
// referência nacional memoizada (inner join; tema sem contraparte cai fora).
func (s *BenchmarkService) CompareWithReference(ctx context.Context, coCurso int) (*Comparativo, error) {
	students, err := s.StudentRepo.FindByCurso(coCurso)
	if err != nil {
		return nil, err
	}
	if len(students) == 0 {
		return nil, util.ErrIESNotFound
	}
	iesNome := students[0].IesNome

	scored, skipped := engine.ScorePopulation(students, s.Context.Keys())
	monitoring.UnscoreableRecords.Add(float64(skipped))
	if len(scored) == 0 {
		return nil, util.ErrNoScoreableRecords
	}

	inst := engine.Aggregate(scored, s.Context.Topics(), engine.ByDiagnosis)
	monitoring.DroppedQuestions.Add(float64(inst.DroppedRows))
	if len(inst.Aggregates) == 0 {
		return nil, util.ErrNoScoreableRecords
	}

	ref, err := s.Context.NationalReference(ctx)
	if err != nil {
		return nil, err
	}

	gaps := roundGaps(engine.Compare(inst.Aggregates, ref.Aggregates))
	return &Comparativo{
		Ies:        iesNome,
		MediaGeral: util.Round2(inst.MeanAcerto * 100),
		Temas:      len(gaps),
		Fortalezas: engine.Strengths(gaps, 5),
		Atencao:    engine.Attention(gaps, 5),
		Gaps:       gaps,
	}, nil
}
