package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"p360_analytics_backend/internal/engine"
	"p360_analytics_backend/internal/repository"
	"p360_analytics_backend/internal/util"
	"p360_analytics_backend/pkg/logger"
	"p360_analytics_backend/pkg/monitoring"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

type DashboardService struct {
	StudentRepo *repository.StudentRepository
	Context     *ExamContextService
	Redis       *redis.Client
	CacheTTL    time.Duration
}

func NewDashboardService(
	studentRepo *repository.StudentRepository,
	examContext *ExamContextService,
	rdb *redis.Client,
	cacheTTLSeconds int,
) *DashboardService {
	return &DashboardService{
		StudentRepo: studentRepo,
		Context:     examContext,
		Redis:       rdb,
		CacheTTL:    time.Duration(cacheTTLSeconds) * time.Second,
	}
}

// Dashboard é a visão completa de uma IES: média geral, volume de alunos e a
// análise de fortalezas/atenção contra a linha de base fixa de 50%.
type Dashboard struct {
	Ies        string  `json:"ies"`
	MediaGeral float64 `json:"media_geral"`
	Alunos     int     `json:"alunos"`
	Analise    Analise `json:"analise"`
}

type Analise struct {
	Fortalezas []engine.GapRecord `json:"fortalezas"`
	Atencao    []engine.GapRecord `json:"atencao"`
}

// MatrixRow é uma linha da matriz de priorização: acerto médio percentual e
// volume de questões distintas por tema.
type MatrixRow struct {
	GrandeArea       string  `json:"grande_area"`
	Subespecialidade string  `json:"subespecialidade"`
	AcertoMedio      float64 `json:"acerto_medio"`
	VolumeQuestoes   int     `json:"volume_questoes"`
}

// GetDashboard monta o dashboard de uma IES. Retorna util.ErrIESNotFound
// quando o curso não tem registros e util.ErrNoScoreableRecords quando nenhum
// registro sobrevive à correção e ao cruzamento temático — condições que o
// consumidor reporta como "sem dados", distintas de médias zeradas.
func (s *DashboardService) GetDashboard(ctx context.Context, coCurso int) (*Dashboard, error) {
	cacheKey := fmt.Sprintf("p360:dash:v%d:%d", s.Context.CacheVersion(ctx), coCurso)
	if cached := s.fromCache(ctx, cacheKey); cached != nil {
		return cached, nil
	}

	agg, iesNome, err := s.aggregateCurso(coCurso, engine.BySubspecialty)
	if err != nil {
		return nil, err
	}

	gaps := engine.Compare(agg.Aggregates, nil)
	dashboard := &Dashboard{
		Ies:        iesNome,
		MediaGeral: util.Round2(agg.MeanAcerto * 100),
		Alunos:     agg.Students,
		Analise: Analise{
			Fortalezas: roundGaps(engine.Strengths(gaps, 5)),
			Atencao:    roundGaps(engine.Attention(gaps, 5)),
		},
	}

	s.toCache(ctx, cacheKey, dashboard)
	return dashboard, nil
}

// GetMatrix monta a matriz de priorização (acerto médio × volume por tema).
func (s *DashboardService) GetMatrix(coCurso int) ([]MatrixRow, error) {
	agg, _, err := s.aggregateCurso(coCurso, engine.BySubspecialty)
	if err != nil {
		return nil, err
	}

	rows := make([]MatrixRow, 0, len(agg.Aggregates))
	for _, a := range agg.Aggregates {
		rows = append(rows, MatrixRow{
			GrandeArea:       a.GrandeArea,
			Subespecialidade: a.Subespecialidade,
			AcertoMedio:      util.Round2(a.Acerto * 100),
			VolumeQuestoes:   a.VolumeQuestoes,
		})
	}
	return rows, nil
}

// aggregateCurso roda o pipeline correção → cruzamento → agregação para os
// registros de um curso, alimentando os contadores de observabilidade.
func (s *DashboardService) aggregateCurso(coCurso int, g engine.Granularity) (engine.AggregateResult, string, error) {
	students, err := s.StudentRepo.FindByCurso(coCurso)
	if err != nil {
		return engine.AggregateResult{}, "", err
	}
	if len(students) == 0 {
		return engine.AggregateResult{}, "", util.ErrIESNotFound
	}
	iesNome := students[0].IesNome

	scored, skipped := engine.ScorePopulation(students, s.Context.Keys())
	monitoring.UnscoreableRecords.Add(float64(skipped))
	if len(scored) == 0 {
		return engine.AggregateResult{}, "", util.ErrNoScoreableRecords
	}

	agg := engine.Aggregate(scored, s.Context.Topics(), g)
	monitoring.DroppedQuestions.Add(float64(agg.DroppedRows))
	if len(agg.Aggregates) == 0 {
		return engine.AggregateResult{}, "", util.ErrNoScoreableRecords
	}
	return agg, iesNome, nil
}

func (s *DashboardService) fromCache(ctx context.Context, key string) *Dashboard {
	if s.Redis == nil {
		return nil
	}
	raw, err := s.Redis.Get(ctx, key).Bytes()
	if err != nil {
		return nil
	}
	var d Dashboard
	if err := json.Unmarshal(raw, &d); err != nil {
		return nil
	}
	return &d
}

func (s *DashboardService) toCache(ctx context.Context, key string, d *Dashboard) {
	if s.Redis == nil {
		return
	}
	raw, err := json.Marshal(d)
	if err != nil {
		return
	}
	if err := s.Redis.Set(ctx, key, raw, s.CacheTTL).Err(); err != nil {
		logger.Log.Debug("Falha ao gravar cache de dashboard", zap.Error(err))
	}
}

func roundGaps(gaps []engine.GapRecord) []engine.GapRecord {
	for i := range gaps {
		gaps[i].Acerto = util.Round2(gaps[i].Acerto * 100)
		gaps[i].Referencia = util.Round2(gaps[i].Referencia * 100)
		gaps[i].Gap = util.Round2(gaps[i].Gap)
	}
	return gaps
}
