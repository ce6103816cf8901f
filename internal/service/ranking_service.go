package service

import (
	"p360_analytics_backend/internal/engine"
	"p360_analytics_backend/internal/repository"
	"p360_analytics_backend/internal/util"
)

type RankingService struct {
	StudentRepo  *repository.StudentRepository
	LocalityRepo *repository.LocalityRepository
	Context      *ExamContextService
}

func NewRankingService(
	studentRepo *repository.StudentRepository,
	localityRepo *repository.LocalityRepository,
	examContext *ExamContextService,
) *RankingService {
	return &RankingService{
		StudentRepo:  studentRepo,
		LocalityRepo: localityRepo,
		Context:      examContext,
	}
}

// Ranking é o leaderboard de instituições com a posição do curso consultado.
// Posicao 0 significa que o curso não pontuou na população filtrada.
type Ranking struct {
	Ranking []engine.RankingEntry `json:"ranking"`
	Posicao int                   `json:"posicao"`
	Total   int                   `json:"total"`
}

// GetRanking calcula o ranking geral, opcionalmente restrito a uma região
// (UF e/ou município, resolvidos para códigos de curso via localidades).
// limit > 0 corta o leaderboard devolvido; posição e total consideram a
// população inteira filtrada.
func (s *RankingService) GetRanking(coCurso int, uf, municipio string, limit int) (*Ranking, error) {
	records, err := s.StudentRepo.FindAll()
	if err != nil {
		return nil, err
	}

	var allowed map[int]bool
	if uf != "" || municipio != "" {
		cursos, err := s.LocalityRepo.CursosByRegion(util.CleanUpper(uf), util.CleanUpper(municipio))
		if err != nil {
			return nil, err
		}
		allowed = make(map[int]bool, len(cursos))
		for _, c := range cursos {
			allowed[c] = true
		}
	}

	entries, pos, total, err := engine.Rank(records, s.Context.Keys(), coCurso, allowed)
	if err != nil {
		return nil, err
	}

	for i := range entries {
		entries[i].MediaGeral = util.Round2(entries[i].MediaGeral)
	}
	if limit > 0 && len(entries) > limit {
		entries = entries[:limit]
	}

	return &Ranking{Ranking: entries, Posicao: pos, Total: total}, nil
}
