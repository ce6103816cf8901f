package service

import (
	"p360_analytics_backend/internal/repository"
	"p360_analytics_backend/internal/util"
)

// FilterService alimenta os seletores do painel: UFs, municípios e IES.
type FilterService struct {
	StudentRepo  *repository.StudentRepository
	LocalityRepo *repository.LocalityRepository
}

func NewFilterService(
	studentRepo *repository.StudentRepository,
	localityRepo *repository.LocalityRepository,
) *FilterService {
	return &FilterService{
		StudentRepo:  studentRepo,
		LocalityRepo: localityRepo,
	}
}

// ListUFs devolve as UFs distintas em ordem alfabética.
func (s *FilterService) ListUFs() ([]string, error) {
	return s.LocalityRepo.DistinctUFs()
}

// ListMunicipios devolve os municípios de uma UF em ordem alfabética.
// A UF é normalizada como na ingestão (trim + caixa alta).
func (s *FilterService) ListMunicipios(uf string) ([]string, error) {
	return s.LocalityRepo.MunicipiosByUF(util.CleanUpper(uf))
}

// ListIES devolve as IES da região informada. UF e município vazios listam
// todas as IES da base.
func (s *FilterService) ListIES(uf, municipio string) ([]repository.IESEntry, error) {
	uf = util.CleanUpper(uf)
	municipio = util.CleanUpper(municipio)
	if uf == "" && municipio == "" {
		return s.StudentRepo.DistinctIES(nil)
	}
	cursos, err := s.LocalityRepo.CursosByRegion(uf, municipio)
	if err != nil {
		return nil, err
	}
	if len(cursos) == 0 {
		return []repository.IESEntry{}, nil
	}
	return s.StudentRepo.DistinctIES(cursos)
}
