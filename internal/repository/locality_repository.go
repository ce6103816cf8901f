package repository

import (
	"p360_analytics_backend/internal/model"

	"gorm.io/gorm"
)

type LocalityRepository struct {
	DB *gorm.DB
}

func NewLocalityRepository(db *gorm.DB) *LocalityRepository {
	return &LocalityRepository{DB: db}
}

func (r *LocalityRepository) FindByCurso(coCurso int) (*model.Locality, error) {
	var loc model.Locality
	err := r.DB.Where("co_curso = ?", coCurso).First(&loc).Error
	if err != nil {
		return nil, err
	}
	return &loc, nil
}

func (r *LocalityRepository) DistinctUFs() ([]string, error) {
	var ufs []string
	err := r.DB.Model(&model.Locality{}).
		Distinct("sigla_estado").
		Where("sigla_estado <> ''").
		Order("sigla_estado").
		Pluck("sigla_estado", &ufs).Error
	if err != nil {
		return nil, err
	}
	return ufs, nil
}

func (r *LocalityRepository) MunicipiosByUF(uf string) ([]string, error) {
	var municipios []string
	err := r.DB.Model(&model.Locality{}).
		Distinct("ies_munic").
		Where("sigla_estado = ? AND ies_munic <> ''", uf).
		Order("ies_munic").
		Pluck("ies_munic", &municipios).Error
	if err != nil {
		return nil, err
	}
	return municipios, nil
}

// CursosByRegion resolve um filtro regional (UF e/ou município) para o
// conjunto de códigos de curso da região. Strings vazias não filtram.
func (r *LocalityRepository) CursosByRegion(uf, municipio string) ([]int, error) {
	q := r.DB.Model(&model.Locality{})
	if uf != "" {
		q = q.Where("sigla_estado = ?", uf)
	}
	if municipio != "" {
		q = q.Where("ies_munic = ?", municipio)
	}

	var cursos []int
	err := q.Pluck("co_curso", &cursos).Error
	if err != nil {
		return nil, err
	}
	return cursos, nil
}

func (r *LocalityRepository) DeleteAll() error {
	return r.DB.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&model.Locality{}).Error
}

func (r *LocalityRepository) CreateBatch(locs []model.Locality, batchSize int) error {
	if len(locs) == 0 {
		return nil
	}
	return r.DB.CreateInBatches(locs, batchSize).Error
}
