package repository

import (
	"p360_analytics_backend/internal/model"

	"gorm.io/gorm"
)

type StudentRepository struct {
	DB *gorm.DB
}

func NewStudentRepository(db *gorm.DB) *StudentRepository {
	return &StudentRepository{DB: db}
}

func (r *StudentRepository) FindByCurso(coCurso int) ([]model.Student, error) {
	var students []model.Student
	err := r.DB.Where("co_curso = ?", coCurso).Find(&students).Error
	if err != nil {
		return nil, err
	}
	return students, nil
}

func (r *StudentRepository) FindAll() ([]model.Student, error) {
	var students []model.Student
	err := r.DB.Find(&students).Error
	if err != nil {
		return nil, err
	}
	return students, nil
}

type IESEntry struct {
	CoCurso int    `json:"co_curso"`
	IesNome string `json:"nome"`
}

// DistinctIES lista os cursos distintos, opcionalmente restritos a um
// conjunto de códigos (filtro regional), ordenados por nome.
func (r *StudentRepository) DistinctIES(cursos []int) ([]IESEntry, error) {
	var entries []IESEntry
	q := r.DB.Model(&model.Student{}).
		Distinct("co_curso", "ies_nome").
		Order("ies_nome")
	if cursos != nil {
		q = q.Where("co_curso IN ?", cursos)
	}
	err := q.Scan(&entries).Error
	if err != nil {
		return nil, err
	}
	return entries, nil
}

func (r *StudentRepository) DeleteAll() error {
	return r.DB.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&model.Student{}).Error
}

func (r *StudentRepository) CreateBatch(students []model.Student, batchSize int) error {
	if len(students) == 0 {
		return nil
	}
	return r.DB.CreateInBatches(students, batchSize).Error
}
