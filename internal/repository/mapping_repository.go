package repository

import (
	"p360_analytics_backend/internal/model"

	"gorm.io/gorm"
)

type MappingRepository struct {
	DB *gorm.DB
}

func NewMappingRepository(db *gorm.DB) *MappingRepository {
	return &MappingRepository{DB: db}
}

func (r *MappingRepository) FindAll() ([]model.QuestionMapping, error) {
	var mappings []model.QuestionMapping
	err := r.DB.Find(&mappings).Error
	if err != nil {
		return nil, err
	}
	return mappings, nil
}

func (r *MappingRepository) DeleteAll() error {
	return r.DB.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&model.QuestionMapping{}).Error
}

func (r *MappingRepository) CreateBatch(mappings []model.QuestionMapping, batchSize int) error {
	if len(mappings) == 0 {
		return nil
	}
	return r.DB.CreateInBatches(mappings, batchSize).Error
}
