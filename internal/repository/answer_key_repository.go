package repository

import (
	"p360_analytics_backend/internal/model"

	"gorm.io/gorm"
)

type AnswerKeyRepository struct {
	DB *gorm.DB
}

func NewAnswerKeyRepository(db *gorm.DB) *AnswerKeyRepository {
	return &AnswerKeyRepository{DB: db}
}

func (r *AnswerKeyRepository) FindAll() ([]model.AnswerKey, error) {
	var keys []model.AnswerKey
	err := r.DB.Find(&keys).Error
	if err != nil {
		return nil, err
	}
	return keys, nil
}

func (r *AnswerKeyRepository) DeleteAll() error {
	return r.DB.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&model.AnswerKey{}).Error
}

func (r *AnswerKeyRepository) CreateBatch(keys []model.AnswerKey, batchSize int) error {
	if len(keys) == 0 {
		return nil
	}
	return r.DB.CreateInBatches(keys, batchSize).Error
}
