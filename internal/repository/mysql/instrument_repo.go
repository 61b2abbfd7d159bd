package mysql

import (
	"Band_Plan/internal/model"

	"gorm.io/gorm"
)

type InstrumentRepository struct {
	DB *gorm.DB
}

func NewInstrumentRepository() *InstrumentRepository {
	return &InstrumentRepository{DB: DB}
}

func (r *InstrumentRepository) List() ([]model.Instrument, error) {
	var list []model.Instrument
	err := r.DB.Order("name").Find(&list).Error
	return list, err
}
