package repository

import (
	"errors"

	"github.com/Spyboss/RealTaste-sub000/entity"

	"gorm.io/gorm"
)

type SettingsRepository struct {
	DB *gorm.DB
}

func NewSettingsRepository(db *gorm.DB) *SettingsRepository {
	return &SettingsRepository{DB: db}
}

// Get returns the singleton settings row, creating the default rate card on
// first use.
func (r *SettingsRepository) Get() (*entity.DeliverySettings, error) {
	var s entity.DeliverySettings
	err := r.DB.Order("id ASC").First(&s).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		s = entity.DeliverySettings{
			BaseFee:             180,
			PerKmFee:            40,
			MaxRangeKm:          5,
			MinOrderForDelivery: 0,
			DeliveryEnabled:     true,
		}
		err = r.DB.Create(&s).Error
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *SettingsRepository) Update(patch map[string]any) error {
	s, err := r.Get()
	if err != nil {
		return err
	}
	return r.DB.Model(s).Updates(patch).Error
}
