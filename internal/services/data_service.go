package services

import (
	"gorm.io/gorm"

	"github.com/autoassist/auto-assist-api/internal/models"
)

// DataService serves the seeded brand and color catalogs.
type DataService struct {
	db *gorm.DB
}

func NewDataService(db *gorm.DB) *DataService {
	return &DataService{db: db}
}

func (s *DataService) Brands() ([]models.VehicleBrand, error) {
	var brands []models.VehicleBrand
	if err := s.db.Order("name").Find(&brands).Error; err != nil {
		return nil, err
	}
	if len(brands) == 0 {
		return nil, ErrNoCatalogData
	}
	return brands, nil
}

func (s *DataService) Colors() ([]models.VehicleColor, error) {
	var colors []models.VehicleColor
	if err := s.db.Order("name").Find(&colors).Error; err != nil {
		return nil, err
	}
	if len(colors) == 0 {
		return nil, ErrNoCatalogData
	}
	return colors, nil
}
