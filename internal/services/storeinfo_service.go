package services

import (
	"errors"

	"github.com/nookofwelshpool/nook-server/internal/models"
	"gorm.io/gorm"
)

var ErrInfoNotFound = errors.New("store info key not found")

type StoreInfoService struct {
	db *gorm.DB
}

func NewStoreInfoService(db *gorm.DB) *StoreInfoService {
	return &StoreInfoService{db: db}
}

// GetAll returns every store-info entry as a key/value map.
func (s *StoreInfoService) GetAll() (map[string]string, error) {
	var rows []models.StoreInfo
	if err := s.db.Order("info_key ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make(map[string]string, len(rows))
	for _, row := range rows {
		out[row.InfoKey] = row.InfoValue
	}
	return out, nil
}

func (s *StoreInfoService) GetByKey(key string) (*models.StoreInfo, error) {
	var row models.StoreInfo
	if err := s.db.Where("info_key = ?", key).First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInfoNotFound
		}
		return nil, err
	}
	return &row, nil
}
