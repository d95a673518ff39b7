package store

import (
	"context"

	"gorm.io/gorm"

	"github.com/hawkerhub/hawker-app/models"
)

type LocationStore struct {
	DB *gorm.DB
}

func NewLocationStore(db *gorm.DB) *LocationStore {
	return &LocationStore{DB: db}
}

func (ls *LocationStore) All(ctx context.Context) ([]models.Location, error) {
	var locations []models.Location
	if err := ls.DB.WithContext(ctx).Find(&locations).Error; err != nil {
		return nil, err
	}
	return locations, nil
}
