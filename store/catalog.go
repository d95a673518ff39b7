package store

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"github.com/hawkerhub/hawker-app/models"
)

// CatalogStore reads the hawker centre / stall / menu reference data.
// Everything here is read-only from the storefront's point of view.
type CatalogStore struct {
	DB *gorm.DB
}

func NewCatalogStore(db *gorm.DB) *CatalogStore {
	return &CatalogStore{DB: db}
}

func (cs *CatalogStore) Hawkers(ctx context.Context) ([]models.HawkerCentre, error) {
	var centres []models.HawkerCentre
	if err := cs.DB.WithContext(ctx).Order("name asc").Find(&centres).Error; err != nil {
		return nil, err
	}
	return centres, nil
}

// HawkerNames returns every centre name, for the search suggester.
func (cs *CatalogStore) HawkerNames(ctx context.Context) ([]string, error) {
	var names []string
	if err := cs.DB.WithContext(ctx).Model(&models.HawkerCentre{}).
		Order("name asc").Pluck("name", &names).Error; err != nil {
		return nil, err
	}
	return names, nil
}

func (cs *CatalogStore) HawkerByName(ctx context.Context, name string) (*models.HawkerCentre, error) {
	var centre models.HawkerCentre
	err := cs.DB.WithContext(ctx).Preload("Stalls.MenuItems").
		Where("name = ?", name).First(&centre).Error
	if err != nil {
		return nil, wrapNotFound(err)
	}
	return &centre, nil
}

func (cs *CatalogStore) StallsByHawkerName(ctx context.Context, hawkerName string) ([]models.Stall, error) {
	var stalls []models.Stall
	err := cs.DB.WithContext(ctx).
		Where("hawker_centre_name = ?", hawkerName).
		Find(&stalls).Error
	if err != nil {
		return nil, err
	}
	return stalls, nil
}

func (cs *CatalogStore) StallsByHawkerAndCuisine(ctx context.Context, hawkerName, cuisine string) ([]models.Stall, error) {
	var stalls []models.Stall
	err := cs.DB.WithContext(ctx).
		Where("hawker_centre_name = ?", hawkerName).
		Where("LOWER(cuisine) LIKE ?", "%"+strings.ToLower(cuisine)+"%").
		Find(&stalls).Error
	if err != nil {
		return nil, err
	}
	return stalls, nil
}

func (cs *CatalogStore) CuisinesByHawker(ctx context.Context, hawkerName string) ([]string, error) {
	var cuisines []string
	err := cs.DB.WithContext(ctx).Model(&models.Stall{}).
		Where("hawker_centre_name = ?", hawkerName).
		Distinct().Pluck("cuisine", &cuisines).Error
	if err != nil {
		return nil, err
	}
	return cuisines, nil
}

func (cs *CatalogStore) StallByID(ctx context.Context, stallID uint) (*models.Stall, error) {
	var stall models.Stall
	err := cs.DB.WithContext(ctx).Preload("MenuItems").
		First(&stall, stallID).Error
	if err != nil {
		return nil, wrapNotFound(err)
	}
	return &stall, nil
}

func (cs *CatalogStore) MenuItemsByStall(ctx context.Context, stallID uint) ([]models.MenuItem, error) {
	var items []models.MenuItem
	err := cs.DB.WithContext(ctx).
		Where("stall_id = ?", stallID).
		Order("id asc").
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

// BestsellerItems returns the stall's top n items by number of orders.
func (cs *CatalogStore) BestsellerItems(ctx context.Context, stallID uint, n int) ([]models.MenuItem, error) {
	var items []models.MenuItem
	err := cs.DB.WithContext(ctx).
		Where("stall_id = ?", stallID).
		Order("number_of_orders desc").
		Limit(n).
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (cs *CatalogStore) MenuItemsByCategory(ctx context.Context, stallID uint, category string) ([]models.MenuItem, error) {
	var items []models.MenuItem
	err := cs.DB.WithContext(ctx).
		Where("stall_id = ? AND category = ?", stallID, category).
		Order("id asc").
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (cs *CatalogStore) CategoriesByStall(ctx context.Context, stallID uint) ([]string, error) {
	var categories []string
	err := cs.DB.WithContext(ctx).Model(&models.MenuItem{}).
		Where("stall_id = ?", stallID).
		Distinct().Pluck("category", &categories).Error
	if err != nil {
		return nil, err
	}
	return categories, nil
}

func (cs *CatalogStore) MenuItemsByPriceRange(ctx context.Context, stallID uint, minPrice, maxPrice float64) ([]models.MenuItem, error) {
	var items []models.MenuItem
	err := cs.DB.WithContext(ctx).
		Where("stall_id = ? AND price >= ? AND price <= ?", stallID, minPrice, maxPrice).
		Order("id asc").
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (cs *CatalogStore) MenuItemByID(ctx context.Context, itemID uint) (*models.MenuItem, error) {
	var item models.MenuItem
	err := cs.DB.WithContext(ctx).First(&item, itemID).Error
	if err != nil {
		return nil, wrapNotFound(err)
	}
	return &item, nil
}
