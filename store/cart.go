package store

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/hawkerhub/hawker-app/models"
)

// CartStore owns the per-customer cart rows. Every operation takes the
// customer ID explicitly; there is no ambient session state.
type CartStore struct {
	DB *gorm.DB
}

func NewCartStore(db *gorm.DB) *CartStore {
	return &CartStore{DB: db}
}

// AddItem inserts a cart row with quantity 1, or bumps the quantity of the
// existing (customer, item) row. The upsert rides on the unique index over
// (customer_id, item_id), so two concurrent adds cannot create duplicates.
func (cs *CartStore) AddItem(ctx context.Context, customerID uint, item models.MenuItem, stallName string) (*models.CartItem, error) {
	row := models.CartItem{
		CustomerID: customerID,
		StallID:    item.StallID,
		StallName:  stallName,
		ItemID:     item.ID,
		ItemName:   item.Name,
		Price:      item.Price,
		Quantity:   1,
	}
	err := cs.DB.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "customer_id"}, {Name: "item_id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"quantity":   gorm.Expr("quantity + 1"),
			"updated_at": time.Now(),
		}),
	}).Create(&row).Error
	if err != nil {
		return nil, err
	}
	return cs.item(ctx, customerID, item.ID)
}

// SetQuantity overwrites the row's quantity. Zero or negative removes the
// row entirely; a quantity of zero is never stored.
func (cs *CartStore) SetQuantity(ctx context.Context, customerID, itemID uint, quantity int) error {
	if quantity <= 0 {
		return cs.RemoveItem(ctx, customerID, itemID)
	}
	res := cs.DB.WithContext(ctx).Model(&models.CartItem{}).
		Where("customer_id = ? AND item_id = ?", customerID, itemID).
		Update("quantity", quantity)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// ItemQuantity returns 0 when the item is not in the cart.
func (cs *CartStore) ItemQuantity(ctx context.Context, customerID, itemID uint) (int, error) {
	row, err := cs.item(ctx, customerID, itemID)
	if errors.Is(err, ErrNotFound) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return row.Quantity, nil
}

func (cs *CartStore) RemoveItem(ctx context.Context, customerID, itemID uint) error {
	return cs.DB.WithContext(ctx).
		Where("customer_id = ? AND item_id = ?", customerID, itemID).
		Delete(&models.CartItem{}).Error
}

func (cs *CartStore) Items(ctx context.Context, customerID uint) ([]models.CartItem, error) {
	var items []models.CartItem
	err := cs.DB.WithContext(ctx).
		Where("customer_id = ?", customerID).
		Order("id asc").
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

// Count is the sum of quantities across the cart, for the cart badge.
func (cs *CartStore) Count(ctx context.Context, customerID uint) (int, error) {
	var count int64
	err := cs.DB.WithContext(ctx).Model(&models.CartItem{}).
		Where("customer_id = ?", customerID).
		Select("COALESCE(SUM(quantity), 0)").
		Scan(&count).Error
	if err != nil {
		return 0, err
	}
	return int(count), nil
}

func (cs *CartStore) Clear(ctx context.Context, customerID uint) error {
	return cs.DB.WithContext(ctx).
		Where("customer_id = ?", customerID).
		Delete(&models.CartItem{}).Error
}

func (cs *CartStore) item(ctx context.Context, customerID, itemID uint) (*models.CartItem, error) {
	var row models.CartItem
	err := cs.DB.WithContext(ctx).
		Where("customer_id = ? AND item_id = ?", customerID, itemID).
		First(&row).Error
	if err != nil {
		return nil, wrapNotFound(err)
	}
	return &row, nil
}
