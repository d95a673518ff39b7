package store

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/hawkerhub/hawker-app/models"
	"github.com/hawkerhub/hawker-app/statemachine"
)

type OrderStore struct {
	DB *gorm.DB
}

func NewOrderStore(db *gorm.DB) *OrderStore {
	return &OrderStore{DB: db}
}

// Checkout snapshots the customer's cart into a new order and clears the
// cart, all in one transaction. Bumps each menu item's order counter so
// the bestseller query stays current.
func (os *OrderStore) Checkout(ctx context.Context, customerID uint) (*models.Order, error) {
	var order models.Order
	err := os.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var cartItems []models.CartItem
		if err := tx.Where("customer_id = ?", customerID).
			Order("id asc").Find(&cartItems).Error; err != nil {
			return err
		}
		if len(cartItems) == 0 {
			return ErrEmptyCart
		}

		order = models.Order{
			OrderNumber: fmt.Sprintf("HWK-%s", uuid.NewString()[:8]),
			CustomerID:  customerID,
			Status:      models.OrderPending,
		}
		for _, ci := range cartItems {
			order.Items = append(order.Items, models.OrderItem{
				StallID:   ci.StallID,
				StallName: ci.StallName,
				ItemID:    ci.ItemID,
				ItemName:  ci.ItemName,
				Price:     ci.Price,
				Quantity:  ci.Quantity,
			})
			order.TotalAmount += ci.Price * float64(ci.Quantity)
		}
		if err := tx.Create(&order).Error; err != nil {
			return err
		}

		for _, ci := range cartItems {
			if err := tx.Model(&models.MenuItem{}).
				Where("id = ?", ci.ItemID).
				Update("number_of_orders", gorm.Expr("number_of_orders + ?", ci.Quantity)).Error; err != nil {
				return err
			}
		}

		return tx.Where("customer_id = ?", customerID).
			Delete(&models.CartItem{}).Error
	})
	if err != nil {
		return nil, err
	}
	return &order, nil
}

// OrdersByCustomer lists a customer's orders, newest first.
func (os *OrderStore) OrdersByCustomer(ctx context.Context, customerID uint) ([]models.Order, error) {
	var orders []models.Order
	err := os.DB.WithContext(ctx).Preload("Items").
		Where("customer_id = ?", customerID).
		Order("created_at desc").
		Find(&orders).Error
	if err != nil {
		return nil, err
	}
	return orders, nil
}

func (os *OrderStore) OrderByID(ctx context.Context, orderID uint) (*models.Order, error) {
	var order models.Order
	err := os.DB.WithContext(ctx).Preload("Items").First(&order, orderID).Error
	if err != nil {
		return nil, wrapNotFound(err)
	}
	return &order, nil
}

// UpdateStatus moves the order through the state machine. Illegal
// transitions are rejected before anything is written.
func (os *OrderStore) UpdateStatus(ctx context.Context, orderID uint, status models.OrderStatus) (*models.Order, error) {
	var order models.Order
	err := os.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&order, orderID).Error; err != nil {
			return wrapNotFound(err)
		}
		if err := statemachine.CanTransition(order.Status, status); err != nil {
			return err
		}
		order.Status = status
		order.UpdatedAt = time.Now()
		return tx.Model(&order).
			Updates(map[string]interface{}{"status": status, "updated_at": order.UpdatedAt}).Error
	})
	if err != nil {
		return nil, err
	}
	return &order, nil
}
