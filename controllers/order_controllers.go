package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/hawkerhub/hawker-app/live"
	"github.com/hawkerhub/hawker-app/middlewares"
	"github.com/hawkerhub/hawker-app/models"
	"github.com/hawkerhub/hawker-app/store"
	"github.com/hawkerhub/hawker-app/utils"
)

type OrderController struct {
	Orders *store.OrderStore
}

func NewOrderController(db *gorm.DB) *OrderController {
	return &OrderController{Orders: store.NewOrderStore(db)}
}

// Checkout turns the visitor's cart into an order and clears the cart.
func (oc *OrderController) Checkout(c *gin.Context) {
	customerID, ok := middlewares.CustomerID(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, errors.New("no active session"))
		return
	}

	order, err := oc.Orders.Checkout(c.Request.Context(), customerID)
	if errors.Is(err, store.ErrEmptyCart) {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	live.BroadcastCartCount(customerID, 0)
	utils.RespondJSON(c, http.StatusCreated, "Order placed", order)
}

// GetMyOrders lists the visitor's orders, newest first.
func (oc *OrderController) GetMyOrders(c *gin.Context) {
	orders := []models.Order{}
	if customerID, ok := middlewares.CustomerID(c); ok {
		var err error
		orders, err = oc.Orders.OrdersByCustomer(c.Request.Context(), customerID)
		if err != nil {
			utils.RespondError(c, http.StatusInternalServerError, err)
			return
		}
	}
	utils.RespondJSON(c, http.StatusOK, "Order history", orders)
}

func (oc *OrderController) GetOrderByID(c *gin.Context) {
	customerID, ok := middlewares.CustomerID(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, errors.New("no active session"))
		return
	}

	orderID, err := strconv.ParseUint(c.Param("orderId"), 10, 32)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("invalid order id"))
		return
	}

	order, err := oc.Orders.OrderByID(c.Request.Context(), uint(orderID))
	if errors.Is(err, store.ErrNotFound) {
		utils.RespondError(c, http.StatusNotFound, errors.New("order not found"))
		return
	}
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	if order.CustomerID != customerID {
		utils.RespondError(c, http.StatusForbidden, errors.New("not your order"))
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Order detail", order)
}

type updateStatusInput struct {
	Status models.OrderStatus `json:"status" binding:"required"`
}

// UpdateOrderStatus moves an order through the state machine; illegal
// transitions come back as 400. Only the order's owner may move it.
func (oc *OrderController) UpdateOrderStatus(c *gin.Context) {
	customerID, ok := middlewares.CustomerID(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, errors.New("no active session"))
		return
	}

	orderID, err := strconv.ParseUint(c.Param("orderId"), 10, 32)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("invalid order id"))
		return
	}

	var input updateStatusInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	ctx := c.Request.Context()
	order, err := oc.Orders.OrderByID(ctx, uint(orderID))
	if errors.Is(err, store.ErrNotFound) {
		utils.RespondError(c, http.StatusNotFound, errors.New("order not found"))
		return
	}
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	if order.CustomerID != customerID {
		utils.RespondError(c, http.StatusForbidden, errors.New("not your order"))
		return
	}

	order, err = oc.Orders.UpdateStatus(ctx, uint(orderID), input.Status)
	if errors.Is(err, store.ErrNotFound) {
		utils.RespondError(c, http.StatusNotFound, errors.New("order not found"))
		return
	}
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	live.BroadcastOrderUpdate(*order)
	utils.RespondJSON(c, http.StatusOK, "Order status updated", order)
}
