package Controllers_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/hawkerhub/hawker-app/controllers"
	"github.com/hawkerhub/hawker-app/middlewares"
	"github.com/hawkerhub/hawker-app/models"
	"github.com/hawkerhub/hawker-app/utils"
)

func setupOrderRouter(db *gorm.DB) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	orderCtrl := controllers.NewOrderController(db)

	g := r.Group("/orders")
	g.Use(middlewares.AuthMiddleware())
	{
		g.GET("/:orderId", orderCtrl.GetOrderByID)
		g.PATCH("/:orderId", orderCtrl.UpdateOrderStatus)
	}
	return r
}

func TestOrderStatusScopedToOwner(t *testing.T) {
	utils.InitLogger()
	db := setupTestDB(t, "ctrl_order_owner")

	owner := models.Customer{Name: "Jia Ling", Email: "jialing@example.com", PasswordHash: "x"}
	require.NoError(t, db.Create(&owner).Error)
	other := models.Customer{Name: "Wei Ming", Email: "weiming@example.com", PasswordHash: "x"}
	require.NoError(t, db.Create(&other).Error)
	ownerToken, err := utils.GenerateToken(owner.ID)
	require.NoError(t, err)
	otherToken, err := utils.GenerateToken(other.ID)
	require.NoError(t, err)

	order := models.Order{
		OrderNumber: "HWK-aa11bb22",
		CustomerID:  owner.ID,
		Status:      models.OrderPending,
		TotalAmount: 5.00,
	}
	require.NoError(t, db.Create(&order).Error)

	r := setupOrderRouter(db)

	// another customer cannot move the order, and it stays untouched
	w := doJSON(r, "PATCH", fmt.Sprintf("/orders/%d", order.ID), otherToken, gin.H{"status": "preparing"})
	assert.Equal(t, http.StatusForbidden, w.Code)

	var got models.Order
	require.NoError(t, db.First(&got, order.ID).Error)
	assert.Equal(t, models.OrderPending, got.Status)

	// the owner can
	w = doJSON(r, "PATCH", fmt.Sprintf("/orders/%d", order.ID), ownerToken, gin.H{"status": "preparing"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	// detail reads are scoped the same way
	w = doJSON(r, "GET", fmt.Sprintf("/orders/%d", order.ID), otherToken, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)
	w = doJSON(r, "GET", fmt.Sprintf("/orders/%d", order.ID), ownerToken, nil)
	assert.Equal(t, http.StatusOK, w.Code)
}
