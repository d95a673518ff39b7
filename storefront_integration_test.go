package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/hawkerhub/hawker-app/database"
	"github.com/hawkerhub/hawker-app/models"
	"github.com/hawkerhub/hawker-app/router"
	"github.com/hawkerhub/hawker-app/utils"
)

func request(r *gin.Engine, method, url, token string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, url, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// TestStorefrontFlow walks the whole visitor journey: search a hawker
// centre, view its stalls, add a dish to the cart, check out and track
// the order.
func TestStorefrontFlow(t *testing.T) {
	utils.InitLogger()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open("file:integration?mode=memory&cache=shared"), &gorm.Config{})
	require.NoError(t, err)
	autoMigrate(db)
	require.NoError(t, database.Seed(db))

	r := router.SetupRouter(db)

	// register and log in
	w := request(r, "POST", "/register", "", gin.H{
		"name":     "Jia Ling",
		"email":    "jialing@example.com",
		"password": "kopi-o-kosong",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var loginResp struct {
		Data struct {
			Token string `json:"token"`
		} `json:"data"`
	}
	w = request(r, "POST", "/login", "", gin.H{
		"email":    "jialing@example.com",
		"password": "kopi-o-kosong",
	})
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &loginResp))
	token := loginResp.Data.Token
	require.NotEmpty(t, token)

	// type-ahead search finds the seeded centre
	var suggestResp struct {
		Data []string `json:"data"`
	}
	w = request(r, "GET", "/hawkers/suggest?q=maxwell", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &suggestResp))
	require.Contains(t, suggestResp.Data, "Maxwell Food Centre")

	// the stall page renders cards for the centre
	var pageResp struct {
		Data struct {
			Empty bool `json:"empty"`
			Cards []struct {
				StallID   uint   `json:"stall_id"`
				QueueBand string `json:"queue_band"`
			} `json:"cards"`
		} `json:"data"`
	}
	w = request(r, "GET", "/stall-info/Maxwell%20Food%20Centre", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &pageResp))
	assert.False(t, pageResp.Data.Empty)
	require.NotEmpty(t, pageResp.Data.Cards)

	// add a seeded dish to the cart twice
	var item models.MenuItem
	require.NoError(t, db.Where("name = ?", "Chicken Rice").First(&item).Error)
	for i := 0; i < 2; i++ {
		w = request(r, "POST", "/cart/items", token, gin.H{"item_id": item.ID})
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	}

	var countResp struct {
		Data struct {
			Count int `json:"count"`
		} `json:"data"`
	}
	w = request(r, "GET", "/cart/count", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &countResp))
	assert.Equal(t, 2, countResp.Data.Count)

	// checkout empties the cart and opens a pending order
	var checkoutResp struct {
		Data models.Order `json:"data"`
	}
	w = request(r, "POST", "/orders/checkout", token, nil)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &checkoutResp))
	order := checkoutResp.Data
	assert.Equal(t, models.OrderPending, order.Status)
	assert.InDelta(t, 10.00, order.TotalAmount, 0.001)

	w = request(r, "GET", "/cart/count", token, nil)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &countResp))
	assert.Equal(t, 0, countResp.Data.Count)

	// order history, newest first
	var ordersResp struct {
		Data []models.Order `json:"data"`
	}
	w = request(r, "GET", "/orders", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &ordersResp))
	require.Len(t, ordersResp.Data, 1)
	assert.Equal(t, order.OrderNumber, ordersResp.Data[0].OrderNumber)

	// the stall starts preparing; skipping ahead is rejected
	w = request(r, "PATCH", fmt.Sprintf("/orders/%d", order.ID), token, gin.H{"status": "preparing"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	w = request(r, "PATCH", fmt.Sprintf("/orders/%d", order.ID), token, gin.H{"status": "pending"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
