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

type CartController struct {
	Cart    *store.CartStore
	Catalog *store.CatalogStore
}

func NewCartController(db *gorm.DB) *CartController {
	return &CartController{
		Cart:    store.NewCartStore(db),
		Catalog: store.NewCatalogStore(db),
	}
}

func itemIDParam(c *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("itemId"), 10, 32)
	if err != nil {
		return 0, errors.New("invalid item id")
	}
	return uint(id), nil
}

// pushCartCount refreshes the live cart badge after a mutation.
func (cc *CartController) pushCartCount(c *gin.Context, customerID uint) {
	count, err := cc.Cart.Count(c.Request.Context(), customerID)
	if err != nil {
		utils.ErrorLogger.Printf("cart count for badge: %v", err)
		return
	}
	live.BroadcastCartCount(customerID, count)
}

type addToCartInput struct {
	ItemID uint `json:"item_id" binding:"required"`
}

// AddToCart puts one unit of the menu item into the visitor's cart,
// incrementing the quantity if the item is already there.
func (cc *CartController) AddToCart(c *gin.Context) {
	customerID, ok := middlewares.CustomerID(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, errors.New("no active session"))
		return
	}

	var input addToCartInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	ctx := c.Request.Context()
	item, err := cc.Catalog.MenuItemByID(ctx, input.ItemID)
	if errors.Is(err, store.ErrNotFound) {
		utils.RespondError(c, http.StatusNotFound, errors.New("menu item not found"))
		return
	}
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	stall, err := cc.Catalog.StallByID(ctx, item.StallID)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	row, err := cc.Cart.AddItem(ctx, customerID, *item, stall.Name)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	cc.pushCartCount(c, customerID)
	utils.RespondJSON(c, http.StatusOK, "Added to cart", row)
}

type updateQuantityInput struct {
	Quantity int `json:"quantity"`
}

// UpdateQuantity overwrites the cart line's quantity; zero or less removes
// the line.
func (cc *CartController) UpdateQuantity(c *gin.Context) {
	customerID, ok := middlewares.CustomerID(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, errors.New("no active session"))
		return
	}

	itemID, err := itemIDParam(c)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	var input updateQuantityInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	err = cc.Cart.SetQuantity(c.Request.Context(), customerID, itemID, input.Quantity)
	if errors.Is(err, store.ErrNotFound) {
		utils.RespondError(c, http.StatusNotFound, errors.New("item not in cart"))
		return
	}
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	cc.pushCartCount(c, customerID)
	utils.RespondJSON(c, http.StatusOK, "Cart updated", gin.H{
		"item_id":  itemID,
		"quantity": input.Quantity,
	})
}

func (cc *CartController) GetItemQuantity(c *gin.Context) {
	itemID, err := itemIDParam(c)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	// no session: the item is simply not in any cart
	quantity := 0
	if customerID, ok := middlewares.CustomerID(c); ok {
		quantity, err = cc.Cart.ItemQuantity(c.Request.Context(), customerID, itemID)
		if err != nil {
			utils.RespondError(c, http.StatusInternalServerError, err)
			return
		}
	}
	utils.RespondJSON(c, http.StatusOK, "Cart quantity", gin.H{"item_id": itemID, "quantity": quantity})
}

func (cc *CartController) RemoveItem(c *gin.Context) {
	customerID, ok := middlewares.CustomerID(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, errors.New("no active session"))
		return
	}

	itemID, err := itemIDParam(c)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	if err := cc.Cart.RemoveItem(c.Request.Context(), customerID, itemID); err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	cc.pushCartCount(c, customerID)
	utils.RespondJSON(c, http.StatusOK, "Removed from cart", nil)
}

func (cc *CartController) GetCart(c *gin.Context) {
	items := []models.CartItem{}
	if customerID, ok := middlewares.CustomerID(c); ok {
		var err error
		items, err = cc.Cart.Items(c.Request.Context(), customerID)
		if err != nil {
			utils.RespondError(c, http.StatusInternalServerError, err)
			return
		}
	}
	utils.RespondJSON(c, http.StatusOK, "Cart items", items)
}

func (cc *CartController) GetCount(c *gin.Context) {
	count := 0
	if customerID, ok := middlewares.CustomerID(c); ok {
		var err error
		count, err = cc.Cart.Count(c.Request.Context(), customerID)
		if err != nil {
			utils.RespondError(c, http.StatusInternalServerError, err)
			return
		}
	}
	utils.RespondJSON(c, http.StatusOK, "Cart count", gin.H{"count": count})
}

func (cc *CartController) ClearCart(c *gin.Context) {
	customerID, ok := middlewares.CustomerID(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, errors.New("no active session"))
		return
	}

	if err := cc.Cart.Clear(c.Request.Context(), customerID); err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	cc.pushCartCount(c, customerID)
	utils.RespondJSON(c, http.StatusOK, "Cart cleared", nil)
}
