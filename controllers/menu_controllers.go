package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/hawkerhub/hawker-app/models"
	"github.com/hawkerhub/hawker-app/store"
	"github.com/hawkerhub/hawker-app/utils"
)

type MenuController struct {
	Catalog *store.CatalogStore
}

func NewMenuController(db *gorm.DB) *MenuController {
	return &MenuController{Catalog: store.NewCatalogStore(db)}
}

func stallIDParam(c *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("stallId"), 10, 32)
	if err != nil {
		return 0, errors.New("invalid stall id")
	}
	return uint(id), nil
}

// GetMenuByStall lists a stall's menu, optionally narrowed by ?category=
// or a ?min_price=&max_price= range.
func (mc *MenuController) GetMenuByStall(c *gin.Context) {
	stallID, err := stallIDParam(c)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	ctx := c.Request.Context()
	var items []models.MenuItem
	switch {
	case c.Query("category") != "":
		items, err = mc.Catalog.MenuItemsByCategory(ctx, stallID, c.Query("category"))
	case c.Query("min_price") != "" || c.Query("max_price") != "":
		minPrice, perr := strconv.ParseFloat(c.DefaultQuery("min_price", "0"), 64)
		if perr != nil {
			utils.RespondError(c, http.StatusBadRequest, errors.New("invalid min_price"))
			return
		}
		maxPrice, perr := strconv.ParseFloat(c.DefaultQuery("max_price", "999999"), 64)
		if perr != nil {
			utils.RespondError(c, http.StatusBadRequest, errors.New("invalid max_price"))
			return
		}
		items, err = mc.Catalog.MenuItemsByPriceRange(ctx, stallID, minPrice, maxPrice)
	default:
		items, err = mc.Catalog.MenuItemsByStall(ctx, stallID)
	}
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Menu items", items)
}

// GetBestsellers returns the stall's top items by number of orders,
// 3 by default (?limit= to override).
func (mc *MenuController) GetBestsellers(c *gin.Context) {
	stallID, err := stallIDParam(c)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	limit, err := strconv.Atoi(c.DefaultQuery("limit", "3"))
	if err != nil || limit <= 0 {
		utils.RespondError(c, http.StatusBadRequest, errors.New("invalid limit"))
		return
	}

	items, err := mc.Catalog.BestsellerItems(c.Request.Context(), stallID, limit)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Bestseller items", items)
}

func (mc *MenuController) GetCategoriesByStall(c *gin.Context) {
	stallID, err := stallIDParam(c)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	categories, err := mc.Catalog.CategoriesByStall(c.Request.Context(), stallID)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Menu categories", categories)
}
