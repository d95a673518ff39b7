package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/hawkerhub/hawker-app/store"
	"github.com/hawkerhub/hawker-app/utils"
	"github.com/hawkerhub/hawker-app/view"
)

type StallController struct {
	Catalog *store.CatalogStore
}

func NewStallController(db *gorm.DB) *StallController {
	return &StallController{Catalog: store.NewCatalogStore(db)}
}

// GetAllHawkers lists every hawker centre.
func (sc *StallController) GetAllHawkers(c *gin.Context) {
	centres, err := sc.Catalog.Hawkers(c.Request.Context())
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of hawker centres", centres)
}

// GetStallsByHawker lists a centre's stalls, optionally narrowed by an
// unanchored case-insensitive cuisine match (?cuisine=).
func (sc *StallController) GetStallsByHawker(c *gin.Context) {
	hawkerName := c.Param("hawkerName")
	if hawkerName == "" {
		hawkerName = c.Query("hawker")
	}
	if hawkerName == "" {
		utils.RespondError(c, http.StatusBadRequest, errors.New("no hawker centre selected"))
		return
	}

	ctx := c.Request.Context()
	var err error
	var stalls interface{}
	if cuisine := c.Query("cuisine"); cuisine != "" {
		stalls, err = sc.Catalog.StallsByHawkerAndCuisine(ctx, hawkerName, cuisine)
	} else {
		stalls, err = sc.Catalog.StallsByHawkerName(ctx, hawkerName)
	}
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of stalls", stalls)
}

// GetStallPage renders the stall-listing page for the centre named in the
// route (or the ?hawker= query). A missing name sends the visitor back to
// the homepage; an unknown centre or one with no stalls gets the
// empty-state page.
func (sc *StallController) GetStallPage(c *gin.Context) {
	hawkerName := c.Param("hawkerName")
	if hawkerName == "" {
		hawkerName = c.Query("hawker")
	}
	if hawkerName == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":   false,
			"message":  "No hawker centre selected. Returning to homepage.",
			"redirect": "/",
		})
		return
	}

	ctx := c.Request.Context()
	centre, err := sc.Catalog.HawkerByName(ctx, hawkerName)
	if errors.Is(err, store.ErrNotFound) {
		utils.RespondJSON(c, http.StatusOK, "Stall listing", view.BuildStallPage(hawkerName, nil))
		return
	}
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Stall listing", view.BuildStallPage(centre.Name, centre.Stalls))
}

func (sc *StallController) GetCuisinesByHawker(c *gin.Context) {
	hawkerName := c.Param("hawkerName")
	if hawkerName == "" {
		utils.RespondError(c, http.StatusBadRequest, errors.New("no hawker centre selected"))
		return
	}

	cuisines, err := sc.Catalog.CuisinesByHawker(c.Request.Context(), hawkerName)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Cuisine types", cuisines)
}

func (sc *StallController) GetStallByID(c *gin.Context) {
	stallID, err := strconv.ParseUint(c.Param("stallId"), 10, 32)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("invalid stall id"))
		return
	}

	stall, err := sc.Catalog.StallByID(c.Request.Context(), uint(stallID))
	if errors.Is(err, store.ErrNotFound) {
		utils.RespondError(c, http.StatusNotFound, errors.New("stall not found"))
		return
	}
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Stall detail", stall)
}
