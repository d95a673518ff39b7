package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/hawkerhub/hawker-app/locator"
	"github.com/hawkerhub/hawker-app/store"
	"github.com/hawkerhub/hawker-app/utils"
)

type LocationController struct {
	Locations *store.LocationStore
	Map       *locator.Map
}

func NewLocationController(db *gorm.DB) *LocationController {
	locations := store.NewLocationStore(db)
	return &LocationController{
		Locations: locations,
		Map:       locator.New(locations),
	}
}

func (lc *LocationController) GetLocations(c *gin.Context) {
	locations, err := lc.Locations.All(c.Request.Context())
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Locations", locations)
}

// GetMarkers returns one marker per geotagged location for the map page.
func (lc *LocationController) GetMarkers(c *gin.Context) {
	markers, err := lc.Map.Load(c.Request.Context())
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Map markers", markers)
}

// RefreshMarkers clears all placed markers and redraws from scratch.
func (lc *LocationController) RefreshMarkers(c *gin.Context) {
	markers, err := lc.Map.Refresh(c.Request.Context())
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Map markers refreshed", markers)
}
