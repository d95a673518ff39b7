package controllers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/hawkerhub/hawker-app/search"
	"github.com/hawkerhub/hawker-app/store"
	"github.com/hawkerhub/hawker-app/utils"
)

type SearchController struct {
	Catalog *store.CatalogStore
}

func NewSearchController(db *gorm.DB) *SearchController {
	return &SearchController{Catalog: store.NewCatalogStore(db)}
}

// Suggest backs the search box: returns the hawker centre names containing
// ?q= as a case-insensitive substring. Empty input yields no suggestions
// and skips the catalog read entirely.
func (sc *SearchController) Suggest(c *gin.Context) {
	q := strings.TrimSpace(c.Query("q"))
	if q == "" {
		utils.RespondJSON(c, http.StatusOK, "Suggestions", []string{})
		return
	}

	names, err := sc.Catalog.HawkerNames(c.Request.Context())
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	matches := search.Filter(names, q)
	if matches == nil {
		matches = []string{}
	}
	utils.RespondJSON(c, http.StatusOK, "Suggestions", matches)
}
