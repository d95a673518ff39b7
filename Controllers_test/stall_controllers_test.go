package Controllers_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/hawkerhub/hawker-app/controllers"
	"github.com/hawkerhub/hawker-app/utils"
	"github.com/hawkerhub/hawker-app/view"
)

func setupStallRouter(db *gorm.DB) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	stallCtrl := controllers.NewStallController(db)
	searchCtrl := controllers.NewSearchController(db)
	r.GET("/hawkers/suggest", searchCtrl.Suggest)
	r.GET("/stall-info/:hawkerName", stallCtrl.GetStallPage)
	r.GET("/hawkers/:hawkerName/stalls", stallCtrl.GetStallsByHawker)
	return r
}

func TestSuggestFiltersByName(t *testing.T) {
	utils.InitLogger()
	db := setupTestDB(t, "ctrl_suggest")
	seedStallWithMenu(t, db)
	r := setupStallRouter(db)

	var resp struct {
		Data []string `json:"data"`
	}

	w := doJSON(r, "GET", "/hawkers/suggest?q=max", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, []string{"Maxwell Food Centre"}, resp.Data)

	w = doJSON(r, "GET", "/hawkers/suggest?q=zzz", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	resp.Data = nil
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Empty(t, resp.Data)

	// empty input yields no suggestions
	w = doJSON(r, "GET", "/hawkers/suggest?q=", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	resp.Data = nil
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Empty(t, resp.Data)
}

func TestStallPageRendersCards(t *testing.T) {
	utils.InitLogger()
	db := setupTestDB(t, "ctrl_stall_page")
	seedStallWithMenu(t, db)
	r := setupStallRouter(db)

	var resp struct {
		Data view.StallPage `json:"data"`
	}

	w := doJSON(r, "GET", "/stall-info/Maxwell%20Food%20Centre", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Data.Empty)
	require.Len(t, resp.Data.Cards, 1)
	assert.Equal(t, view.QueueHigh, resp.Data.Cards[0].QueueBand)
	assert.Equal(t, "Show Menu ▼", resp.Data.Cards[0].ToggleLabel)
}

func TestStallPageEmptyState(t *testing.T) {
	utils.InitLogger()
	db := setupTestDB(t, "ctrl_stall_empty")
	seedStallWithMenu(t, db)
	r := setupStallRouter(db)

	var resp struct {
		Data view.StallPage `json:"data"`
	}

	w := doJSON(r, "GET", "/stall-info/Ghost%20Centre", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Data.Empty)
	assert.Empty(t, resp.Data.Cards)
	assert.Equal(t, "No stalls found for this hawker centre.", resp.Data.EmptyMessage)
}

func TestStallsByHawkerCuisineFilter(t *testing.T) {
	utils.InitLogger()
	db := setupTestDB(t, "ctrl_stall_cuisine")
	seedStallWithMenu(t, db)
	r := setupStallRouter(db)

	var resp struct {
		Data []json.RawMessage `json:"data"`
	}

	w := doJSON(r, "GET", "/hawkers/Maxwell%20Food%20Centre/stalls?cuisine=chin", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Data, 1)

	w = doJSON(r, "GET", "/hawkers/Maxwell%20Food%20Centre/stalls?cuisine=french", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	resp.Data = nil
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Empty(t, resp.Data)
}
