package locator_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hawkerhub/hawker-app/locator"
	"github.com/hawkerhub/hawker-app/models"
)

type fakeLocations struct {
	locations []models.Location
	err       error
	calls     int
}

func (f *fakeLocations) All(ctx context.Context) ([]models.Location, error) {
	f.calls++
	return f.locations, f.err
}

func f64(v float64) *float64 { return &v }

func TestLoadSkipsLocationsWithoutCoordinates(t *testing.T) {
	src := &fakeLocations{locations: []models.Location{
		{ID: 1, Name: "Maxwell Food Centre", Latitude: f64(1.2803), Longitude: f64(103.8445)},
		{ID: 2, Name: "No Coordinates"},
		{ID: 3, Name: "Half Coordinates", Latitude: f64(1.3)},
	}}
	m := locator.New(src)

	markers, err := m.Load(context.Background())
	require.NoError(t, err)
	require.Len(t, markers, 1)
	assert.Equal(t, uint(1), markers[0].ID)
	assert.Equal(t, 1.2803, markers[0].Latitude)
	assert.Equal(t, markers, m.Markers())
}

func TestPopupIsEscaped(t *testing.T) {
	src := &fakeLocations{locations: []models.Location{
		{
			ID:          1,
			Name:        "<script>alert(1)</script>",
			Address:     `5 "Quoted" Road`,
			Description: "nice & cheap",
			Latitude:    f64(1.0),
			Longitude:   f64(103.0),
		},
	}}
	m := locator.New(src)

	markers, err := m.Load(context.Background())
	require.NoError(t, err)
	require.Len(t, markers, 1)

	popup := markers[0].Popup
	assert.NotContains(t, popup, "<script>")
	assert.Contains(t, popup, "&lt;script&gt;alert(1)&lt;/script&gt;")
	assert.Contains(t, popup, "nice &amp; cheap")
}

func TestRefreshRedrawsFromScratch(t *testing.T) {
	src := &fakeLocations{locations: []models.Location{
		{ID: 1, Name: "Maxwell Food Centre", Latitude: f64(1.28), Longitude: f64(103.84)},
	}}
	m := locator.New(src)

	_, err := m.Load(context.Background())
	require.NoError(t, err)

	// the store changed; refresh must drop the old marker set entirely
	src.locations = []models.Location{
		{ID: 2, Name: "Lau Pa Sat", Latitude: f64(1.2806), Longitude: f64(103.8505)},
	}
	markers, err := m.Refresh(context.Background())
	require.NoError(t, err)
	require.Len(t, markers, 1)
	assert.Equal(t, uint(2), markers[0].ID)
	assert.Equal(t, 2, src.calls)
}

func TestLoadFailure(t *testing.T) {
	src := &fakeLocations{err: errors.New("store down")}
	m := locator.New(src)

	_, err := m.Load(context.Background())
	assert.Error(t, err)
	assert.Empty(t, m.Markers())
}
