package database

import (
	"gorm.io/gorm"

	"github.com/hawkerhub/hawker-app/catalog"
	"github.com/hawkerhub/hawker-app/models"
)

func f64(v float64) *float64 { return &v }

// Seed loads the hawker centre reference data on first start. Venues,
// stalls and menus are provisioned here and read-only afterwards; the
// seed is skipped once any centre exists.
func Seed(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.HawkerCentre{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	centres := []models.HawkerCentre{
		{
			Name:      "Maxwell Food Centre",
			Address:   "1 Kadayanallur St, Singapore 069184",
			Latitude:  f64(1.2803),
			Longitude: f64(103.8445),
			Stalls: []models.Stall{
				{
					HawkerCentreName: "Maxwell Food Centre",
					Name:             "Tian Tian Chicken Rice",
					Cuisine:          "Chinese",
					QueueLength:      25,
					Rating:           4.5,
					MenuItems: []models.MenuItem{
						{Name: "Chicken Rice", Price: 5.00, Category: "Rice", NumberOfOrders: 320},
						{Name: "Steamed Chicken (Half)", Price: 14.00, Category: "Rice", NumberOfOrders: 85},
						{Name: "Barley", Price: 1.50, Category: "Drinks", NumberOfOrders: 140},
					},
				},
				{
					HawkerCentreName: "Maxwell Food Centre",
					Name:             "Maxwell Fuzhou Oyster Cake",
					Cuisine:          "Chinese",
					QueueLength:      8,
					Rating:           4.2,
					MenuItems: []models.MenuItem{
						{Name: "Oyster Cake", Price: 3.00, Category: "Snacks", NumberOfOrders: 96},
						{Name: "Prawn Cake", Price: 3.50, Category: "Snacks", NumberOfOrders: 41},
					},
				},
			},
		},
		{
			Name:      "Old Airport Road Food Centre",
			Address:   "51 Old Airport Rd, Singapore 390051",
			Latitude:  f64(1.3081),
			Longitude: f64(103.8858),
			Stalls: []models.Stall{
				{
					HawkerCentreName: "Old Airport Road Food Centre",
					Name:             "Nam Sing Hokkien Fried Mee",
					Cuisine:          "Chinese",
					QueueLength:      15,
					Rating:           4.3,
					MenuItems: []models.MenuItem{
						{Name: "Hokkien Mee", Price: 5.00, Category: "Noodles", NumberOfOrders: 210},
						{Name: "Hokkien Mee (Large)", Price: 8.00, Category: "Noodles", NumberOfOrders: 74},
					},
				},
				{
					HawkerCentreName: "Old Airport Road Food Centre",
					Name:             "Selera Rasa Nasi Lemak",
					Cuisine:          "Malay",
					QueueLength:      12,
					Rating:           4.4,
					MenuItems: []models.MenuItem{
						{Name: "Nasi Lemak Set", Price: 4.50, Category: "Rice", NumberOfOrders: 180},
						{Name: "Teh Tarik", Price: 1.80, Category: "Drinks", NumberOfOrders: 95},
					},
				},
			},
		},
		{
			Name:      "Lau Pa Sat",
			Address:   "18 Raffles Quay, Singapore 048582",
			Latitude:  f64(1.2806),
			Longitude: f64(103.8505),
			Stalls: []models.Stall{
				{
					HawkerCentreName: "Lau Pa Sat",
					Name:             "Satay Street Stall 7",
					Cuisine:          "Malay",
					QueueLength:      5,
					Rating:           4.0,
					MenuItems: []models.MenuItem{
						{Name: "Chicken Satay (10 sticks)", Price: 8.00, Category: "Grill", NumberOfOrders: 150},
						{Name: "Mutton Satay (10 sticks)", Price: 9.00, Category: "Grill", NumberOfOrders: 62},
					},
				},
			},
		},
	}

	if err := db.Create(&centres).Error; err != nil {
		return err
	}

	return seedLocations(db, centres)
}

// SeedFromCatalog loads the reference data from a static catalog document
// instead of the built-in seed. Same skip-if-present rule as Seed.
func SeedFromCatalog(db *gorm.DB, static *catalog.Static) error {
	var count int64
	if err := db.Model(&models.HawkerCentre{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	var centres []models.HawkerCentre
	for _, h := range static.Hawkers() {
		centre := models.HawkerCentre{Name: h.Hawker}
		for _, s := range h.Stalls {
			stall := models.Stall{
				HawkerCentreName: h.Hawker,
				Name:             s.Name,
				Cuisine:          s.Cuisine,
				QueueLength:      s.QueueLength,
				Rating:           s.Rating,
			}
			for _, m := range s.Menu {
				stall.MenuItems = append(stall.MenuItems, models.MenuItem{
					Name:  m.Item,
					Price: m.Price,
				})
			}
			centre.Stalls = append(centre.Stalls, stall)
		}
		centres = append(centres, centre)
	}
	if len(centres) == 0 {
		return nil
	}
	if err := db.Create(&centres).Error; err != nil {
		return err
	}
	return seedLocations(db, centres)
}

// seedLocations puts one map marker per geotagged centre.
func seedLocations(db *gorm.DB, centres []models.HawkerCentre) error {
	locations := make([]models.Location, 0, len(centres))
	for _, c := range centres {
		if c.Latitude == nil || c.Longitude == nil {
			continue
		}
		locations = append(locations, models.Location{
			Name:        c.Name,
			Address:     c.Address,
			Latitude:    c.Latitude,
			Longitude:   c.Longitude,
			Description: "Hawker centre",
		})
	}
	if len(locations) == 0 {
		return nil
	}
	return db.Create(&locations).Error
}
