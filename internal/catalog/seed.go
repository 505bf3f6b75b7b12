package catalog

import (
	"github.com/shopspring/decimal"

	"github.com/BankaiXHunterr/icici-asset-flow-system/internal/models"
)

var seedCategories = []models.Category{
	{ID: "collateral-admin", Name: "Collateral managed by Admin", Department: models.DepartmentAdministration},
	{ID: "office-stationery", Name: "Office Stationery", Department: models.DepartmentAdministration},
	{ID: "business-cards-letterheads", Name: "Business Cards & Letterheads", Department: models.DepartmentAdministration},
	{ID: "promotional-materials", Name: "Promotional Materials", Department: models.DepartmentMarketing},
	{ID: "campaign-collaterals", Name: "Campaign Collaterals", Department: models.DepartmentMarketing},
	{ID: "event-materials", Name: "Event Materials", Department: models.DepartmentMarketing},
}

var seedProducts = []models.Product{
	{
		ID:               "1",
		Name:             "Envelopes",
		Description:      "Standard business envelopes with company branding",
		TAT:              "3-5 business days",
		Languages:        []string{"English", "Hindi"},
		CurrentInventory: 500,
		Rate:             decimal.RequireFromString("2.50"),
		CategoryID:       "collateral-admin",
	},
	{
		ID:               "2",
		Name:             "Visiting Cards",
		Description:      "Professional visiting cards with employee details",
		TAT:              "7-10 business days",
		Languages:        []string{"English"},
		CurrentInventory: 250,
		Rate:             decimal.RequireFromString("5.00"),
		CategoryID:       "collateral-admin",
	},
	{
		ID:               "3",
		Name:             "Notepads",
		Description:      "A5 ruled notepads with company letterhead",
		TAT:              "3-5 business days",
		Languages:        []string{"English"},
		CurrentInventory: 1000,
		Rate:             decimal.RequireFromString("18.00"),
		CategoryID:       "office-stationery",
	},
	{
		ID:               "4",
		Name:             "Letterheads",
		Description:      "Printed letterheads on 100 GSM paper",
		TAT:              "5-7 business days",
		Languages:        []string{"English", "Hindi"},
		CurrentInventory: 2000,
		Rate:             decimal.RequireFromString("1.75"),
		CategoryID:       "business-cards-letterheads",
	},
	{
		ID:               "5",
		Name:             "Product Brochures",
		Description:      "Tri-fold brochures for fund offerings",
		TAT:              "7-10 business days",
		Languages:        []string{"English", "Hindi", "Marathi"},
		CurrentInventory: 300,
		Rate:             decimal.RequireFromString("12.50"),
		CategoryID:       "promotional-materials",
	},
	{
		ID:               "6",
		Name:             "Roll-up Standees",
		Description:      "Branded roll-up standees for branch events",
		TAT:              "10-14 business days",
		Languages:        []string{"English"},
		CurrentInventory: 40,
		Rate:             decimal.RequireFromString("1450.00"),
		CategoryID:       "event-materials",
	},
}

// Default returns the built-in catalog
func Default() *Catalog {
	c, err := New(seedCategories, seedProducts)
	if err != nil {
		panic(err)
	}
	return c
}
