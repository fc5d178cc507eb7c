package view

import "github.com/mytheresa/storefront/models"

// Layout is the data every full page needs for its navigation.
type Layout struct {
	Categories []models.Category
	Brands     []models.Brand
	// ActiveCategory is the slug highlighted in the navigation.
	ActiveCategory string
}

// FilterParams echoes the catalog filters back into links and forms.
type FilterParams struct {
	Category string
	Brand    string
	Q        string
}

type CatalogData struct {
	Layout
	// BasePath is the catalog URL the filters apply to, with the category
	// path segment when there is one.
	BasePath        string
	Products        []models.Product
	CurrentCategory *models.Category
	CurrentBrand    *models.Brand
	Filters         FilterParams
	SearchQuery     string
	ShowSearch      bool
}

type ProductData struct {
	Layout
	Product *models.Product
	Related []models.Product
}

type PriceListData struct {
	Layout
	Products []models.Product
}
