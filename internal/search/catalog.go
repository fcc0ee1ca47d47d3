package search

import "github.com/Houeta/browser-commerce/internal/models"

func furnitureCatalog() []models.ProductResult {
	return []models.ProductResult{
		models.NewProduct("Urban Sofa", "Fits spaces 8'–10'", "599", "Wayfair"),
		models.NewProduct("Compact Loveseat", "Room-friendly 52\" width", "449", "Wayfair"),
		models.NewProduct("Sectional 3-Piece", "Modular for any layout", "899", "Wayfair"),
	}
}

func amazonFurniture() []models.ProductResult {
	return []models.ProductResult{
		models.NewProduct("Modern Accent Sofa", "Amazon • Free delivery", "529", "Amazon"),
		models.NewProduct("Apartment Sofa", "Small space design", "379", "Amazon"),
	}
}

func footwearCatalog() []models.ProductResult {
	return []models.ProductResult{
		models.NewProduct("Nike Revolution 7", "Men's running shoes", "69.97", "Nike"),
		models.NewProduct("Nike Air Zoom Pegasus", "Lightweight cushioning", "79.99", "Nike"),
		models.NewProduct("Nike Downshifter 13", "Everyday runner", "64.99", "Nike"),
	}
}

func amazonFootwear() []models.ProductResult {
	return []models.ProductResult{
		models.NewProduct("Adidas Runfalcon 3", "Amazon • Prime", "62.99", "Amazon"),
		models.NewProduct("New Balance 540v5", "Amazon • Free shipping", "74.99", "Amazon"),
	}
}

// Comparison returns the side-by-side phone pair shown on the compare screen.
func Comparison() (models.ProductResult, models.ProductResult) {
	iphone := models.NewProduct("iPhone 16", "6.1\" • A18 • 128GB", "799", "Apple")
	pixel := models.NewProduct("Google Pixel 9", "6.3\" • Tensor G4 • 128GB", "799", "Google")
	return iphone, pixel
}
