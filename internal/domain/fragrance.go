package domain

import "time"

// Concentration values accepted for a fragrance
const (
	EauDeToilette   = "Eau de Toilette"
	EauDeParfum     = "Eau de Parfum"
	Parfum          = "Parfum"
	EauDeCologne    = "Eau de Cologne"
	ExtraitDeParfum = "Extrait de Parfum"
)

// ValidConcentration reports whether c is one of the known concentrations
func ValidConcentration(c string) bool {
	switch c {
	case EauDeToilette, EauDeParfum, Parfum, EauDeCologne, ExtraitDeParfum:
		return true
	}
	return false
}

// Notes groups the olfactory pyramid of a fragrance
type Notes struct {
	Top     []string `json:"top,omitempty"`
	Middle  []string `json:"middle,omitempty"`
	Base    []string `json:"base,omitempty"`
	General []string `json:"general,omitempty"` // Notes without a pyramid position
}

// Price is one store offer for a fragrance
type Price struct {
	Store       string     `json:"store"`
	URL         string     `json:"url"`
	Price       float64    `json:"price"`
	InStock     bool       `json:"inStock"`
	LastChecked *time.Time `json:"lastChecked,omitempty"`
}

// Fragrance Model (catalog item)
type Fragrance struct {
	ID             uint      `gorm:"primaryKey" json:"id"`                                                           // Primary key
	Name           string    `gorm:"size:255;not null;uniqueIndex:idx_fragrance_brand_name,priority:2" json:"name"`  // Product name
	Brand          string    `gorm:"size:255;not null;uniqueIndex:idx_fragrance_brand_name,priority:1" json:"brand"` // Brand name
	CollectionName string    `gorm:"size:255" json:"collectionName,omitempty"`                                       // Optional collection
	Concentration  string    `gorm:"size:32;not null" json:"concentration"`                                          // One of the known concentrations
	Notes          Notes     `gorm:"serializer:json;type:json" json:"notes"`                                         // Note pyramid
	Slug           string    `gorm:"size:255;not null;uniqueIndex" json:"slug"`                                      // Route slug
	ImageURL       string    `gorm:"size:1024" json:"imageUrl,omitempty"`                                            // Product image
	BrandLogoURL   string    `gorm:"size:1024" json:"brandLogoUrl,omitempty"`                                        // Brand logo
	Prices         []Price   `gorm:"serializer:json;type:json" json:"prices"`                                        // Per-store prices
	CreatedAt      time.Time `json:"createdAt"`                                                                      // Creation timestamp
}
