package models

// Flower is a single stem sold individually and usable in the bouquet
// composer.
type Flower struct {
	ID        int64   `json:"id"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Image     string  `json:"image"`
	Available int     `json:"available"`
}

// Bouquet is a pre-arranged catalog bouquet.
type Bouquet struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Image       string  `json:"image"`
}
