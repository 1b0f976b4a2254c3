package repository

import "github.com/florista/storefront/internal/models"

// CatalogRepository holds the static storefront catalog. It is seeded once
// and immutable afterwards, so reads need no locking.
type CatalogRepository struct {
	flowers  []models.Flower
	bouquets []models.Bouquet
	byID     map[int64]models.Flower
}

func NewCatalogRepository() *CatalogRepository {

	flowers := []models.Flower{
		{ID: 1, Name: "Red Rose", Price: 150, Image: "/images/flowers/red-rose.jpg", Available: 50},
		{ID: 2, Name: "Chamomile", Price: 100, Image: "/images/flowers/chamomile.jpg", Available: 30},
		{ID: 3, Name: "Yellow Tulip", Price: 120, Image: "/images/flowers/yellow-tulip.jpg", Available: 40},
		{ID: 4, Name: "Lily", Price: 200, Image: "/images/flowers/lily.jpg", Available: 25},
	}

	bouquets := []models.Bouquet{
		{ID: 1, Name: "Tenderness", Description: "Pink roses with greenery", Price: 2500, Image: "/images/bouquets/tenderness.jpg"},
		{ID: 2, Name: "Provence", Description: "Lavender with white flowers", Price: 1800, Image: "/images/bouquets/provence.jpg"},
		{ID: 3, Name: "Spring Mix", Description: "Tulips and roses", Price: 3200, Image: "/images/bouquets/spring-mix.jpg"},
	}

	byID := make(map[int64]models.Flower, len(flowers))
	for _, f := range flowers {
		byID[f.ID] = f
	}

	return &CatalogRepository{flowers: flowers, bouquets: bouquets, byID: byID}
}

func (r *CatalogRepository) Flowers() []models.Flower {
	out := make([]models.Flower, len(r.flowers))
	copy(out, r.flowers)

	return out
}

func (r *CatalogRepository) Bouquets() []models.Bouquet {
	out := make([]models.Bouquet, len(r.bouquets))
	copy(out, r.bouquets)

	return out
}

func (r *CatalogRepository) FlowerByID(id int64) (models.Flower, bool) {
	f, ok := r.byID[id]

	return f, ok
}
