package service

import (
	"context"

	"github.com/florista/storefront/internal/models"
	repository "github.com/florista/storefront/internal/repositories"
)

type CatalogService interface {
	ListFlowers(ctx context.Context) ([]models.Flower, error)
	ListBouquets(ctx context.Context) ([]models.Bouquet, error)
}

type catalogService struct {
	repo *repository.CatalogRepository
}

func NewCatalogService(repo *repository.CatalogRepository) CatalogService {
	return &catalogService{repo: repo}
}

func (s *catalogService) ListFlowers(_ context.Context) ([]models.Flower, error) {
	return s.repo.Flowers(), nil
}

func (s *catalogService) ListBouquets(_ context.Context) ([]models.Bouquet, error) {
	return s.repo.Bouquets(), nil
}
