package services

import (
	"github.com/estefano99/pedidos-pos/backendapi"
	"github.com/estefano99/pedidos-pos/entity"
	"github.com/estefano99/pedidos-pos/repository"
)

// CatalogFetcher baja el snapshot del catálogo del backend.
type CatalogFetcher interface {
	FetchCatalog() (backendapi.Catalog, error)
}

// CatalogService sincroniza y sirve el catálogo cacheado.
type CatalogService struct {
	repo    *repository.CatalogRepository
	backend CatalogFetcher
}

func NewCatalogService(repo *repository.CatalogRepository, backend CatalogFetcher) *CatalogService {
	return &CatalogService{repo: repo, backend: backend}
}

// Sync pisa el cache local con lo que tenga el backend ahora.
func (s *CatalogService) Sync() error {
	cat, err := s.backend.FetchCatalog()
	if err != nil {
		return err
	}
	return s.repo.ReplaceAll(cat.Categories, cat.Ingredients, cat.Products)
}

func (s *CatalogService) Products() ([]entity.Product, error) {
	return s.repo.ListProducts()
}

func (s *CatalogService) Product(id string) (*entity.Product, error) {
	return s.repo.GetProduct(id)
}

func (s *CatalogService) Ingredients() ([]entity.Ingredient, error) {
	return s.repo.ListIngredients()
}

func (s *CatalogService) Categories() ([]entity.Category, error) {
	return s.repo.ListCategories()
}
