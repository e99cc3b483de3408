package repository

import (
	"github.com/estefano99/pedidos-pos/entity"
	"gorm.io/gorm"
)

// Cache local del catálogo del tenant (productos, ingredientes,
// categorías) para que la terminal opere aunque el backend esté caído.
type CatalogRepository struct {
	DB *gorm.DB
}

func NewCatalogRepository(db *gorm.DB) *CatalogRepository {
	return &CatalogRepository{DB: db}
}

// ReplaceAll pisa el cache con el snapshot que bajó del backend.
func (r *CatalogRepository) ReplaceAll(categories []entity.Category, ingredients []entity.Ingredient, products []entity.Product) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		for _, t := range []any{
			&entity.ProductIngredient{}, &entity.Product{},
			&entity.Ingredient{}, &entity.Category{},
		} {
			if err := tx.Where("1 = 1").Delete(t).Error; err != nil {
				return err
			}
		}

		if len(categories) > 0 {
			if err := tx.Create(&categories).Error; err != nil {
				return err
			}
		}
		if len(ingredients) > 0 {
			if err := tx.Create(&ingredients).Error; err != nil {
				return err
			}
		}
		if len(products) > 0 {
			if err := tx.Create(&products).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// ListProducts devuelve los productos activos con sus ingredientes, como
// los necesita el diálogo de personalización.
func (r *CatalogRepository) ListProducts() ([]entity.Product, error) {
	var out []entity.Product
	err := r.DB.
		Preload("Category").
		Preload("Ingredients").
		Preload("Ingredients.Ingredient").
		Where("is_active = ?", true).
		Order("name").
		Find(&out).Error
	return out, err
}

func (r *CatalogRepository) GetProduct(id string) (*entity.Product, error) {
	var p entity.Product
	err := r.DB.
		Preload("Category").
		Preload("Ingredients").
		Preload("Ingredients.Ingredient").
		First(&p, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *CatalogRepository) ListIngredients() ([]entity.Ingredient, error) {
	var out []entity.Ingredient
	err := r.DB.Order("description").Find(&out).Error
	return out, err
}

func (r *CatalogRepository) ListCategories() ([]entity.Category, error) {
	var out []entity.Category
	err := r.DB.Order("description").Find(&out).Error
	return out, err
}
