package entity

type Product struct {
	ID          string  `json:"id" gorm:"primaryKey"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	ImgURL      string  `json:"imgUrl"`
	IsActive    bool    `json:"isActive"`

	CategoryID string   `json:"categoryId"`
	Category   Category `json:"category"`

	// preload al armar el diálogo de personalización
	Ingredients []ProductIngredient `json:"ingredients" gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}

// OptionalIngredients devuelve solo los links editables; los obligatorios
// nunca entran a la selección.
func (p *Product) OptionalIngredients() []ProductIngredient {
	out := make([]ProductIngredient, 0, len(p.Ingredients))
	for _, pi := range p.Ingredients {
		if !pi.IsMandatory {
			out = append(out, pi)
		}
	}
	return out
}

// FindIngredient busca el link por id de ingrediente.
func (p *Product) FindIngredient(ingredientID string) (ProductIngredient, bool) {
	for _, pi := range p.Ingredients {
		if pi.IngredientID == ingredientID {
			return pi, true
		}
	}
	return ProductIngredient{}, false
}
