package entity

// ProductIngredient vincula producto ↔ ingrediente. IsMandatory = no se
// puede sacar ni personalizar.
type ProductIngredient struct {
	ID           uint   `json:"-" gorm:"primaryKey"`
	ProductID    string `json:"productId" gorm:"index"`
	IngredientID string `json:"ingredientId"`
	IsMandatory  bool   `json:"isMandatory"`

	Ingredient Ingredient `json:"ingredient"`
}
