package entity

// IngredientCustomization es la fila que devuelve el backend por cada
// operación de ingrediente de un ítem ya persistido.
type IngredientCustomization struct {
	ID          uint   `json:"-" gorm:"primaryKey"`
	OrderItemID string `json:"-" gorm:"index"`

	IngredientID          string `json:"ingredientId"`
	IngredientDescription string `json:"ingredientDescription"`

	IsAdded   bool    `json:"isAdded"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unitPrice"`
}
