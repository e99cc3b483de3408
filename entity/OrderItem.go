package entity

type OrderItem struct {
	ID      string `json:"id" gorm:"primaryKey"`
	OrderID string `json:"orderId" gorm:"index"`

	ProductID string `json:"productId"`
	// Denormalizado para que el ticket no dependa del cache de catálogo
	ProductName string `json:"productName"`

	UnitPrice  float64 `json:"unitPrice"`
	TotalPrice float64 `json:"totalPrice"`
	Quantity   int     `json:"quantity"`

	Customizations []IngredientCustomization `json:"ingredientCustomizations" gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}
