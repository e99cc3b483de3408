package entity

// Ingredient es data de referencia del catálogo; el backend es el dueño,
// acá solo se cachea para operar el turno sin conexión.
type Ingredient struct {
	ID          string  `json:"id" gorm:"primaryKey"`
	Description string  `json:"description"`
	ExtraPrice  float64 `json:"extraPrice"`
	IsActive    bool    `json:"isActive"`
}
