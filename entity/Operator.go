package entity

import (
	"gorm.io/gorm"
)

// Operator es el usuario local de la terminal; entra con PIN, no con la
// cuenta del backend.
type Operator struct {
	gorm.Model
	Name    string `json:"name" gorm:"uniqueIndex"`
	PinHash string `json:"-"`
	Role    string `json:"role"`
}
