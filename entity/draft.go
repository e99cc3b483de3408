package entity

import (
	"time"
)

// IngredientOperation es la unidad del DTO hacia el backend: el backend
// solo entiende operaciones discretas de agregar/sacar con cantidad y
// precio unitario.
//
// Invariante: inclusión/exclusión base → UnitPrice 0 (ya lo cubre el
// precio del producto); extra → Quantity = extras+1 y UnitPrice =
// ExtraPrice del ingrediente.
type IngredientOperation struct {
	IngredientID string  `json:"ingredientId"`
	IsAdded      bool    `json:"isAdded"`
	Quantity     int     `json:"quantity"`
	UnitPrice    float64 `json:"unitPrice"`
}

// DraftItem es el ítem en memoria antes de mandar la orden. Es un
// snapshot: el precio se estampa al armarlo y no se recalcula después.
//
// IncludedIngredients puede repetir un ingrediente: N apariciones = 1
// base + N-1 extras. El resumen de la UI cuenta ocurrencias.
type DraftItem struct {
	ID                  string                `json:"id"`
	Product             Product               `json:"product"`
	IncludedIngredients []Ingredient          `json:"includedIngredients"`
	ExcludedIngredients []Ingredient          `json:"excludedIngredients"`
	TotalPrice          float64               `json:"totalPrice"`
	Quantity            int                   `json:"quantity"`
	Operations          []IngredientOperation `json:"ingredientsForBackend"`
}

// DraftOrder es la orden local mutable previa al envío. Una sola viva a
// la vez; al confirmarse pasa a ser propiedad del backend.
type DraftOrder struct {
	ID            string      `json:"id"`
	CustomerName  string      `json:"customerName"`
	ScheduledTime *time.Time  `json:"scheduledTime,omitempty"`
	Items         []DraftItem `json:"items"`
	Total         float64     `json:"total"`
	Status        OrderStatus `json:"status"`
	Source        OrderSource `json:"source"`
	TenantID      string      `json:"tenantId"`
}
