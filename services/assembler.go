package services

import (
	"github.com/estefano99/pedidos-pos/entity"
	"github.com/google/uuid"
)

// AssembleItem congela la selección en un DraftItem listo para el
// carrito y el backend. existingID != "" en el path de edición, así el
// ítem reemplazado conserva su id.
func AssembleItem(sel *Selection, existingID string) entity.DraftItem {
	id := existingID
	if id == "" {
		id = uuid.NewString()
	}

	product := sel.Product()
	extras := sel.Extras()

	// Lista de display: cada base una vez, y cada extra repetido N veces
	// más. El resumen de la UI deduce cantidades contando ocurrencias.
	included := sel.Included()
	for _, ex := range extras {
		for i := 0; i < ex.Quantity; i++ {
			included = append(included, ex.Ingredient)
		}
	}

	// Tres grupos disjuntos de operaciones; el backend no depende del
	// orden entre ellas.
	ops := make([]entity.IngredientOperation, 0, len(included)+len(sel.Excluded()))
	for _, ing := range sel.Included() {
		if sel.ExtraQuantity(ing.ID) > 0 {
			continue // va en el grupo de extras
		}
		ops = append(ops, entity.IngredientOperation{
			IngredientID: ing.ID,
			IsAdded:      true,
			Quantity:     1,
			UnitPrice:    0,
		})
	}
	for _, ing := range sel.Excluded() {
		ops = append(ops, entity.IngredientOperation{
			IngredientID: ing.ID,
			IsAdded:      false,
			Quantity:     1,
			UnitPrice:    0,
		})
	}
	for _, ex := range extras {
		ops = append(ops, entity.IngredientOperation{
			IngredientID: ex.Ingredient.ID,
			IsAdded:      true,
			Quantity:     ex.Quantity + 1, // base + extras
			UnitPrice:    ex.Ingredient.ExtraPrice,
		})
	}

	return entity.DraftItem{
		ID:                  id,
		Product:             product,
		IncludedIngredients: included,
		ExcludedIngredients: sel.Excluded(),
		TotalPrice:          sel.Price(),
		Quantity:            1,
		Operations:          ops,
	}
}

// ItemExtra es un extra deducido de la lista de display por conteo de
// ocurrencias (lo que muestra la tarjeta del carrito).
type ItemExtra struct {
	Ingredient entity.Ingredient `json:"ingredient"`
	Quantity   int               `json:"quantity"`
	TotalPrice float64           `json:"totalPrice"`
}

// ItemExtras reconstruye los extras de un ítem contando duplicados en
// IncludedIngredients: N apariciones = base + N-1 extras.
func ItemExtras(item entity.DraftItem) []ItemExtra {
	counts := make(map[string]int)
	for _, ing := range item.IncludedIngredients {
		counts[ing.ID]++
	}

	out := []ItemExtra{}
	seen := make(map[string]bool)
	for _, ing := range item.IncludedIngredients {
		if counts[ing.ID] <= 1 || seen[ing.ID] {
			continue
		}
		seen[ing.ID] = true
		extraQty := counts[ing.ID] - 1
		out = append(out, ItemExtra{
			Ingredient: ing,
			Quantity:   extraQty,
			TotalPrice: ing.ExtraPrice * float64(extraQty),
		})
	}
	return out
}

// SelectionFromItem rearma la selección de un ítem existente (path de
// edición del carrito).
func SelectionFromItem(item entity.DraftItem) *Selection {
	return NewSelection(item.Product, item.IncludedIngredients, item.ExcludedIngredients)
}
