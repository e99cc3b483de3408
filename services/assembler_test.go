package services

import (
	"testing"

	"github.com/estefano99/pedidos-pos/entity"
)

// Escenario de referencia: producto 100, sin A, un extra de B.
func scenarioItem(t *testing.T) entity.DraftItem {
	t.Helper()
	sel := NewSelection(testProduct(), nil, nil)
	if err := sel.ToggleDefault("a", false); err != nil {
		t.Fatal(err)
	}
	if err := sel.ToggleExtra("b", true); err != nil {
		t.Fatal(err)
	}
	return AssembleItem(sel, "")
}

func TestAssembleScenario(t *testing.T) {
	item := scenarioItem(t)

	if item.ID == "" {
		t.Fatal("el ítem debe recibir un id nuevo")
	}
	if item.TotalPrice != 115 {
		t.Fatalf("totalPrice = %v, se esperaba 115", item.TotalPrice)
	}
	if item.Quantity != 1 {
		t.Fatalf("quantity = %d, se esperaba 1", item.Quantity)
	}

	// Display: B base + 1 duplicado por el extra
	if got := ids(item.IncludedIngredients); len(got) != 2 || got[0] != "b" || got[1] != "b" {
		t.Fatalf("included = %v, se esperaba [b b]", got)
	}
	if got := ids(item.ExcludedIngredients); len(got) != 1 || got[0] != "a" {
		t.Fatalf("excluded = %v, se esperaba [a]", got)
	}

	// Operaciones: exclusión de A y extra de B (base+1) a 15
	if len(item.Operations) != 2 {
		t.Fatalf("operaciones = %v, se esperaban 2", item.Operations)
	}
	byID := map[string]entity.IngredientOperation{}
	for _, op := range item.Operations {
		byID[op.IngredientID] = op
	}
	a := byID["a"]
	if a.IsAdded || a.Quantity != 1 || a.UnitPrice != 0 {
		t.Fatalf("op de a = %+v, se esperaba {isAdded:false qty:1 price:0}", a)
	}
	b := byID["b"]
	if !b.IsAdded || b.Quantity != 2 || b.UnitPrice != 15 {
		t.Fatalf("op de b = %+v, se esperaba {isAdded:true qty:2 price:15}", b)
	}
}

func TestAssembleOperationGroups(t *testing.T) {
	// Todo por defecto: solo inclusiones base a precio 0
	sel := NewSelection(testProduct(), nil, nil)
	item := AssembleItem(sel, "")

	if len(item.Operations) != 2 {
		t.Fatalf("operaciones = %v, se esperaban 2 inclusiones base", item.Operations)
	}
	for _, op := range item.Operations {
		if !op.IsAdded || op.Quantity != 1 || op.UnitPrice != 0 {
			t.Fatalf("inclusión base inválida: %+v", op)
		}
	}
}

func TestAssembleKeepsExistingID(t *testing.T) {
	sel := NewSelection(testProduct(), nil, nil)
	item := AssembleItem(sel, "item-original")
	if item.ID != "item-original" {
		t.Fatalf("id = %q, la edición debe conservar el id", item.ID)
	}
}

// Round-trip del DTO: los sets de included/excluded se reconstruyen
// desde las operaciones.
func TestOperationsRoundTrip(t *testing.T) {
	item := scenarioItem(t)

	included := map[string]int{}
	excluded := map[string]bool{}
	for _, op := range item.Operations {
		if op.IsAdded {
			included[op.IngredientID] = op.Quantity
		} else {
			excluded[op.IngredientID] = true
		}
	}

	// Mismo conteo que la lista de display
	counts := map[string]int{}
	for _, ing := range item.IncludedIngredients {
		counts[ing.ID]++
	}
	for id, qty := range included {
		if counts[id] != qty {
			t.Errorf("%s: display=%d operaciones=%d", id, counts[id], qty)
		}
	}
	for _, ing := range item.ExcludedIngredients {
		if !excluded[ing.ID] {
			t.Errorf("%s excluido en display pero no en operaciones", ing.ID)
		}
	}
}

func TestItemExtrasByOccurrence(t *testing.T) {
	item := scenarioItem(t)

	extras := ItemExtras(item)
	if len(extras) != 1 {
		t.Fatalf("extras = %v, se esperaba 1", extras)
	}
	if extras[0].Ingredient.ID != "b" || extras[0].Quantity != 1 || extras[0].TotalPrice != 15 {
		t.Fatalf("extra = %+v, se esperaba b x1 a 15", extras[0])
	}

	// Sin duplicados no hay extras
	plain := AssembleItem(NewSelection(testProduct(), nil, nil), "")
	if got := ItemExtras(plain); len(got) != 0 {
		t.Fatalf("extras = %v, se esperaba vacío", got)
	}
}

// Editar un ítem rearma la misma selección.
func TestSelectionFromItem(t *testing.T) {
	item := scenarioItem(t)

	sel := SelectionFromItem(item)
	if sel.IsIncluded("a") {
		t.Fatal("a debería seguir sacado")
	}
	if q := sel.ExtraQuantity("b"); q != 1 {
		t.Fatalf("extra de b = %d, se esperaba 1", q)
	}
	if got := sel.Price(); got != item.TotalPrice {
		t.Fatalf("precio reconstruido = %v, se esperaba %v", got, item.TotalPrice)
	}
}
