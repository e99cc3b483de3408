package services

import (
	"testing"

	"github.com/estefano99/pedidos-pos/entity"
)

// Producto de prueba: precio 100, A (extra 10) y B (extra 15) opcionales
// default-incluidos, Masa obligatoria.
func testProduct() entity.Product {
	return entity.Product{
		ID:    "prod-1",
		Name:  "Muzzarella",
		Price: 100,
		Ingredients: []entity.ProductIngredient{
			{ProductID: "prod-1", IngredientID: "masa", IsMandatory: true,
				Ingredient: entity.Ingredient{ID: "masa", Description: "Masa", ExtraPrice: 0, IsActive: true}},
			{ProductID: "prod-1", IngredientID: "a",
				Ingredient: entity.Ingredient{ID: "a", Description: "Aceitunas", ExtraPrice: 10, IsActive: true}},
			{ProductID: "prod-1", IngredientID: "b",
				Ingredient: entity.Ingredient{ID: "b", Description: "Queso", ExtraPrice: 15, IsActive: true}},
		},
	}
}

func ids(ings []entity.Ingredient) []string {
	out := make([]string, len(ings))
	for i, ing := range ings {
		out[i] = ing.ID
	}
	return out
}

func TestNewSelectionDefaults(t *testing.T) {
	sel := NewSelection(testProduct(), nil, nil)

	inc := ids(sel.Included())
	if len(inc) != 2 || inc[0] != "a" || inc[1] != "b" {
		t.Fatalf("included por defecto = %v, se esperaba [a b]", inc)
	}
	if len(sel.Excluded()) != 0 {
		t.Fatalf("excluded por defecto = %v, se esperaba vacío", ids(sel.Excluded()))
	}
	if len(sel.Extras()) != 0 {
		t.Fatalf("extras por defecto = %v, se esperaba vacío", sel.Extras())
	}
	if got := sel.Price(); got != 100 {
		t.Fatalf("precio por defecto = %v, se esperaba 100", got)
	}
}

func TestMandatoryNeverCustomizable(t *testing.T) {
	sel := NewSelection(testProduct(), nil, nil)

	if err := sel.ToggleDefault("masa", false); err != ErrIngredientNotCustomizable {
		t.Fatalf("ToggleDefault(masa) err = %v, se esperaba ErrIngredientNotCustomizable", err)
	}
	if err := sel.ToggleExtra("masa", true); err != ErrIngredientNotCustomizable {
		t.Fatalf("ToggleExtra(masa) err = %v, se esperaba ErrIngredientNotCustomizable", err)
	}
	if err := sel.ToggleDefault("zzz", false); err != ErrIngredientNotCustomizable {
		t.Fatalf("ingrediente desconocido err = %v, se esperaba ErrIngredientNotCustomizable", err)
	}
	// El obligatorio nunca aparece en la selección editable
	for _, id := range ids(sel.Included()) {
		if id == "masa" {
			t.Fatal("el obligatorio no debe aparecer en included")
		}
	}
}

func TestToggleDefaultMovesBetweenSets(t *testing.T) {
	sel := NewSelection(testProduct(), nil, nil)

	sel.ToggleDefault("a", false)
	if sel.IsIncluded("a") {
		t.Fatal("a debería estar sacado")
	}
	if exc := ids(sel.Excluded()); len(exc) != 1 || exc[0] != "a" {
		t.Fatalf("excluded = %v, se esperaba [a]", exc)
	}

	sel.ToggleDefault("a", true)
	if !sel.IsIncluded("a") {
		t.Fatal("a debería volver a included")
	}
	if len(sel.Excluded()) != 0 {
		t.Fatalf("excluded = %v, se esperaba vacío", ids(sel.Excluded()))
	}
}

func TestToggleOffRemovesExtra(t *testing.T) {
	sel := NewSelection(testProduct(), nil, nil)

	sel.ToggleExtra("b", true)
	sel.ToggleExtra("b", true)
	if q := sel.ExtraQuantity("b"); q != 2 {
		t.Fatalf("extra de b = %d, se esperaba 2", q)
	}

	// Sacar la base borra el extra: un extra sin base no existe
	sel.ToggleDefault("b", false)
	if q := sel.ExtraQuantity("b"); q != 0 {
		t.Fatalf("extra de b tras sacar la base = %d, se esperaba 0", q)
	}
	if got := sel.Price(); got != 100 {
		t.Fatalf("precio = %v, se esperaba 100", got)
	}
}

func TestToggleExtraForcesBase(t *testing.T) {
	sel := NewSelection(testProduct(), nil, nil)

	sel.ToggleDefault("b", false)
	if err := sel.ToggleExtra("b", true); err != nil {
		t.Fatalf("ToggleExtra err = %v", err)
	}

	// Un extra implica su base presente y fuera de excluded
	if !sel.IsIncluded("b") {
		t.Fatal("agregar un extra debe forzar la base a included")
	}
	for _, id := range ids(sel.Excluded()) {
		if id == "b" {
			t.Fatal("b no puede seguir en excluded con un extra activo")
		}
	}
}

func TestExtraDecrementDeletesAtOne(t *testing.T) {
	sel := NewSelection(testProduct(), nil, nil)

	sel.ToggleExtra("b", true)
	sel.ToggleExtra("b", false)
	if q := sel.ExtraQuantity("b"); q != 0 {
		t.Fatalf("extra de b = %d, se esperaba registro borrado", q)
	}
	// La base queda como estaba
	if !sel.IsIncluded("b") {
		t.Fatal("bajar el extra no debe tocar la base")
	}
	// Restar sin registro no hace nada
	if err := sel.ToggleExtra("b", false); err != nil {
		t.Fatalf("restar sin extra err = %v", err)
	}
}

func TestPriceInvariant(t *testing.T) {
	tests := []struct {
		name string
		ops  func(sel *Selection)
		want float64
	}{
		{"sin cambios", func(sel *Selection) {}, 100},
		{"sacar no descuenta", func(sel *Selection) {
			sel.ToggleDefault("a", false)
		}, 100},
		{"un extra", func(sel *Selection) {
			sel.ToggleExtra("b", true)
		}, 115},
		{"dos extras del mismo", func(sel *Selection) {
			sel.ToggleExtra("b", true)
			sel.ToggleExtra("b", true)
		}, 130},
		{"extras de los dos", func(sel *Selection) {
			sel.ToggleExtra("a", true)
			sel.ToggleExtra("b", true)
		}, 125},
		{"escenario: sin A, extra de B", func(sel *Selection) {
			sel.ToggleDefault("a", false)
			sel.ToggleExtra("b", true)
		}, 115},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sel := NewSelection(testProduct(), nil, nil)
			tt.ops(sel)
			if got := sel.Price(); got != tt.want {
				t.Errorf("precio = %v, se esperaba %v", got, tt.want)
			}
		})
	}
}

// Propiedades sobre cualquier selección: extra ⇒ base incluida, y
// included ∩ excluded = ∅.
func TestSelectionInvariants(t *testing.T) {
	muts := []func(sel *Selection){
		func(s *Selection) { s.ToggleDefault("a", false) },
		func(s *Selection) { s.ToggleExtra("b", true) },
		func(s *Selection) { s.ToggleExtra("a", true) },
		func(s *Selection) { s.ToggleDefault("b", false) },
		func(s *Selection) { s.ToggleExtra("b", false) },
		func(s *Selection) { s.ToggleDefault("a", true) },
	}

	sel := NewSelection(testProduct(), nil, nil)
	for i, m := range muts {
		m(sel)

		for _, ex := range sel.Extras() {
			if !sel.IsIncluded(ex.Ingredient.ID) {
				t.Fatalf("tras mutación %d: extra %s sin base incluida", i, ex.Ingredient.ID)
			}
		}

		included := map[string]bool{}
		for _, id := range ids(sel.Included()) {
			included[id] = true
		}
		for _, id := range ids(sel.Excluded()) {
			if included[id] {
				t.Fatalf("tras mutación %d: %s está en included y excluded a la vez", i, id)
			}
		}
	}
}

func TestNewSelectionPreselected(t *testing.T) {
	p := testProduct()
	a := p.Ingredients[1].Ingredient
	b := p.Ingredients[2].Ingredient

	// Path de edición: B base + 1 extra (duplicado), A sacado
	sel := NewSelection(p, []entity.Ingredient{b, b}, []entity.Ingredient{a})

	if !sel.IsIncluded("b") || sel.IsIncluded("a") {
		t.Fatal("la preselección no se respetó")
	}
	if q := sel.ExtraQuantity("b"); q != 1 {
		t.Fatalf("extra de b = %d, se esperaba 1 (duplicado en la lista)", q)
	}
	if got := sel.Price(); got != 115 {
		t.Fatalf("precio = %v, se esperaba 115", got)
	}
}
