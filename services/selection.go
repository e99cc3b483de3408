package services

import (
	"errors"
	"sort"

	"github.com/estefano99/pedidos-pos/entity"
)

// El ingrediente no pertenece al producto o es obligatorio
var ErrIngredientNotCustomizable = errors.New("el ingrediente no es personalizable en este producto")

// Selection es el estado de personalización de un producto durante la
// edición. Internamente los extras viven en un mapa cantidad-explícito;
// la lista con duplicados solo se arma al aplanar para la UI.
type Selection struct {
	product  entity.Product
	included map[string]bool
	extras   map[string]int // cantidad de extras, siempre >= 1
}

// Extra es la vista pública de un extra: ingrediente + cantidad además
// de la unidad base.
type Extra struct {
	Ingredient entity.Ingredient `json:"ingredient"`
	Quantity   int               `json:"quantity"`
}

// NewSelection arma la selección inicial. Sin preselección: todos los
// opcionales incluidos, nada sacado, sin extras. Con preselección (path
// de edición) se respeta tal cual. Los obligatorios nunca entran.
func NewSelection(product entity.Product, preIncluded, preExcluded []entity.Ingredient) *Selection {
	s := &Selection{
		product:  product,
		included: make(map[string]bool),
		extras:   make(map[string]int),
	}

	if preIncluded == nil && preExcluded == nil {
		for _, pi := range product.OptionalIngredients() {
			s.included[pi.IngredientID] = true
		}
		return s
	}

	// La lista preseleccionada puede repetir ingredientes: N apariciones
	// = base + N-1 extras
	for _, ing := range preIncluded {
		if s.included[ing.ID] {
			s.extras[ing.ID]++
		} else {
			s.included[ing.ID] = true
		}
	}
	return s
}

// ToggleDefault incluye o saca un ingrediente opcional. Sacarlo borra
// también cualquier extra asociado: un extra sin base no existe.
func (s *Selection) ToggleDefault(ingredientID string, included bool) error {
	if err := s.customizable(ingredientID); err != nil {
		return err
	}

	if included {
		s.included[ingredientID] = true
		return nil
	}
	delete(s.included, ingredientID)
	delete(s.extras, ingredientID)
	return nil
}

// ToggleExtra suma (add=true) o resta una unidad extra. Sumar fuerza la
// inclusión de la base (un extra implica base presente); bajar de 1 borra
// el registro del extra sin tocar la base.
func (s *Selection) ToggleExtra(ingredientID string, add bool) error {
	if err := s.customizable(ingredientID); err != nil {
		return err
	}

	if add {
		s.included[ingredientID] = true
		s.extras[ingredientID]++
		return nil
	}

	if q, ok := s.extras[ingredientID]; ok {
		if q <= 1 {
			delete(s.extras, ingredientID)
		} else {
			s.extras[ingredientID] = q - 1
		}
	}
	return nil
}

// Price = precio del producto + Σ extras (cantidad × precio extra). Los
// obligatorios, las bases y los sacados no mueven el precio.
func (s *Selection) Price() float64 {
	total := s.product.Price
	for id, qty := range s.extras {
		if pi, ok := s.product.FindIngredient(id); ok {
			total += pi.Ingredient.ExtraPrice * float64(qty)
		}
	}
	return total
}

// Included devuelve las bases incluidas, en el orden del catálogo del
// producto para que la UI sea estable.
func (s *Selection) Included() []entity.Ingredient {
	out := make([]entity.Ingredient, 0, len(s.included))
	for _, pi := range s.product.OptionalIngredients() {
		if s.included[pi.IngredientID] {
			out = append(out, pi.Ingredient)
		}
	}
	return out
}

// Excluded devuelve los opcionales que el usuario sacó.
func (s *Selection) Excluded() []entity.Ingredient {
	out := []entity.Ingredient{}
	for _, pi := range s.product.OptionalIngredients() {
		if !s.included[pi.IngredientID] {
			out = append(out, pi.Ingredient)
		}
	}
	return out
}

// Extras devuelve los extras ordenados por id (orden determinístico para
// el DTO y los tests).
func (s *Selection) Extras() []Extra {
	ids := make([]string, 0, len(s.extras))
	for id := range s.extras {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	out := make([]Extra, 0, len(ids))
	for _, id := range ids {
		if pi, ok := s.product.FindIngredient(id); ok {
			out = append(out, Extra{Ingredient: pi.Ingredient, Quantity: s.extras[id]})
		}
	}
	return out
}

// ExtraQuantity devuelve la cantidad extra de un ingrediente (0 si no hay).
func (s *Selection) ExtraQuantity(ingredientID string) int {
	return s.extras[ingredientID]
}

// IsIncluded indica si la base está incluida.
func (s *Selection) IsIncluded(ingredientID string) bool {
	return s.included[ingredientID]
}

func (s *Selection) Product() entity.Product {
	return s.product
}

func (s *Selection) customizable(ingredientID string) error {
	pi, ok := s.product.FindIngredient(ingredientID)
	if !ok || pi.IsMandatory {
		return ErrIngredientNotCustomizable
	}
	return nil
}
