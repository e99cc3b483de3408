package services

import (
	"strings"
	"testing"
	"time"

	"github.com/estefano99/pedidos-pos/entity"
)

func testOrder() entity.Order {
	scheduled := time.Date(2025, 3, 14, 21, 30, 0, 0, time.Local)
	return entity.Order{
		ID:                "ord-1",
		Code:              "A042",
		CustomerName:      "Marta",
		ScheduledTime:     &scheduled,
		Total:             1815,
		Status:            entity.OrderPending,
		Source:            entity.SourceLocal,
		TenantDisplayName: "Pizzería Roma",
		Items: []entity.OrderItem{
			{
				ID:          "it-1",
				ProductName: "Muzzarella",
				UnitPrice:   1500,
				Quantity:    1,
				Customizations: []entity.IngredientCustomization{
					{IngredientID: "a", IngredientDescription: "Aceitunas", IsAdded: false, Quantity: 1, UnitPrice: 0},
					{IngredientID: "b", IngredientDescription: "Queso", IsAdded: true, Quantity: 2, UnitPrice: 15},
					{IngredientID: "c", IngredientDescription: "Orégano", IsAdded: true, Quantity: 1, UnitPrice: 0},
				},
			},
			{
				ID:          "it-2",
				ProductName: "Faina",
				UnitPrice:   285,
				Quantity:    2,
			},
		},
	}
}

func TestRenderTicketHeader(t *testing.T) {
	now := time.Date(2025, 3, 14, 20, 0, 0, 0, time.Local)
	p := renderTicketAt(testOrder(), now)

	for _, want := range []string{
		"PIZZERÍA ROMA",
		"Cliente: Marta",
		"Cod. Orden: A042",
		"Entrega: 21:30",
	} {
		if !strings.Contains(p.Header, want) {
			t.Errorf("header sin %q:\n%s", want, p.Header)
		}
	}
}

func TestRenderTicketFallbacks(t *testing.T) {
	order := testOrder()
	order.TenantDisplayName = ""
	order.CustomerName = ""
	order.ScheduledTime = nil

	p := renderTicketAt(order, time.Now())
	for _, want := range []string{"LOCAL SIN NOMBRE", "Cliente: Sin nombre", "Entrega: Sin horario"} {
		if !strings.Contains(p.Header, want) {
			t.Errorf("header sin fallback %q:\n%s", want, p.Header)
		}
	}
}

func TestRenderTicketBody(t *testing.T) {
	now := time.Date(2025, 3, 14, 20, 0, 0, 0, time.Local)
	p := renderTicketAt(testOrder(), now)

	if !strings.Contains(p.Text, "Productos: 2") {
		t.Errorf("falta el resumen de productos:\n%s", p.Text)
	}
	if !strings.Contains(p.Text, "- Muzzarella.......... $1.500,00") {
		t.Errorf("falta la línea del ítem con columna de precio:\n%s", p.Text)
	}
	if !strings.Contains(p.Text, " SIN: Aceitunas") {
		t.Errorf("falta el marcador de removido:\n%s", p.Text)
	}
	// 15 × 2 × cantidad 1 = 30
	if !strings.Contains(p.Text, " + 2x Queso (+$30,00)") {
		t.Errorf("falta la línea de extra con total calculado:\n%s", p.Text)
	}
	// Inclusión base (isAdded, precio 0): nunca se imprime
	if strings.Contains(p.Text, "Orégano") {
		t.Errorf("una inclusión base no debe imprimirse:\n%s", p.Text)
	}
	if !strings.Contains(p.Text, "TOTAL: $1.815,00") {
		t.Errorf("falta el total:\n%s", p.Text)
	}
	if !strings.Contains(p.Text, "==============") {
		t.Errorf("falta la doble línea de cierre:\n%s", p.Text)
	}
}

// El mismo Order renderiza byte a byte igual, salvo el timestamp del
// footer.
func TestRenderTicketDeterministic(t *testing.T) {
	order := testOrder()

	a := RenderTicket(order)
	b := RenderTicket(order)

	if a.Header != b.Header {
		t.Error("el header debe ser determinístico")
	}
	if a.Text != b.Text {
		t.Error("el cuerpo debe ser determinístico")
	}
}

func TestRenderTicketFooterTimestamp(t *testing.T) {
	now := time.Date(2025, 3, 14, 20, 5, 9, 0, time.Local)
	p := renderTicketAt(testOrder(), now)

	if !strings.HasPrefix(p.Footer, "14/03/2025 20:05:09") {
		t.Errorf("footer = %q", p.Footer)
	}
	if !strings.HasSuffix(p.Footer, "\n\n\n") {
		t.Error("el footer debe dejar margen para el cutter")
	}
}

func TestItemLinePadding(t *testing.T) {
	line := itemLine(entity.OrderItem{ProductName: "Faina", UnitPrice: 285, Quantity: 1})
	if !strings.Contains(line, "- Faina") || !strings.Contains(line, "$285,00") {
		t.Fatalf("línea = %q", line)
	}
	if !strings.Contains(line, "...") {
		t.Fatalf("el nombre corto debe rellenarse con puntos: %q", line)
	}

	sinPrecio := itemLine(entity.OrderItem{ProductName: "Promo", UnitPrice: 0})
	if !strings.Contains(sinPrecio, "Sin precio") {
		t.Fatalf("línea sin precio = %q", sinPrecio)
	}
}
