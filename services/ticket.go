package services

import (
	"fmt"
	"strings"
	"time"

	"github.com/estefano99/pedidos-pos/entity"
	"github.com/estefano99/pedidos-pos/printing"
	"github.com/estefano99/pedidos-pos/utils"
)

const (
	ticketRule       = "--------------"
	ticketDoubleRule = "=============="
	// Columna de precio: el nombre se rellena con puntos hasta acá para
	// que quede prolijo en papel térmico de ancho fijo
	ticketNameWidth = 22
)

// RenderTicket arma el ticket imprimible de una orden ya confirmada por
// el backend. Salida determinística salvo el timestamp del footer.
func RenderTicket(order entity.Order) printing.Payload {
	return renderTicketAt(order, time.Now())
}

func renderTicketAt(order entity.Order, now time.Time) printing.Payload {
	var b strings.Builder

	// Encabezado
	name := strings.ToUpper(order.TenantDisplayName)
	if name == "" {
		name = "LOCAL SIN NOMBRE"
	}
	customer := order.CustomerName
	if customer == "" {
		customer = "Sin nombre"
	}
	hora := "Sin horario"
	if order.ScheduledTime != nil {
		hora = order.ScheduledTime.Format("15:04")
	}

	header := fmt.Sprintf("%s\nCliente: %s\nCod. Orden: %s\nEntrega: %s", name, customer, order.Code, hora)

	// Resumen
	b.WriteString(ticketRule + "\n")
	b.WriteString(fmt.Sprintf("Productos: %d\n", len(order.Items)))
	b.WriteString(ticketRule + "\n\n")

	// Ítems en el orden de la orden
	for _, item := range order.Items {
		b.WriteString(itemLine(item) + "\n")

		for _, ic := range item.Customizations {
			if !ic.IsAdded {
				b.WriteString(fmt.Sprintf(" SIN: %s\n", ic.IngredientDescription))
			}
		}
		for _, ic := range item.Customizations {
			// Las inclusiones base (isAdded y precio 0) no se imprimen:
			// son el default y no aportan nada
			if ic.IsAdded && ic.UnitPrice > 0 {
				total := ic.UnitPrice * float64(ic.Quantity) * float64(item.Quantity)
				b.WriteString(fmt.Sprintf(" + %dx %s (+%s)\n", ic.Quantity, ic.IngredientDescription, utils.FormatPrice(total)))
			}
		}
		b.WriteString("\n")
	}

	// Cierre
	b.WriteString(ticketDoubleRule + "\n")
	b.WriteString(fmt.Sprintf("TOTAL: %s\n", utils.FormatPrice(order.Total)))
	b.WriteString(ticketDoubleRule + "\n")

	// Footer: timestamp de generación + margen para el cutter
	footer := now.Format("02/01/2006 15:04:05") + "\n\n\n"

	return printing.Payload{
		Header: header,
		Text:   strings.TrimRight(b.String(), "\n"),
		Footer: footer,
	}
}

// itemLine alinea el precio a la derecha rellenando con puntos.
func itemLine(item entity.OrderItem) string {
	name := "- " + item.ProductName
	price := "Sin precio"
	if item.UnitPrice > 0 {
		price = utils.FormatPrice(item.UnitPrice)
	}
	if len(name) < ticketNameWidth {
		name += strings.Repeat(".", ticketNameWidth-len(name))
	}
	return name + " " + price
}
