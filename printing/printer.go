// Package printing maneja la salida física de tickets: transportes
// concretos (driver del SO, ESC/POS, socket TCP), la fábrica que los
// resuelve desde la config de cada estación y el facade de despacho.
package printing

import (
	"context"
)

// Payload es el ticket ya renderizado, listo para cualquier transporte.
type Payload struct {
	Header string `json:"header"`
	Text   string `json:"text"`
	Footer string `json:"footer,omitempty"`
}

// Result normaliza el resultado de un transporte: los errores de
// conexión/dispositivo vuelven acá, nunca como panic ni error suelto.
type Result struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}

func ok() Result {
	return Result{Success: true}
}

func fail(err error) Result {
	return Result{Success: false, Error: err.Error()}
}

// Transport es un mecanismo concreto de entrega a una impresora física.
// destination depende del transporte: nombre de impresora (driver) o
// path del dispositivo (escpos); tcp lo ignora porque ya tiene host/port.
type Transport interface {
	Print(ctx context.Context, destination string, p Payload) Result
}
