package printing

import (
	"context"
	"fmt"
	"os"
)

// Primitivas ESC/POS que usa la terminal.
var (
	escInit        = []byte{0x1b, 0x40}             // ESC @
	escAlignLeft   = []byte{0x1b, 0x61, 0x00}       // ESC a 0
	escAlignCenter = []byte{0x1b, 0x61, 0x01}       // ESC a 1
	escBoldOn      = []byte{0x1b, 0x45, 0x01}       // ESC E 1
	escBoldOff     = []byte{0x1b, 0x45, 0x00}       // ESC E 0
	escFeed        = []byte{0x1b, 0x64, 0x03}       // ESC d 3
	escCut         = []byte{0x1d, 0x56, 0x42, 0x00} // GS V B 0 (corte parcial)
)

const escposLineWidth = 42

// EscPosTransport manda la secuencia de comandos directo al dispositivo
// (p. ej. /dev/usb/lp0). Cualquier falla de apertura o escritura vuelve
// como Result, no como panic.
type EscPosTransport struct{}

func NewEscPosTransport() *EscPosTransport {
	return &EscPosTransport{}
}

func (t *EscPosTransport) Print(_ context.Context, destination string, p Payload) Result {
	if destination == "" {
		return fail(fmt.Errorf("escpos: falta el path del dispositivo"))
	}

	dev, err := os.OpenFile(destination, os.O_WRONLY, 0)
	if err != nil {
		return fail(fmt.Errorf("escpos: la impresora no está conectada: %w", err))
	}
	defer dev.Close()

	if err := writeAll(dev, t.program(p)); err != nil {
		return fail(fmt.Errorf("escpos: error de escritura: %w", err))
	}
	return ok()
}

// program arma el ticket completo como un solo buffer de comandos.
func (t *EscPosTransport) program(p Payload) []byte {
	var out []byte
	out = append(out, escInit...)

	out = append(out, escAlignCenter...)
	out = append(out, escBoldOn...)
	out = append(out, []byte(p.Header+"\n")...)
	out = append(out, escBoldOff...)
	out = append(out, drawLine()...)

	out = append(out, escAlignLeft...)
	out = append(out, []byte(p.Text+"\n")...)

	if p.Footer != "" {
		out = append(out, drawLine()...)
		out = append(out, escAlignCenter...)
		out = append(out, []byte(p.Footer+"\n")...)
	}

	out = append(out, escFeed...)
	out = append(out, escCut...)
	return out
}

func drawLine() []byte {
	line := make([]byte, escposLineWidth+1)
	for i := 0; i < escposLineWidth; i++ {
		line[i] = '-'
	}
	line[escposLineWidth] = '\n'
	return line
}

func writeAll(dst *os.File, data []byte) error {
	for len(data) > 0 {
		n, err := dst.Write(data)
		if err != nil {
			return err
		}
		data = data[n:]
	}
	return nil
}
