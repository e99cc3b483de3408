package printing

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"
)

// DriverTransport imprime vía el spooler del sistema: renderiza el
// ticket a un archivo de spool efímero y lo manda con `lp -d <printer>`.
// El archivo es propiedad exclusiva de esta llamada y se borra en todos
// los caminos de salida, incluido el de error.
type DriverTransport struct {
	// Comando del spooler; los tests lo pisan
	Cmd string
}

func NewDriverTransport() *DriverTransport {
	return &DriverTransport{Cmd: "lp"}
}

func (t *DriverTransport) Print(ctx context.Context, destination string, p Payload) Result {
	if destination == "" {
		return fail(fmt.Errorf("driver: falta el nombre de la impresora"))
	}

	spool, err := os.CreateTemp("", "ticket-*.txt")
	if err != nil {
		return fail(fmt.Errorf("driver: no se pudo crear el spool: %w", err))
	}
	defer os.Remove(spool.Name())

	_, werr := spool.WriteString(t.document(p))
	cerr := spool.Close()
	if werr != nil {
		return fail(fmt.Errorf("driver: error escribiendo el spool: %w", werr))
	}
	if cerr != nil {
		return fail(fmt.Errorf("driver: error cerrando el spool: %w", cerr))
	}

	// lp espera a que el job entre a la cola; el callback real del
	// driver queda del lado del SO.
	cmd := exec.CommandContext(ctx, t.Cmd, "-d", destination, spool.Name())
	if out, err := cmd.CombinedOutput(); err != nil {
		return fail(fmt.Errorf("driver: %s: %s", err, strings.TrimSpace(string(out))))
	}
	return ok()
}

// document arma el documento plano que se entrega al driver.
func (t *DriverTransport) document(p Payload) string {
	var b strings.Builder
	b.WriteString(p.Header)
	b.WriteString("\n")
	b.WriteString(strings.Repeat("-", 32))
	b.WriteString("\n")
	b.WriteString(p.Text)
	b.WriteString("\n")
	b.WriteString(strings.Repeat("-", 32))
	b.WriteString("\n")
	if p.Footer != "" {
		b.WriteString(p.Footer)
		b.WriteString("\n")
	}
	return b.String()
}
