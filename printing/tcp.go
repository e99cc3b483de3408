package printing

import (
	"context"
	"fmt"
	"net"
	"strings"
	"time"
)

const defaultTCPPort = 9100

// TCPTransport escribe el ticket en texto plano contra el puerto raw de
// la impresora (9100 por defecto) y cierra.
type TCPTransport struct {
	Host    string
	Port    int
	Timeout time.Duration
}

func NewTCPTransport(host string, port int, timeout time.Duration) *TCPTransport {
	if port == 0 {
		port = defaultTCPPort
	}
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &TCPTransport{Host: host, Port: port, Timeout: timeout}
}

func (t *TCPTransport) Print(ctx context.Context, _ string, p Payload) Result {
	addr := net.JoinHostPort(t.Host, fmt.Sprintf("%d", t.Port))

	d := net.Dialer{Timeout: t.Timeout}
	conn, err := d.DialContext(ctx, "tcp", addr)
	if err != nil {
		return fail(err)
	}
	defer conn.Close()

	conn.SetWriteDeadline(time.Now().Add(t.Timeout))
	if _, err := conn.Write([]byte(renderPlain(p))); err != nil {
		return fail(err)
	}
	return ok()
}

// renderPlain arma el cuerpo de texto que se manda por el socket.
func renderPlain(p Payload) string {
	var b strings.Builder
	b.WriteString(p.Header)
	b.WriteString("\n------------------\n")
	b.WriteString(p.Text)
	b.WriteString("\n------------------\n")
	if p.Footer != "" {
		b.WriteString(p.Footer)
		b.WriteString("\n")
	}
	b.WriteString("\n\n\n")
	return b.String()
}
