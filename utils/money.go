package utils

import (
	"fmt"
	"strings"
)

// FormatPrice formatea en pesos estilo es-AR: $1.234,56
func FormatPrice(v float64) string {
	neg := v < 0
	if neg {
		v = -v
	}

	s := fmt.Sprintf("%.2f", v)
	parts := strings.SplitN(s, ".", 2)
	entero, dec := parts[0], parts[1]

	var b strings.Builder
	pre := len(entero) % 3
	if pre > 0 {
		b.WriteString(entero[:pre])
	}
	for i := pre; i < len(entero); i += 3 {
		if b.Len() > 0 {
			b.WriteByte('.')
		}
		b.WriteString(entero[i : i+3])
	}

	out := "$" + b.String() + "," + dec
	if neg {
		out = "-" + out
	}
	return out
}
