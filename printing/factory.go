package printing

import (
	"errors"
	"fmt"
	"time"

	"github.com/estefano99/pedidos-pos/entity"
)

var (
	// Modo reconocido pero sin implementación todavía; distinto de
	// ErrUnknownMode para que la UI pueda guiar distinto.
	ErrNotSupported = errors.New("modo de impresión aún no soportado")
	ErrUnknownMode  = errors.New("modo de impresión desconocido")

	ErrMissingHost = errors.New("transporte tcp sin host configurado")
)

// NewTransport resuelve el transporte de una estación. Falla rápido y
// sin tocar I/O ante config inválida; nunca hace fallback silencioso.
func NewTransport(station entity.Station, tcpTimeout time.Duration) (Transport, error) {
	switch station.Transport {
	case entity.TransportDriver:
		return NewDriverTransport(), nil
	case entity.TransportEscPos:
		return NewEscPosTransport(), nil
	case entity.TransportTCP:
		if station.Host == "" {
			return nil, ErrMissingHost
		}
		return NewTCPTransport(station.Host, station.Port, tcpTimeout), nil
	case entity.TransportRaw, entity.TransportBluetooth:
		return nil, fmt.Errorf("%w: %s", ErrNotSupported, station.Transport)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownMode, station.Transport)
	}
}
