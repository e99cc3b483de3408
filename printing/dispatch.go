package printing

import (
	"context"
	"time"

	"github.com/estefano99/pedidos-pos/entity"
)

// DispatchResult es la forma uniforme que ve la UI, sea cual sea el
// transporte que falló.
type DispatchResult struct {
	OK    bool   `json:"ok"`
	Error string `json:"error,omitempty"`
}

// Dispatcher es el único punto de entrada hacia hardware: resuelve el
// transporte de la estación y normaliza el resultado. Los controllers no
// tocan transportes directamente.
type Dispatcher struct {
	tcpTimeout time.Duration
}

func NewDispatcher(tcpTimeout time.Duration) *Dispatcher {
	return &Dispatcher{tcpTimeout: tcpTimeout}
}

func (d *Dispatcher) Dispatch(ctx context.Context, station entity.Station, p Payload) DispatchResult {
	transport, err := NewTransport(station, d.tcpTimeout)
	if err != nil {
		return DispatchResult{OK: false, Error: err.Error()}
	}

	res := transport.Print(ctx, station.Address, p)
	return DispatchResult{OK: res.Success, Error: res.Error}
}
