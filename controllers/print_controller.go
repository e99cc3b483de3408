package controllers

import (
	"net/http"

	"github.com/estefano99/pedidos-pos/pkg/resp"
	"github.com/estefano99/pedidos-pos/printing"
	"github.com/estefano99/pedidos-pos/repository"
	"github.com/estefano99/pedidos-pos/services"
	"github.com/estefano99/pedidos-pos/ws"

	"github.com/gin-gonic/gin"
)

// PrintController es la cara HTTP del despacho de impresión: la UI
// nunca habla con un transporte, siempre pasa por acá.
type PrintController struct {
	Stations   *repository.StationRepository
	Orders     *repository.OrderRepository
	Dispatcher *printing.Dispatcher
	Hub        *ws.EventHub
}

func NewPrintController(stations *repository.StationRepository, orders *repository.OrderRepository, dispatcher *printing.Dispatcher, hub *ws.EventHub) *PrintController {
	return &PrintController{Stations: stations, Orders: orders, Dispatcher: dispatcher, Hub: hub}
}

// PrintOrder renderiza el ticket de una orden confirmada y lo manda a la
// estación pedida (?station=cocina por defecto).
func (pc *PrintController) PrintOrder(c *gin.Context) {
	stationName := c.DefaultQuery("station", "cocina")

	station, err := pc.Stations.GetByName(stationName)
	if err != nil {
		resp.BadRequest(c, "no hay configuración de impresora para "+stationName)
		return
	}
	if !station.Enabled {
		resp.BadRequest(c, "la estación "+stationName+" está deshabilitada")
		return
	}

	order, err := pc.Orders.Get(c.Param("id"))
	if err != nil {
		resp.NotFound(c, "orden no encontrada")
		return
	}

	payload := services.RenderTicket(*order)
	result := pc.Dispatcher.Dispatch(c.Request.Context(), *station, payload)
	if !result.OK {
		// El error del transporte ya viene normalizado; se devuelve con
		// la misma forma {ok, error} que el resto de la API
		c.JSON(http.StatusBadGateway, gin.H{"ok": false, "error": result.Error})
		return
	}

	pc.Hub.Publish(ws.EventTicketPrinted, gin.H{
		"orderId": order.ID,
		"code":    order.Code,
		"station": station.Name,
	})
	resp.OK(c, gin.H{"printed": true, "station": station.Name})
}

type rawPrintIn struct {
	Station string           `json:"station" binding:"required"`
	Payload printing.Payload `json:"payload" binding:"required"`
}

// PrintRaw manda un payload ya armado (página de prueba, reimpresión).
func (pc *PrintController) PrintRaw(c *gin.Context) {
	var req rawPrintIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	station, err := pc.Stations.GetByName(req.Station)
	if err != nil {
		resp.BadRequest(c, "no hay configuración de impresora para "+req.Station)
		return
	}

	result := pc.Dispatcher.Dispatch(c.Request.Context(), *station, req.Payload)
	if !result.OK {
		c.JSON(http.StatusBadGateway, gin.H{"ok": false, "error": result.Error})
		return
	}
	resp.OK(c, gin.H{"printed": true})
}

// TestPrint imprime una página de prueba en la estación.
func (pc *PrintController) TestPrint(c *gin.Context) {
	station, err := pc.Stations.GetByName(c.Param("name"))
	if err != nil {
		resp.NotFound(c, "estación no encontrada")
		return
	}

	payload := printing.Payload{
		Header: "PRUEBA DE IMPRESIÓN",
		Text:   "Estación: " + station.Name + "\nTransporte: " + station.Transport,
		Footer: "ok",
	}
	result := pc.Dispatcher.Dispatch(c.Request.Context(), *station, payload)
	if !result.OK {
		c.JSON(http.StatusBadGateway, gin.H{"ok": false, "error": result.Error})
		return
	}
	resp.OK(c, gin.H{"printed": true})
}
