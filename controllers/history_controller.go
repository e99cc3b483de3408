package controllers

import (
	"time"

	"github.com/estefano99/pedidos-pos/backendapi"
	"github.com/estefano99/pedidos-pos/entity"
	"github.com/estefano99/pedidos-pos/pkg/resp"
	"github.com/estefano99/pedidos-pos/repository"
	"github.com/estefano99/pedidos-pos/ws"

	"github.com/gin-gonic/gin"
)

// HistoryController sirve las órdenes ya confirmadas: lista del día,
// refresco desde el backend y cambios de estado.
type HistoryController struct {
	Repo    *repository.OrderRepository
	Backend *backendapi.Client
	Hub     *ws.EventHub
}

func NewHistoryController(repo *repository.OrderRepository, backend *backendapi.Client, hub *ws.EventHub) *HistoryController {
	return &HistoryController{Repo: repo, Backend: backend, Hub: hub}
}

// List devuelve el cache local filtrado. ?status=ALL|PENDING|... y
// ?date=YYYY-MM-DD opcional.
func (hc *HistoryController) List(c *gin.Context) {
	status := entity.OrderStatus(c.DefaultQuery("status", "ALL"))
	if status == "ALL" {
		status = ""
	} else if !status.Valid() {
		resp.BadRequest(c, "status inválido")
		return
	}

	var day *time.Time
	if d := c.Query("date"); d != "" {
		parsed, err := time.Parse("2006-01-02", d)
		if err != nil {
			resp.BadRequest(c, "date inválida, se espera YYYY-MM-DD")
			return
		}
		day = &parsed
	}

	orders, err := hc.Repo.ListByStatus(status, day)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, orders)
}

// Refresh baja del backend las órdenes del día (incluye las ONLINE que
// la terminal nunca vio) y las pisa en el cache.
func (hc *HistoryController) Refresh(c *gin.Context) {
	status := c.DefaultQuery("status", "ALL")

	orders, err := hc.Backend.OrdersTodayByStatus(status, nil)
	if err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	for i := range orders {
		if err := hc.Repo.Save(&orders[i]); err != nil {
			resp.ServerError(c, err)
			return
		}
	}
	resp.OK(c, orders)
}

type statusIn struct {
	Status entity.OrderStatus `json:"status" binding:"required"`
}

// UpdateStatus propaga el cambio al backend y recién después lo refleja
// localmente y lo anuncia por el hub.
func (hc *HistoryController) UpdateStatus(c *gin.Context) {
	var req statusIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if !req.Status.Valid() {
		resp.BadRequest(c, "status inválido")
		return
	}

	orderID := c.Param("id")
	order, err := hc.Backend.UpdateOrderStatus(orderID, req.Status)
	if err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	if err := hc.Repo.UpdateStatus(orderID, req.Status); err != nil {
		resp.ServerError(c, err)
		return
	}

	hc.Hub.Publish(ws.EventOrderStatusChanged, order)
	resp.OK(c, order)
}
