package controllers

import (
	"errors"
	"time"

	"github.com/estefano99/pedidos-pos/entity"
	"github.com/estefano99/pedidos-pos/pkg/resp"
	"github.com/estefano99/pedidos-pos/services"
	"github.com/estefano99/pedidos-pos/ws"

	"github.com/gin-gonic/gin"
)

// OrderController expone el ciclo de vida del pedido en curso: armar la
// selección de ingredientes, agregar/sacar/editar ítems y confirmar.
type OrderController struct {
	Orders  *services.OrderService
	Catalog *services.CatalogService
	Hub     *ws.EventHub
}

func NewOrderController(orders *services.OrderService, catalog *services.CatalogService, hub *ws.EventHub) *OrderController {
	return &OrderController{Orders: orders, Catalog: catalog, Hub: hub}
}

// ===== Pedido en curso =====

type startOrderIn struct {
	CustomerName  string     `json:"customerName"`
	ScheduledTime *time.Time `json:"scheduledTime"`
}

func (oc *OrderController) Start(c *gin.Context) {
	var req startOrderIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	order, err := oc.Orders.Start(req.CustomerName, req.ScheduledTime)
	if err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	resp.Created(c, order)
}

func (oc *OrderController) Current(c *gin.Context) {
	order, err := oc.Orders.Current()
	if err != nil {
		resp.NotFound(c, err.Error())
		return
	}
	resp.OK(c, order)
}

func (oc *OrderController) Clear(c *gin.Context) {
	oc.Orders.Clear()
	resp.OK(c, gin.H{"cleared": true})
}

// ===== Ítems =====

type extraIn struct {
	IngredientID string `json:"ingredientId" binding:"required"`
	Quantity     int    `json:"quantity" binding:"min=1"`
}

type itemIn struct {
	ProductID string    `json:"productId" binding:"required"`
	Excluded  []string  `json:"excluded"`
	Extras    []extraIn `json:"extras"`
}

// buildItem aplica los toggles del request sobre una selección fresca
// del producto y la congela en un DraftItem.
func (oc *OrderController) buildItem(req itemIn, existingID string) (entity.DraftItem, error) {
	product, err := oc.Catalog.Product(req.ProductID)
	if err != nil {
		return entity.DraftItem{}, errors.New("producto no encontrado")
	}

	sel := services.NewSelection(*product, nil, nil)
	for _, id := range req.Excluded {
		if err := sel.ToggleDefault(id, false); err != nil {
			return entity.DraftItem{}, err
		}
	}
	for _, ex := range req.Extras {
		for i := 0; i < ex.Quantity; i++ {
			if err := sel.ToggleExtra(ex.IngredientID, true); err != nil {
				return entity.DraftItem{}, err
			}
		}
	}

	return services.AssembleItem(sel, existingID), nil
}

func (oc *OrderController) AddItem(c *gin.Context) {
	var req itemIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	item, err := oc.buildItem(req, "")
	if err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	order, err := oc.Orders.AddItem(item)
	if err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	resp.Created(c, order)
}

// PreviewItem arma el ítem sin tocar el pedido: el diálogo de
// personalización lo usa para mostrar el resumen y el precio en vivo.
func (oc *OrderController) PreviewItem(c *gin.Context) {
	var req itemIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	item, err := oc.buildItem(req, "")
	if err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	resp.OK(c, gin.H{
		"item":   item,
		"extras": services.ItemExtras(item),
	})
}

func (oc *OrderController) RemoveItem(c *gin.Context) {
	order, err := oc.Orders.RemoveItem(c.Param("id"))
	if err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	resp.OK(c, order)
}

// ReplaceItem edita un ítem: se rearma entero con la nueva selección y
// conserva el id.
func (oc *OrderController) ReplaceItem(c *gin.Context) {
	var req itemIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	itemID := c.Param("id")
	item, err := oc.buildItem(req, itemID)
	if err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	order, err := oc.Orders.ReplaceItem(itemID, item)
	if err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	resp.OK(c, order)
}

// ===== Confirmación =====

// Submit manda el borrador al backend; si falla, el borrador queda vivo
// para que el operador reintente.
func (oc *OrderController) Submit(c *gin.Context) {
	order, err := oc.Orders.Submit()
	if err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	oc.Hub.Publish(ws.EventOrderCreated, order)
	resp.Created(c, order)
}
