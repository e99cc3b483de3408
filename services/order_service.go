package services

import (
	"errors"
	"log"
	"sync"
	"time"

	"github.com/estefano99/pedidos-pos/entity"
	"github.com/estefano99/pedidos-pos/repository"
	"github.com/google/uuid"
)

var (
	ErrNoTenant  = errors.New("tenant no resuelto: hay que loguearse contra el backend")
	ErrNoOrder   = errors.New("no hay pedido iniciado")
	ErrEmptyItem = errors.New("el ítem no tiene producto")
	ErrNotFound  = errors.New("ítem no encontrado en el pedido")
	ErrNoItems   = errors.New("el pedido no tiene ítems")
)

// TenantResolver devuelve el tenant de la sesión del backend, o error si
// no hay sesión válida.
type TenantResolver func() (string, error)

// OrderSubmitter manda el borrador al backend y devuelve la orden
// canónica (con code, createdAt y precios del server).
type OrderSubmitter interface {
	CreateOrder(draft entity.DraftOrder) (entity.Order, error)
}

// OrderService es el dueño exclusivo del pedido en curso: un solo slot
// mutable con ciclo de vida explícito (Start/Clear). El total se
// recalcula de cero después de cada mutación para no arrastrar error de
// acumulación.
type OrderService struct {
	mu      sync.Mutex
	current *entity.DraftOrder

	tenant  TenantResolver
	backend OrderSubmitter
	repo    *repository.OrderRepository
}

func NewOrderService(tenant TenantResolver, backend OrderSubmitter, repo *repository.OrderRepository) *OrderService {
	return &OrderService{tenant: tenant, backend: backend, repo: repo}
}

// Start abre un pedido nuevo. Falla sin tenant resuelto; pisa cualquier
// borrador anterior (la UI confirma antes).
func (s *OrderService) Start(customerName string, scheduledTime *time.Time) (entity.DraftOrder, error) {
	tenantID, err := s.tenant()
	if err != nil {
		return entity.DraftOrder{}, ErrNoTenant
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.current = &entity.DraftOrder{
		ID:            uuid.NewString(),
		CustomerName:  customerName,
		ScheduledTime: scheduledTime,
		Items:         []entity.DraftItem{},
		Total:         0,
		Status:        entity.OrderPending,
		Source:        entity.SourceLocal,
		TenantID:      tenantID,
	}
	return *s.current, nil
}

// Current devuelve un snapshot del pedido en curso.
func (s *OrderService) Current() (entity.DraftOrder, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current == nil {
		return entity.DraftOrder{}, ErrNoOrder
	}
	return *s.current, nil
}

func (s *OrderService) AddItem(item entity.DraftItem) (entity.DraftOrder, error) {
	if item.Product.ID == "" {
		return entity.DraftOrder{}, ErrEmptyItem
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current == nil {
		return entity.DraftOrder{}, ErrNoOrder
	}

	s.current.Items = append(s.current.Items, item)
	s.recalcTotal()
	return *s.current, nil
}

func (s *OrderService) RemoveItem(itemID string) (entity.DraftOrder, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current == nil {
		return entity.DraftOrder{}, ErrNoOrder
	}

	items := s.current.Items[:0]
	found := false
	for _, it := range s.current.Items {
		if it.ID == itemID {
			found = true
			continue
		}
		items = append(items, it)
	}
	if !found {
		return entity.DraftOrder{}, ErrNotFound
	}

	s.current.Items = items
	s.recalcTotal()
	return *s.current, nil
}

// ReplaceItem reemplaza el ítem entero (nunca se parchea): se saca el
// viejo y se agrega el nuevo al final, como hace la edición del carrito.
func (s *OrderService) ReplaceItem(itemID string, newItem entity.DraftItem) (entity.DraftOrder, error) {
	if newItem.Product.ID == "" {
		return entity.DraftOrder{}, ErrEmptyItem
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current == nil {
		return entity.DraftOrder{}, ErrNoOrder
	}

	items := s.current.Items[:0]
	found := false
	for _, it := range s.current.Items {
		if it.ID == itemID {
			found = true
			continue
		}
		items = append(items, it)
	}
	if !found {
		return entity.DraftOrder{}, ErrNotFound
	}

	s.current.Items = append(items, newItem)
	s.recalcTotal()
	return *s.current, nil
}

func (s *OrderService) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = nil
}

// Submit manda el borrador al backend. Si sale bien, el slot se limpia y
// la orden canónica queda cacheada localmente; si falla, el borrador
// queda intacto para reintentar.
func (s *OrderService) Submit() (entity.Order, error) {
	s.mu.Lock()
	if s.current == nil {
		s.mu.Unlock()
		return entity.Order{}, ErrNoOrder
	}
	if len(s.current.Items) == 0 {
		s.mu.Unlock()
		return entity.Order{}, ErrNoItems
	}
	draft := *s.current
	s.mu.Unlock()

	// Sin lock durante el POST: la UI es mono-usuario y el backend puede
	// tardar.
	order, err := s.backend.CreateOrder(draft)
	if err != nil {
		return entity.Order{}, err
	}

	s.mu.Lock()
	if s.current != nil && s.current.ID == draft.ID {
		s.current = nil
	}
	s.mu.Unlock()

	if s.repo != nil {
		if err := s.repo.Save(&order); err != nil {
			// La orden ya está en el backend; el cache local no bloquea
			log.Printf("no se pudo cachear la orden %s: %v", order.ID, err)
		}
	}
	return order, nil
}

// Invariante: total == Σ totalPrice de los ítems.
func (s *OrderService) recalcTotal() {
	var total float64
	for _, it := range s.current.Items {
		total += it.TotalPrice
	}
	s.current.Total = total
}
