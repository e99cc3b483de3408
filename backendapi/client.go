// Package backendapi es el cliente HTTP contra el backend del tenant:
// login, alta de órdenes, estados y catálogo. La terminal nunca arma
// requests por fuera de acá.
package backendapi

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/estefano99/pedidos-pos/entity"
)

var ErrNoSession = errors.New("sin sesión contra el backend")

type Client struct {
	baseURL string
	http    *http.Client

	mu    sync.RWMutex
	token string
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 15 * time.Second},
	}
}

// Token devuelve el JWT del backend guardado tras el login.
func (c *Client) Token() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

func (c *Client) SetToken(token string) {
	c.mu.Lock()
	c.token = token
	c.mu.Unlock()
}

// errBody es la forma de error que devuelve el backend.
type errBody struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

func (c *Client) do(method, path string, body any, out any) error {
	var buf *bytes.Buffer
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return err
		}
		buf = bytes.NewBuffer(b)
	} else {
		buf = &bytes.Buffer{}
	}

	req, err := http.NewRequest(method, c.baseURL+path, buf)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if t := c.Token(); t != "" {
		req.Header.Set("Authorization", "Bearer "+t)
	}

	res, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	if res.StatusCode >= 400 {
		var eb errBody
		if json.NewDecoder(res.Body).Decode(&eb) == nil {
			if eb.Error != "" {
				return errors.New(eb.Error)
			}
			if eb.Message != "" {
				return errors.New(eb.Message)
			}
		}
		return fmt.Errorf("backend respondió %d", res.StatusCode)
	}

	if out != nil {
		return json.NewDecoder(res.Body).Decode(out)
	}
	return nil
}

// Login autentica contra el backend y guarda el token (el tenantId viaja
// dentro de los claims).
func (c *Client) Login(email, password string) (string, error) {
	var out struct {
		Token string `json:"token"`
	}
	err := c.do(http.MethodPost, "/auth/login", map[string]string{
		"email":    email,
		"password": password,
	}, &out)
	if err != nil {
		return "", err
	}
	if out.Token == "" {
		return "", errors.New("el backend no devolvió token")
	}
	c.SetToken(out.Token)
	return out.Token, nil
}

// orderItemOut es el DTO por ítem hacia el backend: solo id de producto,
// cantidad y operaciones de ingredientes.
type orderItemOut struct {
	ProductID   string                       `json:"productId"`
	Quantity    int                          `json:"quantity"`
	Ingredients []entity.IngredientOperation `json:"ingredients"`
}

type orderOut struct {
	ID            string             `json:"id"`
	CustomerName  string             `json:"customerName,omitempty"`
	ScheduledTime *time.Time         `json:"scheduledTime,omitempty"`
	Items         []orderItemOut     `json:"items"`
	Total         float64            `json:"total"`
	Status        entity.OrderStatus `json:"status"`
	Source        entity.OrderSource `json:"source"`
	TenantID      string             `json:"tenantId"`
}

// CreateOrder manda el borrador y devuelve la orden canónica (code,
// createdAt y precios asignados por el server).
func (c *Client) CreateOrder(draft entity.DraftOrder) (entity.Order, error) {
	if c.Token() == "" {
		return entity.Order{}, ErrNoSession
	}

	body := orderOut{
		ID:            draft.ID,
		CustomerName:  draft.CustomerName,
		ScheduledTime: draft.ScheduledTime,
		Items:         make([]orderItemOut, 0, len(draft.Items)),
		Total:         draft.Total,
		Status:        draft.Status,
		Source:        draft.Source,
		TenantID:      draft.TenantID,
	}
	for _, it := range draft.Items {
		ops := it.Operations
		if ops == nil {
			ops = []entity.IngredientOperation{}
		}
		body.Items = append(body.Items, orderItemOut{
			ProductID:   it.Product.ID,
			Quantity:    it.Quantity,
			Ingredients: ops,
		})
	}

	var order entity.Order
	if err := c.do(http.MethodPost, "/orders/local", body, &order); err != nil {
		return entity.Order{}, err
	}
	return order, nil
}

// OrdersTodayByStatus lista las órdenes del día; date opcional para el
// dashboard.
func (c *Client) OrdersTodayByStatus(status string, date *time.Time) ([]entity.Order, error) {
	if c.Token() == "" {
		return nil, ErrNoSession
	}

	path := "/orders/today/" + status
	if date != nil {
		path += "?date=" + date.Format("2006-01-02")
	}

	var out struct {
		Message string         `json:"message"`
		Orders  []entity.Order `json:"orders"`
	}
	if err := c.do(http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return out.Orders, nil
}

func (c *Client) UpdateOrderStatus(orderID string, status entity.OrderStatus) (entity.Order, error) {
	if c.Token() == "" {
		return entity.Order{}, ErrNoSession
	}

	var order entity.Order
	err := c.do(http.MethodPatch, "/orders/"+orderID+"/status", map[string]string{
		"status": string(status),
	}, &order)
	if err != nil {
		return entity.Order{}, err
	}
	return order, nil
}

// Catalog es el snapshot completo que baja para el cache local.
type Catalog struct {
	Categories  []entity.Category   `json:"categories"`
	Ingredients []entity.Ingredient `json:"ingredients"`
	Products    []entity.Product    `json:"products"`
}

func (c *Client) FetchCatalog() (Catalog, error) {
	if c.Token() == "" {
		return Catalog{}, ErrNoSession
	}

	var cat Catalog
	if err := c.do(http.MethodGet, "/catalog", nil, &cat); err != nil {
		return Catalog{}, err
	}
	return cat, nil
}
