package entity

import (
	"time"
)

type OrderStatus string

const (
	OrderPending       OrderStatus = "PENDING"
	OrderInPreparation OrderStatus = "IN_PREPARATION"
	OrderReady         OrderStatus = "READY"
	OrderDelivered     OrderStatus = "DELIVERED"
	OrderCancelled     OrderStatus = "CANCELLED"
)

func (s OrderStatus) Valid() bool {
	switch s {
	case OrderPending, OrderInPreparation, OrderReady, OrderDelivered, OrderCancelled:
		return true
	}
	return false
}

type OrderSource string

const (
	SourceLocal  OrderSource = "LOCAL"
	SourceOnline OrderSource = "ONLINE"
)

// Order es el registro canónico que devuelve el backend (trae code,
// createdAt y precios por ítem). La terminal solo lo lee y lo cachea.
type Order struct {
	ID                string      `json:"id" gorm:"primaryKey"`
	Code              string      `json:"code"`
	CustomerName      string      `json:"customerName"`
	ScheduledTime     *time.Time  `json:"scheduledTime"`
	Items             []OrderItem `json:"items" gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	Total             float64     `json:"total"`
	Status            OrderStatus `json:"status"`
	Source            OrderSource `json:"source"`
	TenantID          string      `json:"tenantId"`
	TenantDisplayName string      `json:"tenantDisplayName"`
	CreatedAt         time.Time   `json:"createdAt"`
}
