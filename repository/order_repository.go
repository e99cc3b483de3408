package repository

import (
	"time"

	"github.com/estefano99/pedidos-pos/entity"
	"gorm.io/gorm"
)

// Cache local de órdenes canónicas. El backend es el dueño de los datos;
// esto solo guarda los snapshots que ya devolvió.
type OrderRepository struct {
	DB *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{DB: db}
}

// Save upsertea la orden con sus ítems y customizaciones. Reemplazo
// entero: las órdenes nunca se parchean, se pisan con el snapshot nuevo.
func (r *OrderRepository) Save(o *entity.Order) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		err := tx.Where("order_item_id IN (?)",
			tx.Model(&entity.OrderItem{}).Select("id").Where("order_id = ?", o.ID),
		).Delete(&entity.IngredientCustomization{}).Error
		if err != nil {
			return err
		}
		if err := tx.Where("order_id = ?", o.ID).Delete(&entity.OrderItem{}).Error; err != nil {
			return err
		}
		if err := tx.Where("id = ?", o.ID).Delete(&entity.Order{}).Error; err != nil {
			return err
		}
		return tx.Create(o).Error
	})
}

func (r *OrderRepository) Get(orderID string) (*entity.Order, error) {
	var o entity.Order
	err := r.DB.
		Preload("Items").
		Preload("Items.Customizations").
		First(&o, "id = ?", orderID).Error
	if err != nil {
		return nil, err
	}
	return &o, nil
}

// ListByStatus filtra por estado y día; status vacío = todos.
func (r *OrderRepository) ListByStatus(status entity.OrderStatus, day *time.Time) ([]entity.Order, error) {
	q := r.DB.Model(&entity.Order{}).
		Preload("Items").
		Preload("Items.Customizations").
		Order("created_at DESC")

	if status != "" {
		q = q.Where("status = ?", status)
	}
	if day != nil {
		start := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
		q = q.Where("created_at >= ? AND created_at < ?", start, start.Add(24*time.Hour))
	}

	var out []entity.Order
	err := q.Find(&out).Error
	return out, err
}

func (r *OrderRepository) UpdateStatus(orderID string, status entity.OrderStatus) error {
	return r.DB.Model(&entity.Order{}).
		Where("id = ?", orderID).
		Update("status", status).Error
}
