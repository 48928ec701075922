package repository

import (
	"errors"

	"go-stockroom/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type OrderRepository interface {
	// Create assigns the next order number for (type, order-date year)
	// and persists the header plus all items as one transaction.
	Create(order *model.Order) error
	// Replace overwrites the header fields and swaps the full item set
	// atomically. Items omitted from the new set are gone afterwards.
	Replace(order *model.Order, items []model.OrderItem) error
	Delete(id uuid.UUID) error
	FindByID(id uuid.UUID) (*model.Order, error)
	FindAll(orderType, status string, page, pageSize int) ([]model.Order, int64, error)
	CountByCustomer(customerID uuid.UUID) (int64, error)
}

type orderRepo struct {
	db *gorm.DB
}

func NewOrderRepo(db *gorm.DB) OrderRepository {
	return &orderRepo{db}
}

func (r *orderRepo) Create(order *model.Order) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		seq, err := nextSequence(tx, order.Type, order.OrderDate.Year())
		if err != nil {
			return err
		}
		order.OrderNumber = model.FormatOrderNumber(order.Type, order.OrderDate.Year(), seq)
		return tx.Create(order).Error
	})
}

// nextSequence increments the (type, year) counter row under FOR UPDATE
// so concurrent creators serialize on it and never share a number.
func nextSequence(tx *gorm.DB, orderType model.OrderType, year int) (int, error) {
	var seq model.OrderSequence
	err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("order_type = ? AND year = ?", orderType, year).
		First(&seq).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		seq = model.OrderSequence{OrderType: orderType, Year: year, LastValue: 0}
		if err := tx.Create(&seq).Error; err != nil {
			return 0, err
		}
	} else if err != nil {
		return 0, err
	}

	seq.LastValue++
	if err := tx.Model(&model.OrderSequence{}).
		Where("order_type = ? AND year = ?", orderType, year).
		Update("last_value", seq.LastValue).Error; err != nil {
		return 0, err
	}
	return seq.LastValue, nil
}

func (r *orderRepo) Replace(order *model.Order, items []model.OrderItem) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Items").Save(order).Error; err != nil {
			return err
		}
		if err := tx.Where("order_id = ?", order.ID).Delete(&model.OrderItem{}).Error; err != nil {
			return err
		}
		for i := range items {
			items[i].OrderID = order.ID
		}
		if err := tx.Create(&items).Error; err != nil {
			return err
		}
		order.Items = items
		return nil
	})
}

func (r *orderRepo) Delete(id uuid.UUID) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("order_id = ?", id).Delete(&model.OrderItem{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Order{}, "id = ?", id).Error
	})
}

func (r *orderRepo) FindByID(id uuid.UUID) (*model.Order, error) {
	var order model.Order
	err := r.db.Preload("Customer").Preload("Supplier").
		Preload("Items").Preload("Items.Product").
		First(&order, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *orderRepo) FindAll(orderType, status string, page, pageSize int) ([]model.Order, int64, error) {
	var orders []model.Order
	var total int64

	query := r.db.Model(&model.Order{})
	if orderType != "" {
		query = query.Where("type = ?", orderType)
	}
	if status != "" {
		query = query.Where("status = ?", status)
	}
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	err := query.Preload("Customer").Preload("Supplier").Preload("Items").
		Order("order_date DESC, order_number DESC").
		Limit(pageSize).Offset((page - 1) * pageSize).
		Find(&orders).Error
	return orders, total, err
}

func (r *orderRepo) CountByCustomer(customerID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.Model(&model.Order{}).Where("customer_id = ?", customerID).Count(&count).Error
	return count, err
}
