package model_test

import (
	"testing"

	"go-stockroom/internal/model"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestFormatOrderNumber(t *testing.T) {
	assert.Equal(t, "SO-2025-0001", model.FormatOrderNumber(model.OrderTypeSale, 2025, 1))
	assert.Equal(t, "PO-2025-0042", model.FormatOrderNumber(model.OrderTypePurchase, 2025, 42))
	// Padding stops mattering past four digits
	assert.Equal(t, "SO-2026-12345", model.FormatOrderNumber(model.OrderTypeSale, 2026, 12345))
}

func TestOrderTypePrefix(t *testing.T) {
	assert.Equal(t, "SO", model.OrderTypeSale.Prefix())
	assert.Equal(t, "PO", model.OrderTypePurchase.Prefix())
}

func TestValidStatus(t *testing.T) {
	cases := []struct {
		orderType model.OrderType
		status    model.OrderStatus
		want      bool
	}{
		{model.OrderTypeSale, model.StatusPending, true},
		{model.OrderTypeSale, model.StatusDelivered, true},
		{model.OrderTypeSale, model.StatusReceived, false},
		{model.OrderTypePurchase, model.StatusReceived, true},
		{model.OrderTypePurchase, model.StatusDelivered, false},
		{model.OrderTypePurchase, model.StatusCancelled, true},
		{model.OrderTypeSale, model.OrderStatus("archived"), false},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, tc.orderType.ValidStatus(tc.status),
			"%s / %s", tc.orderType, tc.status)
	}
}

func TestOrderItemRequestPrice(t *testing.T) {
	req := model.OrderItemRequest{
		UnitPrice: decimal.NewFromFloat(10.00),
		UnitCost:  decimal.NewFromFloat(6.00),
	}
	assert.True(t, req.Price(model.OrderTypeSale).Equal(decimal.NewFromFloat(10.00)))
	assert.True(t, req.Price(model.OrderTypePurchase).Equal(decimal.NewFromFloat(6.00)))

	// A purchase payload that only fills unit_price still resolves.
	req = model.OrderItemRequest{UnitPrice: decimal.NewFromFloat(7.00)}
	assert.True(t, req.Price(model.OrderTypePurchase).Equal(decimal.NewFromFloat(7.00)))
}

func TestProductIsLowStock(t *testing.T) {
	p := model.Product{Stock: 5, MinStockLevel: 5}
	assert.True(t, p.IsLowStock(), "at threshold counts as low")

	p.Stock = 6
	assert.False(t, p.IsLowStock())

	p.Stock = 0
	assert.True(t, p.IsLowStock())
}
