package handler

import (
	"time"

	"github.com/shiplogix/shipping-service/internal/entities"
)

// MessageResponse carries a human-readable result message
// swagger:model MessageResponse
type MessageResponse struct {
	Message string `json:"message"`
}

type CalculateShippingRequest struct {
	// Weight is a pointer so that a missing field is distinguishable from 0.
	Weight *float64 `json:"weight"`
}

type CalculateShippingResponse struct {
	ShippingCost float64 `json:"shipping_cost"`
}

type CreateOrderRequest struct {
	CustomerID        int64   `json:"customer_id" validate:"required"`
	ShippingAddress   string  `json:"shipping_address" validate:"required"`
	ConsignmentWeight float64 `json:"consignment_weight"`
}

type CreateOrderResponse struct {
	Message string `json:"message"`
	OrderID int64  `json:"order_id"`
}

// Order represents a shipping order
type Order struct {
	ID                int64     `json:"id"`
	CustomerID        int64     `json:"customer_id"`
	ShippingAddress   string    `json:"shipping_address"`
	ConsignmentWeight float64   `json:"consignment_weight"`
	ShippingCost      float64   `json:"shipping_cost"`
	Status            string    `json:"status"`
	Pincode           string    `json:"pincode"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

func OrderEntityToJSON(o entities.Order) Order {
	return Order{
		ID:                o.ID,
		CustomerID:        o.CustomerID,
		ShippingAddress:   o.ShippingAddress,
		ConsignmentWeight: o.ConsignmentWeight,
		ShippingCost:      o.ShippingCost,
		Status:            o.Status,
		Pincode:           o.Pincode,
		CreatedAt:         o.CreatedAt,
		UpdatedAt:         o.UpdatedAt,
	}
}
