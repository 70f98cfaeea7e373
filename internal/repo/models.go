package repo

import (
	"time"

	"github.com/shiplogix/shipping-service/internal/entities"
)

type Order struct {
	ID                int64     `db:"id"`
	CustomerID        int64     `db:"customer_id"`
	ShippingAddress   string    `db:"shipping_address"`
	Pincode           string    `db:"pincode"`
	ConsignmentWeight float64   `db:"consignment_weight"`
	ShippingCost      float64   `db:"shipping_cost"`
	Status            string    `db:"status"`
	CreatedAt         time.Time `db:"created_at"`
	UpdatedAt         time.Time `db:"updated_at"`
}

func OrderToEntity(o Order) entities.Order {
	return entities.Order{
		ID:                o.ID,
		CustomerID:        o.CustomerID,
		ShippingAddress:   o.ShippingAddress,
		Pincode:           o.Pincode,
		ConsignmentWeight: o.ConsignmentWeight,
		ShippingCost:      o.ShippingCost,
		Status:            o.Status,
		CreatedAt:         o.CreatedAt,
		UpdatedAt:         o.UpdatedAt,
	}
}
