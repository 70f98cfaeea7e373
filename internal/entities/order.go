package entities

import (
	"errors"
	"time"
)

// StatusPending is the only status an order ever has: it is assigned at
// creation and no operation changes it.
const StatusPending = "Pending"

type Order struct {
	ID                int64
	CustomerID        int64
	ShippingAddress   string
	Pincode           string
	ConsignmentWeight float64
	ShippingCost      float64
	Status            string
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

var (
	ErrOrderNotFound = errors.New("order not found")

	ErrMalformedAddress = errors.New("shipping address has no valid pincode")
	ErrInvalidPincode   = errors.New("invalid pincode")
	ErrInvalidWeight    = errors.New("invalid consignment weight")
)
