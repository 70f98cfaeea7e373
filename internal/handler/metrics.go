package handler

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ordersCreated = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "shipping_service",
		Subsystem: "orders",
		Name:      "created_total",
		Help:      "Total number of orders created.",
	})

	ordersDeleted = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "shipping_service",
		Subsystem: "orders",
		Name:      "deleted_total",
		Help:      "Total number of orders deleted.",
	})
)
