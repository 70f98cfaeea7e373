package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"math/rand"
	"net/http"
	"os/signal"
	"syscall"
	"time"
)

const baseURL = "http://localhost:8080/api/orders"

// Pincodes that exist in the zippopotam.us dataset for India.
var knownPincodes = []string{"110001", "400001", "560001", "600001", "700001"}

type CreateOrderRequest struct {
	CustomerID        int64   `json:"customer_id"`
	ShippingAddress   string  `json:"shipping_address"`
	ConsignmentWeight float64 `json:"consignment_weight"`
}

func generateRandomOrder() CreateOrderRequest {
	pin := knownPincodes[rand.Intn(len(knownPincodes))]
	return CreateOrderRequest{
		CustomerID:        int64(rand.Intn(1000) + 1),
		ShippingAddress:   fmt.Sprintf("%d Station Road %s", rand.Intn(200)+1, pin),
		ConsignmentWeight: float64(rand.Intn(200)+1) / 10,
	}
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	client := &http.Client{Timeout: 10 * time.Second}

	ticker := time.NewTicker(2 * time.Second)
	for {
		select {
		case <-ticker.C:
			order := generateRandomOrder()
			data, _ := json.Marshal(order)

			resp, err := client.Post(baseURL, "application/json", bytes.NewReader(data))
			if err != nil {
				log.Println("request failed:", err)
				continue
			}
			log.Println("order posted", order.ShippingAddress, "->", resp.Status)
			resp.Body.Close()
		case <-ctx.Done():
			return
		}
	}
}
