package handler

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/shiplogix/shipping-service/internal/entities"
	"github.com/shiplogix/shipping-service/internal/service"
	"github.com/shiplogix/shipping-service/internal/shipping"
	"github.com/shiplogix/shipping-service/pkg/utils"
)

type OrderService interface {
	CreateOrder(ctx context.Context, in service.CreateOrderInput) (entities.Order, error)
	GetOrderByID(ctx context.Context, id int64) (entities.Order, error)
	ListOrders(ctx context.Context) ([]entities.Order, error)
	DeleteOrder(ctx context.Context, id int64) error
}

type PincodeVerifier interface {
	Verify(ctx context.Context, pincode string) bool
}

type HTTPHandler struct {
	logger   *slog.Logger
	validate *validator.Validate
	svc      OrderService
	verifier PincodeVerifier
}

func NewHTTPHandler(logger *slog.Logger, svc OrderService, verifier PincodeVerifier) *HTTPHandler {
	return &HTTPHandler{
		logger:   logger.With(slog.String("handler", "http")),
		validate: validator.New(),
		svc:      svc,
		verifier: verifier,
	}
}

func (h *HTTPHandler) Init(r chi.Router) {
	r.Route("/api", func(r chi.Router) {
		r.Get("/shipping/verify_pincode/{pincode}", h.VerifyPincode)
		r.Post("/shipping/calculate", h.CalculateShipping)

		r.Post("/orders", h.CreateOrder)
		r.Get("/orders", h.ListOrders)
		r.Get("/orders/{id}", h.GetOrderByID)
		r.Delete("/orders/{id}", h.DeleteOrder)
	})
}

// VerifyPincode checks a pincode against the external lookup.
// @Summary      Verify a pincode
// @Description  Validates the format of a 6-digit pincode and confirms it exists via the external postal-code lookup
// @Tags         shipping
// @Param        pincode   path      string  true  "6-digit pincode"
// @Success      200  {object}  MessageResponse
// @Failure      400  {object}  utils.ErrorResponse "Invalid pincode"
// @Router       /api/shipping/verify_pincode/{pincode} [get]
func (h *HTTPHandler) VerifyPincode(w http.ResponseWriter, r *http.Request) {
	pin := chi.URLParam(r, "pincode")

	if !h.verifier.Verify(r.Context(), pin) {
		utils.WriteError(w, "Invalid pincode", http.StatusBadRequest)
		return
	}

	utils.WriteJSON(w, MessageResponse{Message: "Pincode is valid"}, http.StatusOK)
}

// CalculateShipping computes the shipping cost for a consignment weight.
// @Summary      Calculate shipping cost
// @Description  Returns base cost plus per-kilogram cost for the given weight
// @Tags         shipping
// @Accept       json
// @Param        request   body      CalculateShippingRequest  true  "Consignment weight in kilograms"
// @Success      200  {object}  CalculateShippingResponse
// @Failure      400  {object}  utils.ErrorResponse "Invalid weight"
// @Router       /api/shipping/calculate [post]
func (h *HTTPHandler) CalculateShipping(w http.ResponseWriter, r *http.Request) {
	var req CalculateShippingRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteError(w, "Invalid weight provided", http.StatusBadRequest)
		return
	}

	if req.Weight == nil || *req.Weight <= 0 {
		utils.WriteError(w, "Invalid weight provided", http.StatusBadRequest)
		return
	}

	utils.WriteJSON(w, CalculateShippingResponse{ShippingCost: shipping.Cost(*req.Weight)}, http.StatusOK)
}

// CreateOrder registers a new shipping order.
// @Summary      Create an order
// @Description  Validates the shipping address pincode, computes the shipping cost and persists the order
// @Tags         orders
// @Accept       json
// @Param        request   body      CreateOrderRequest  true  "Order to create"
// @Success      201  {object}  CreateOrderResponse
// @Failure      400  {object}  utils.ErrorResponse "Invalid pincode or weight"
// @Failure      500  {object}  utils.ErrorResponse "Internal server error"
// @Router       /api/orders [post]
func (h *HTTPHandler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req CreateOrderRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteError(w, "invalid request", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	order, err := h.svc.CreateOrder(ctx, service.CreateOrderInput{
		CustomerID:        req.CustomerID,
		ShippingAddress:   req.ShippingAddress,
		ConsignmentWeight: req.ConsignmentWeight,
	})

	// A malformed address collapses into the pincode error: the pincode is
	// part of the address, so the client fix is the same.
	if errors.Is(err, entities.ErrMalformedAddress) || errors.Is(err, entities.ErrInvalidPincode) {
		utils.WriteError(w, "Invalid pincode", http.StatusBadRequest)
		return
	}
	if errors.Is(err, entities.ErrInvalidWeight) {
		utils.WriteError(w, "Invalid weight provided", http.StatusBadRequest)
		return
	}
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to create order", slog.Any("error", err))
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	ordersCreated.Inc()
	utils.WriteJSON(w, CreateOrderResponse{
		Message: "Order created successfully",
		OrderID: order.ID,
	}, http.StatusCreated)
}

// ListOrders returns all orders.
// @Summary      List orders
// @Tags         orders
// @Success      200  {array}  Order
// @Failure      500  {object}  utils.ErrorResponse "Internal server error"
// @Router       /api/orders [get]
func (h *HTTPHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	orders, err := h.svc.ListOrders(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to list orders", slog.Any("error", err))
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	res := make([]Order, 0, len(orders))
	for _, order := range orders {
		res = append(res, OrderEntityToJSON(order))
	}
	utils.WriteJSON(w, res, http.StatusOK)
}

// GetOrderByID returns a single order.
// @Summary      Get an order by id
// @Tags         orders
// @Param        id   path      int  true  "Order id"
// @Success      200  {object}  Order
// @Failure      404  {object}  utils.ErrorResponse "Order not found"
// @Failure      500  {object}  utils.ErrorResponse "Internal server error"
// @Router       /api/orders/{id} [get]
func (h *HTTPHandler) GetOrderByID(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, ok := orderID(r)
	if !ok {
		utils.WriteError(w, "Order not found", http.StatusNotFound)
		return
	}

	order, err := h.svc.GetOrderByID(ctx, id)
	if errors.Is(err, entities.ErrOrderNotFound) {
		utils.WriteError(w, "Order not found", http.StatusNotFound)
		return
	}
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to get order", slog.Any("error", err), slog.Int64("order_id", id))
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, OrderEntityToJSON(order), http.StatusOK)
}

// DeleteOrder removes an order permanently.
// @Summary      Delete an order
// @Tags         orders
// @Param        id   path      int  true  "Order id"
// @Success      200  {object}  MessageResponse
// @Failure      404  {object}  utils.ErrorResponse "Order not found"
// @Failure      500  {object}  utils.ErrorResponse "Internal server error"
// @Router       /api/orders/{id} [delete]
func (h *HTTPHandler) DeleteOrder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, ok := orderID(r)
	if !ok {
		utils.WriteError(w, "Order not found", http.StatusNotFound)
		return
	}

	err := h.svc.DeleteOrder(ctx, id)
	if errors.Is(err, entities.ErrOrderNotFound) {
		utils.WriteError(w, "Order not found", http.StatusNotFound)
		return
	}
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to delete order", slog.Any("error", err), slog.Int64("order_id", id))
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	ordersDeleted.Inc()
	utils.WriteJSON(w, MessageResponse{
		Message: fmt.Sprintf("Order %d deleted successfully", id),
	}, http.StatusOK)
}

// orderID parses the id path parameter. A non-numeric id means the resource
// cannot exist, so callers treat it as not found.
func orderID(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}
