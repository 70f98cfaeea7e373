package handler_test

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/shiplogix/shipping-service/internal/entities"
	"github.com/shiplogix/shipping-service/internal/handler"
	mocks "github.com/shiplogix/shipping-service/internal/handler/mocks"
	"github.com/shiplogix/shipping-service/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func serve(t *testing.T, method, target, body string, setup func(svc *mocks.MockOrderService, verifier *mocks.MockPincodeVerifier)) *http.Response {
	t.Helper()

	svc := mocks.NewMockOrderService(t)
	verifier := mocks.NewMockPincodeVerifier(t)
	if setup != nil {
		setup(svc, verifier)
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	h := handler.NewHTTPHandler(logger, svc, verifier)

	r := chi.NewRouter()
	h.Init(r)

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	res := rr.Result()
	t.Cleanup(func() { res.Body.Close() })
	return res
}

func TestHTTPHandler_VerifyPincode(t *testing.T) {
	testCases := []struct {
		name       string
		pincode    string
		valid      bool
		wantStatus int
		wantBody   string
	}{
		{
			name:       "valid pincode",
			pincode:    "560001",
			valid:      true,
			wantStatus: http.StatusOK,
			wantBody:   `"Pincode is valid"`,
		},
		{
			name:       "invalid pincode",
			pincode:    "999999",
			valid:      false,
			wantStatus: http.StatusBadRequest,
			wantBody:   `"Invalid pincode"`,
		},
		{
			name:       "malformed pincode",
			pincode:    "12345",
			valid:      false,
			wantStatus: http.StatusBadRequest,
			wantBody:   `"Invalid pincode"`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			res := serve(t, http.MethodGet, "/api/shipping/verify_pincode/"+tc.pincode, "",
				func(svc *mocks.MockOrderService, verifier *mocks.MockPincodeVerifier) {
					verifier.EXPECT().Verify(mock.Anything, tc.pincode).Return(tc.valid).Once()
				})

			body, err := io.ReadAll(res.Body)
			require.NoError(t, err)
			assert.Equal(t, tc.wantStatus, res.StatusCode)
			assert.Contains(t, string(body), tc.wantBody)
		})
	}
}

func TestHTTPHandler_CalculateShipping(t *testing.T) {
	testCases := []struct {
		name       string
		body       string
		wantStatus int
		wantBody   string
	}{
		{
			name:       "valid weight",
			body:       `{"weight": 3.0}`,
			wantStatus: http.StatusOK,
			wantBody:   `"shipping_cost":11`,
		},
		{
			name:       "zero weight",
			body:       `{"weight": 0}`,
			wantStatus: http.StatusBadRequest,
			wantBody:   `"Invalid weight provided"`,
		},
		{
			name:       "negative weight",
			body:       `{"weight": -1}`,
			wantStatus: http.StatusBadRequest,
			wantBody:   `"Invalid weight provided"`,
		},
		{
			name:       "missing weight",
			body:       `{}`,
			wantStatus: http.StatusBadRequest,
			wantBody:   `"Invalid weight provided"`,
		},
		{
			name:       "garbage body",
			body:       `not json`,
			wantStatus: http.StatusBadRequest,
			wantBody:   `"Invalid weight provided"`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			res := serve(t, http.MethodPost, "/api/shipping/calculate", tc.body, nil)

			body, err := io.ReadAll(res.Body)
			require.NoError(t, err)
			assert.Equal(t, tc.wantStatus, res.StatusCode)
			assert.Contains(t, string(body), tc.wantBody)
		})
	}
}

func TestHTTPHandler_CreateOrder(t *testing.T) {
	created := entities.Order{
		ID:                42,
		CustomerID:        1,
		ShippingAddress:   "123 Main St 560001",
		Pincode:           "560001",
		ConsignmentWeight: 3.0,
		ShippingCost:      11.0,
		Status:            entities.StatusPending,
	}

	testCases := []struct {
		name         string
		body         string
		mockBehavior func(svc *mocks.MockOrderService)
		wantStatus   int
		wantBody     string
	}{
		{
			name: "created",
			body: `{"customer_id": 1, "shipping_address": "123 Main St 560001", "consignment_weight": 3.0}`,
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().
					CreateOrder(mock.Anything, service.CreateOrderInput{
						CustomerID:        1,
						ShippingAddress:   "123 Main St 560001",
						ConsignmentWeight: 3.0,
					}).
					Return(created, nil).Once()
			},
			wantStatus: http.StatusCreated,
			wantBody:   `"Order created successfully"`,
		},
		{
			name: "invalid pincode",
			body: `{"customer_id": 1, "shipping_address": "123 Main St 999999", "consignment_weight": 3.0}`,
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().
					CreateOrder(mock.Anything, mock.Anything).
					Return(entities.Order{}, entities.ErrInvalidPincode).Once()
			},
			wantStatus: http.StatusBadRequest,
			wantBody:   `"Invalid pincode"`,
		},
		{
			name: "malformed address maps to pincode error",
			body: `{"customer_id": 1, "shipping_address": "123 Main St 12345", "consignment_weight": 3.0}`,
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().
					CreateOrder(mock.Anything, mock.Anything).
					Return(entities.Order{}, entities.ErrMalformedAddress).Once()
			},
			wantStatus: http.StatusBadRequest,
			wantBody:   `"Invalid pincode"`,
		},
		{
			name: "invalid weight",
			body: `{"customer_id": 1, "shipping_address": "123 Main St 560001", "consignment_weight": -1}`,
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().
					CreateOrder(mock.Anything, mock.Anything).
					Return(entities.Order{}, entities.ErrInvalidWeight).Once()
			},
			wantStatus: http.StatusBadRequest,
			wantBody:   `"Invalid weight provided"`,
		},
		{
			name:       "missing shipping address",
			body:       `{"customer_id": 1, "consignment_weight": 3.0}`,
			wantStatus: http.StatusBadRequest,
			wantBody:   `"invalid request"`,
		},
		{
			name: "service failure",
			body: `{"customer_id": 1, "shipping_address": "123 Main St 560001", "consignment_weight": 3.0}`,
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().
					CreateOrder(mock.Anything, mock.Anything).
					Return(entities.Order{}, errors.New("db error")).Once()
			},
			wantStatus: http.StatusInternalServerError,
			wantBody:   `"internal server error"`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			res := serve(t, http.MethodPost, "/api/orders", tc.body,
				func(svc *mocks.MockOrderService, verifier *mocks.MockPincodeVerifier) {
					if tc.mockBehavior != nil {
						tc.mockBehavior(svc)
					}
				})

			body, err := io.ReadAll(res.Body)
			require.NoError(t, err)
			assert.Equal(t, tc.wantStatus, res.StatusCode)
			assert.Contains(t, string(body), tc.wantBody)

			if tc.wantStatus == http.StatusCreated {
				var resp map[string]any
				require.NoError(t, json.Unmarshal(body, &resp))
				assert.EqualValues(t, 42, resp["order_id"])
			}
		})
	}
}

func TestHTTPHandler_ListOrders(t *testing.T) {
	now := time.Now().UTC().Truncate(time.Second)
	orders := []entities.Order{
		{ID: 1, CustomerID: 1, Pincode: "560001", ShippingCost: 11.0, Status: entities.StatusPending, CreatedAt: now, UpdatedAt: now},
		{ID: 2, CustomerID: 2, Pincode: "110001", ShippingCost: 7.0, Status: entities.StatusPending, CreatedAt: now, UpdatedAt: now},
	}

	res := serve(t, http.MethodGet, "/api/orders", "",
		func(svc *mocks.MockOrderService, verifier *mocks.MockPincodeVerifier) {
			svc.EXPECT().ListOrders(mock.Anything).Return(orders, nil).Once()
		})

	body, err := io.ReadAll(res.Body)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, res.StatusCode)

	var resp []map[string]any
	require.NoError(t, json.Unmarshal(body, &resp))
	require.Len(t, resp, 2)
	assert.EqualValues(t, 1, resp[0]["id"])
	assert.Equal(t, "560001", resp[0]["pincode"])
	assert.EqualValues(t, 2, resp[1]["id"])
}

func TestHTTPHandler_GetOrderByID(t *testing.T) {
	validOrder := entities.Order{ID: 42, Pincode: "560001", Status: entities.StatusPending}

	testCases := []struct {
		name         string
		id           string
		mockBehavior func(svc *mocks.MockOrderService)
		wantStatus   int
		wantBody     string
	}{
		{
			name: "found",
			id:   "42",
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().GetOrderByID(mock.Anything, int64(42)).Return(validOrder, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"pincode":"560001"`,
		},
		{
			name: "not found",
			id:   "77",
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().GetOrderByID(mock.Anything, int64(77)).
					Return(entities.Order{}, entities.ErrOrderNotFound).Once()
			},
			wantStatus: http.StatusNotFound,
			wantBody:   `"Order not found"`,
		},
		{
			name:       "non-numeric id",
			id:         "abc",
			wantStatus: http.StatusNotFound,
			wantBody:   `"Order not found"`,
		},
		{
			name: "internal error",
			id:   "42",
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().GetOrderByID(mock.Anything, int64(42)).
					Return(entities.Order{}, errors.New("db error")).Once()
			},
			wantStatus: http.StatusInternalServerError,
			wantBody:   `"internal server error"`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			res := serve(t, http.MethodGet, "/api/orders/"+tc.id, "",
				func(svc *mocks.MockOrderService, verifier *mocks.MockPincodeVerifier) {
					if tc.mockBehavior != nil {
						tc.mockBehavior(svc)
					}
				})

			body, err := io.ReadAll(res.Body)
			require.NoError(t, err)
			assert.Equal(t, tc.wantStatus, res.StatusCode)
			assert.Contains(t, string(body), tc.wantBody)
		})
	}
}

func TestHTTPHandler_DeleteOrder(t *testing.T) {
	testCases := []struct {
		name         string
		id           string
		mockBehavior func(svc *mocks.MockOrderService)
		wantStatus   int
		wantBody     string
	}{
		{
			name: "deleted",
			id:   "42",
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().DeleteOrder(mock.Anything, int64(42)).Return(nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"Order 42 deleted successfully"`,
		},
		{
			name: "not found",
			id:   "77",
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().DeleteOrder(mock.Anything, int64(77)).
					Return(entities.ErrOrderNotFound).Once()
			},
			wantStatus: http.StatusNotFound,
			wantBody:   `"Order not found"`,
		},
		{
			name:       "non-numeric id",
			id:         "abc",
			wantStatus: http.StatusNotFound,
			wantBody:   `"Order not found"`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			res := serve(t, http.MethodDelete, "/api/orders/"+tc.id, "",
				func(svc *mocks.MockOrderService, verifier *mocks.MockPincodeVerifier) {
					if tc.mockBehavior != nil {
						tc.mockBehavior(svc)
					}
				})

			body, err := io.ReadAll(res.Body)
			require.NoError(t, err)
			assert.Equal(t, tc.wantStatus, res.StatusCode)
			assert.Contains(t, string(body), tc.wantBody)
		})
	}
}
