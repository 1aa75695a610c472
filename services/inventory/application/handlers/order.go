package handlers

import (
	"net/http"
	"time"

	"github.com/shopspring/decimal"

	"github.com/ghuser/stockery/pkg/errhttp"
	"github.com/ghuser/stockery/pkg/httpx"
	pkgvalidator "github.com/ghuser/stockery/pkg/validator"
	appsvcs "github.com/ghuser/stockery/services/inventory/application/services"
	"github.com/ghuser/stockery/services/inventory/domain/models"
)

// CreateOrderRequest is the request body for POST /orders.
type CreateOrderRequest struct {
	ClientID int64 `json:"client_id" validate:"required,gt=0"`
}

// UpdateOrderRequest is the request body for PUT /orders/{id}.
type UpdateOrderRequest struct {
	ClientID int64  `json:"client_id" validate:"required,gt=0"`
	Status   string `json:"status" validate:"required,min=1,max=32"`
}

// OrderResponse is the JSON shape of an order.
type OrderResponse struct {
	ID          int64           `json:"id"`
	ClientID    int64           `json:"client_id"`
	Status      string          `json:"status"`
	TotalAmount decimal.Decimal `json:"total_amount"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// OrderDetailResponse is an order with its lines, for GET /orders/{id}.
type OrderDetailResponse struct {
	OrderResponse
	Items []OrderItemResponse `json:"items"`
}

// OrderItemResponse is the JSON shape of one order line.
type OrderItemResponse struct {
	ID        int64           `json:"id"`
	OrderID   int64           `json:"order_id"`
	ItemID    int64           `json:"item_id"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

func newOrderResponse(o *models.Order) OrderResponse {
	return OrderResponse{
		ID:          o.ID,
		ClientID:    o.ClientID,
		Status:      o.Status,
		TotalAmount: o.TotalAmount,
		CreatedAt:   o.CreatedAt,
		UpdatedAt:   o.UpdatedAt,
	}
}

func newOrderItemResponse(li *models.OrderItem) OrderItemResponse {
	return OrderItemResponse{
		ID:        li.ID,
		OrderID:   li.OrderID,
		ItemID:    li.ItemID,
		Quantity:  li.Quantity,
		UnitPrice: li.UnitPrice,
		CreatedAt: li.CreatedAt,
		UpdatedAt: li.UpdatedAt,
	}
}

// OrderHandler handles the /orders endpoints.
type OrderHandler struct {
	svc *appsvcs.Services
}

// NewOrderHandler returns an OrderHandler backed by the given services.
func NewOrderHandler(svc *appsvcs.Services) *OrderHandler {
	return &OrderHandler{svc: svc}
}

// Create handles POST /orders.
func (h *OrderHandler) Create(w http.ResponseWriter, r *http.Request) {
	req, ok := pkgvalidator.ValidateRequest[CreateOrderRequest](w, r)
	if !ok {
		return
	}

	order, err := h.svc.Order.Create(r.Context(), req.ClientID)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	httpx.JSON(w, http.StatusCreated, newOrderResponse(order))
}

// Get handles GET /orders/{id}. The response includes the order's lines.
func (h *OrderHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	detail, err := h.svc.Order.GetByID(r.Context(), id)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	items := make([]OrderItemResponse, 0, len(detail.Items))
	for _, li := range detail.Items {
		items = append(items, newOrderItemResponse(li))
	}
	httpx.JSON(w, http.StatusOK, OrderDetailResponse{
		OrderResponse: newOrderResponse(detail.Order),
		Items:         items,
	})
}

// List handles GET /orders.
func (h *OrderHandler) List(w http.ResponseWriter, r *http.Request) {
	orders, err := h.svc.Order.List(r.Context())
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	out := make([]OrderResponse, 0, len(orders))
	for _, o := range orders {
		out = append(out, newOrderResponse(o))
	}
	httpx.JSON(w, http.StatusOK, out)
}

// Update handles PUT /orders/{id}.
func (h *OrderHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	req, ok := pkgvalidator.ValidateRequest[UpdateOrderRequest](w, r)
	if !ok {
		return
	}

	order, err := h.svc.Order.Update(r.Context(), id, req.ClientID, req.Status)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, newOrderResponse(order))
}

// Delete handles DELETE /orders/{id}.
func (h *OrderHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	if err := h.svc.Order.Delete(r.Context(), id); err != nil {
		errhttp.WriteError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
