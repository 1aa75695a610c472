package handlers

import (
	"net/http"

	"github.com/ghuser/stockery/pkg/errhttp"
	"github.com/ghuser/stockery/pkg/httpx"
	pkgvalidator "github.com/ghuser/stockery/pkg/validator"
	appsvcs "github.com/ghuser/stockery/services/inventory/application/services"
	invdomain "github.com/ghuser/stockery/services/inventory/domain"
)

// AddItemToOrderRequest is the request body for POST /orders/{id}/items.
// OrderID is carried in both the path and the body; the two must agree.
type AddItemToOrderRequest struct {
	OrderID  int64 `json:"order_id" validate:"required,gt=0"`
	ItemID   int64 `json:"item_id" validate:"required,gt=0"`
	Quantity int   `json:"quantity" validate:"required,gt=0,lte=1000"`
}

// AddItemToOrderResponse is returned when an item was added to an order.
type AddItemToOrderResponse struct {
	Success     bool   `json:"success"`
	Message     string `json:"message"`
	OrderItemID int64  `json:"order_item_id"`
}

// AddItemToOrderHandler handles POST /orders/{id}/items.
type AddItemToOrderHandler struct {
	svc *appsvcs.Services
}

// NewAddItemToOrderHandler returns an AddItemToOrderHandler backed by the
// given services.
func NewAddItemToOrderHandler(svc *appsvcs.Services) *AddItemToOrderHandler {
	return &AddItemToOrderHandler{svc: svc}
}

// Execute adds an item to an order.
func (h *AddItemToOrderHandler) Execute(w http.ResponseWriter, r *http.Request) {
	orderID, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	req, ok := pkgvalidator.ValidateRequest[AddItemToOrderRequest](w, r)
	if !ok {
		return
	}
	if req.OrderID != orderID {
		errhttp.WriteError(w, invdomain.ErrOrderIDMismatch)
		return
	}

	result, err := h.svc.OrderWorkflow.AddItem(r.Context(), orderID, req.ItemID, req.Quantity)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusCreated, AddItemToOrderResponse{
		Success:     true,
		Message:     result.Message,
		OrderItemID: result.OrderItemID,
	})
}
