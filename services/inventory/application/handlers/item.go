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

// ItemRequest is the request body for POST and PUT /items.
type ItemRequest struct {
	Name       string          `json:"name" validate:"required,min=1,max=255"`
	Quantity   int             `json:"quantity" validate:"gte=0"`
	Price      decimal.Decimal `json:"price" validate:"required"`
	CategoryID *int64          `json:"category_id" validate:"omitempty,gt=0"`
}

// ItemResponse is the JSON shape of a stocked item.
type ItemResponse struct {
	ID         int64           `json:"id"`
	Name       string          `json:"name"`
	Quantity   int             `json:"quantity"`
	Price      decimal.Decimal `json:"price"`
	CategoryID *int64          `json:"category_id"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
}

func newItemResponse(i *models.Item) ItemResponse {
	return ItemResponse{
		ID:         i.ID,
		Name:       i.Name.String(),
		Quantity:   i.Quantity,
		Price:      i.Price,
		CategoryID: i.CategoryID,
		CreatedAt:  i.CreatedAt,
		UpdatedAt:  i.UpdatedAt,
	}
}

// ItemHandler handles the /items endpoints.
type ItemHandler struct {
	svc *appsvcs.Services
}

// NewItemHandler returns an ItemHandler backed by the given services.
func NewItemHandler(svc *appsvcs.Services) *ItemHandler {
	return &ItemHandler{svc: svc}
}

// Create handles POST /items.
func (h *ItemHandler) Create(w http.ResponseWriter, r *http.Request) {
	req, ok := pkgvalidator.ValidateRequest[ItemRequest](w, r)
	if !ok {
		return
	}

	item, err := h.svc.Item.Create(r.Context(), req.Name, req.Quantity, req.Price, req.CategoryID)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	httpx.JSON(w, http.StatusCreated, newItemResponse(item))
}

// Get handles GET /items/{id}.
func (h *ItemHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	item, err := h.svc.Item.GetByID(r.Context(), id)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, newItemResponse(item))
}

// List handles GET /items.
func (h *ItemHandler) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.svc.Item.List(r.Context())
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	out := make([]ItemResponse, 0, len(items))
	for _, i := range items {
		out = append(out, newItemResponse(i))
	}
	httpx.JSON(w, http.StatusOK, out)
}

// Update handles PUT /items/{id}.
func (h *ItemHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	req, ok := pkgvalidator.ValidateRequest[ItemRequest](w, r)
	if !ok {
		return
	}

	item, err := h.svc.Item.Update(r.Context(), id, req.Name, req.Quantity, req.Price, req.CategoryID)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, newItemResponse(item))
}

// Delete handles DELETE /items/{id}.
func (h *ItemHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	if err := h.svc.Item.Delete(r.Context(), id); err != nil {
		errhttp.WriteError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
