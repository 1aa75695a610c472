package handlers

import (
	"net/http"
	"time"

	"github.com/ghuser/stockery/pkg/errhttp"
	"github.com/ghuser/stockery/pkg/httpx"
	pkgvalidator "github.com/ghuser/stockery/pkg/validator"
	appsvcs "github.com/ghuser/stockery/services/inventory/application/services"
	"github.com/ghuser/stockery/services/inventory/domain/models"
)

// CategoryRequest is the request body for POST and PUT /categories.
type CategoryRequest struct {
	Name     string `json:"name" validate:"required,min=1,max=255"`
	ParentID *int64 `json:"parent_id" validate:"omitempty,gt=0"`
}

// CategoryResponse is the JSON shape of a category.
type CategoryResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	ParentID  *int64    `json:"parent_id"`
	Level     int       `json:"level"`
	Path      string    `json:"path"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func newCategoryResponse(c *models.Category) CategoryResponse {
	return CategoryResponse{
		ID:        c.ID,
		Name:      c.Name.String(),
		ParentID:  c.ParentID,
		Level:     c.Level,
		Path:      c.Path,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

// CategoryHandler handles the /categories endpoints.
type CategoryHandler struct {
	svc *appsvcs.Services
}

// NewCategoryHandler returns a CategoryHandler backed by the given services.
func NewCategoryHandler(svc *appsvcs.Services) *CategoryHandler {
	return &CategoryHandler{svc: svc}
}

// Create handles POST /categories.
func (h *CategoryHandler) Create(w http.ResponseWriter, r *http.Request) {
	req, ok := pkgvalidator.ValidateRequest[CategoryRequest](w, r)
	if !ok {
		return
	}

	category, err := h.svc.Category.Create(r.Context(), req.Name, req.ParentID)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	httpx.JSON(w, http.StatusCreated, newCategoryResponse(category))
}

// Get handles GET /categories/{id}.
func (h *CategoryHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	category, err := h.svc.Category.GetByID(r.Context(), id)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, newCategoryResponse(category))
}

// List handles GET /categories.
func (h *CategoryHandler) List(w http.ResponseWriter, r *http.Request) {
	categories, err := h.svc.Category.List(r.Context())
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	out := make([]CategoryResponse, 0, len(categories))
	for _, c := range categories {
		out = append(out, newCategoryResponse(c))
	}
	httpx.JSON(w, http.StatusOK, out)
}

// ListChildren handles GET /categories/{id}/children.
func (h *CategoryHandler) ListChildren(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	children, err := h.svc.Category.ListChildren(r.Context(), id)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	out := make([]CategoryResponse, 0, len(children))
	for _, c := range children {
		out = append(out, newCategoryResponse(c))
	}
	httpx.JSON(w, http.StatusOK, out)
}

// Update handles PUT /categories/{id}.
func (h *CategoryHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	req, ok := pkgvalidator.ValidateRequest[CategoryRequest](w, r)
	if !ok {
		return
	}

	category, err := h.svc.Category.Update(r.Context(), id, req.Name, req.ParentID)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, newCategoryResponse(category))
}

// Delete handles DELETE /categories/{id}.
func (h *CategoryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	if err := h.svc.Category.Delete(r.Context(), id); err != nil {
		errhttp.WriteError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
