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

// ClientRequest is the request body for POST and PUT /clients.
type ClientRequest struct {
	Name    string `json:"name" validate:"required,min=1,max=255"`
	Address string `json:"address" validate:"max=1000"`
}

// ClientResponse is the JSON shape of a client.
type ClientResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Address   string    `json:"address"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func newClientResponse(c *models.Client) ClientResponse {
	return ClientResponse{
		ID:        c.ID,
		Name:      c.Name.String(),
		Address:   c.Address,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

// ClientHandler handles the /clients endpoints.
type ClientHandler struct {
	svc *appsvcs.Services
}

// NewClientHandler returns a ClientHandler backed by the given services.
func NewClientHandler(svc *appsvcs.Services) *ClientHandler {
	return &ClientHandler{svc: svc}
}

// Create handles POST /clients.
func (h *ClientHandler) Create(w http.ResponseWriter, r *http.Request) {
	req, ok := pkgvalidator.ValidateRequest[ClientRequest](w, r)
	if !ok {
		return
	}

	client, err := h.svc.Client.Create(r.Context(), req.Name, req.Address)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	httpx.JSON(w, http.StatusCreated, newClientResponse(client))
}

// Get handles GET /clients/{id}.
func (h *ClientHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	client, err := h.svc.Client.GetByID(r.Context(), id)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, newClientResponse(client))
}

// List handles GET /clients.
func (h *ClientHandler) List(w http.ResponseWriter, r *http.Request) {
	clients, err := h.svc.Client.List(r.Context())
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	out := make([]ClientResponse, 0, len(clients))
	for _, c := range clients {
		out = append(out, newClientResponse(c))
	}
	httpx.JSON(w, http.StatusOK, out)
}

// Update handles PUT /clients/{id}.
func (h *ClientHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	req, ok := pkgvalidator.ValidateRequest[ClientRequest](w, r)
	if !ok {
		return
	}

	client, err := h.svc.Client.Update(r.Context(), id, req.Name, req.Address)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, newClientResponse(client))
}

// Delete handles DELETE /clients/{id}.
func (h *ClientHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	if err := h.svc.Client.Delete(r.Context(), id); err != nil {
		errhttp.WriteError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
