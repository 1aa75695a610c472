package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/ghuser/stockery/pkg/config"
	"github.com/ghuser/stockery/pkg/logger"
	appsvcs "github.com/ghuser/stockery/services/inventory/application/services"
	invdomain "github.com/ghuser/stockery/services/inventory/domain"
	"github.com/ghuser/stockery/services/inventory/domain/models"
	"github.com/ghuser/stockery/services/inventory/domain/repositories"
)

// --- in-memory fixtures ------------------------------------------------------

type fakeOrders struct{ orders map[int64]*models.Order }

func (r *fakeOrders) Create(_ context.Context, o *models.Order) error {
	o.ID = int64(len(r.orders) + 1)
	r.orders[o.ID] = o
	return nil
}

func (r *fakeOrders) GetByID(_ context.Context, id int64) (*models.Order, error) {
	o, ok := r.orders[id]
	if !ok {
		return nil, invdomain.ErrOrderNotFound
	}
	return o, nil
}

func (r *fakeOrders) List(context.Context) ([]*models.Order, error) {
	out := make([]*models.Order, 0, len(r.orders))
	for _, o := range r.orders {
		out = append(out, o)
	}
	return out, nil
}

func (r *fakeOrders) Update(_ context.Context, o *models.Order) error {
	if _, ok := r.orders[o.ID]; !ok {
		return invdomain.ErrOrderNotFound
	}
	r.orders[o.ID] = o
	return nil
}

func (r *fakeOrders) Delete(_ context.Context, id int64) error {
	if _, ok := r.orders[id]; !ok {
		return invdomain.ErrOrderNotFound
	}
	delete(r.orders, id)
	return nil
}

func (r *fakeOrders) SetTotalAmount(_ context.Context, id int64, total decimal.Decimal) error {
	o, ok := r.orders[id]
	if !ok {
		return invdomain.ErrOrderNotFound
	}
	o.TotalAmount = total
	return nil
}

type fakeItems struct{ items map[int64]*models.Item }

func (r *fakeItems) Create(_ context.Context, it *models.Item) error {
	it.ID = int64(len(r.items) + 1)
	r.items[it.ID] = it
	return nil
}

func (r *fakeItems) GetByID(_ context.Context, id int64) (*models.Item, error) {
	it, ok := r.items[id]
	if !ok {
		return nil, invdomain.ErrItemNotFound
	}
	return it, nil
}

func (r *fakeItems) List(context.Context) ([]*models.Item, error) {
	out := make([]*models.Item, 0, len(r.items))
	for _, it := range r.items {
		out = append(out, it)
	}
	return out, nil
}

func (r *fakeItems) Update(_ context.Context, it *models.Item) error {
	if _, ok := r.items[it.ID]; !ok {
		return invdomain.ErrItemNotFound
	}
	r.items[it.ID] = it
	return nil
}

func (r *fakeItems) Delete(_ context.Context, id int64) error {
	if _, ok := r.items[id]; !ok {
		return invdomain.ErrItemNotFound
	}
	delete(r.items, id)
	return nil
}

func (r *fakeItems) SetQuantity(_ context.Context, id int64, quantity int) error {
	it, ok := r.items[id]
	if !ok {
		return invdomain.ErrItemNotFound
	}
	it.Quantity = quantity
	return nil
}

type fakeOrderItems struct {
	lines  map[int64]*models.OrderItem
	nextID int64
}

func (r *fakeOrderItems) Create(_ context.Context, li *models.OrderItem) error {
	r.nextID++
	li.ID = r.nextID
	r.lines[li.ID] = li
	return nil
}

func (r *fakeOrderItems) FindByOrderAndItem(_ context.Context, orderID, itemID int64) (*models.OrderItem, error) {
	for _, li := range r.lines {
		if li.OrderID == orderID && li.ItemID == itemID {
			return li, nil
		}
	}
	return nil, invdomain.ErrOrderItemNotFound
}

func (r *fakeOrderItems) ListByOrder(_ context.Context, orderID int64) ([]*models.OrderItem, error) {
	var out []*models.OrderItem
	for _, li := range r.lines {
		if li.OrderID == orderID {
			out = append(out, li)
		}
	}
	return out, nil
}

func (r *fakeOrderItems) SetQuantity(_ context.Context, id int64, quantity int) error {
	li, ok := r.lines[id]
	if !ok {
		return invdomain.ErrOrderItemNotFound
	}
	li.Quantity = quantity
	return nil
}

type fakeStore struct {
	orders     *fakeOrders
	items      *fakeItems
	orderItems *fakeOrderItems
}

func (s *fakeStore) Orders() repositories.OrderRepository         { return s.orders }
func (s *fakeStore) Items() repositories.ItemRepository           { return s.items }
func (s *fakeStore) OrderItems() repositories.OrderItemRepository { return s.orderItems }

// passthroughUOW runs fn directly against the shared fakes. Handler tests
// exercise routing, decoding, and status mapping, not transaction semantics.
type passthroughUOW struct{ store *fakeStore }

func (u *passthroughUOW) Do(_ context.Context, fn func(store repositories.OrderStore) error) error {
	return fn(u.store)
}

type testEnv struct {
	router *chi.Mux
	orders *fakeOrders
	items  *fakeItems
	lines  *fakeOrderItems
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	store := &fakeStore{
		orders:     &fakeOrders{orders: make(map[int64]*models.Order)},
		items:      &fakeItems{items: make(map[int64]*models.Item)},
		orderItems: &fakeOrderItems{lines: make(map[int64]*models.OrderItem)},
	}
	log := logger.New(&config.Config{LogLevel: "error"})

	svcs := &appsvcs.Services{
		Category:      nil,
		Item:          appsvcs.NewItemService(store.items, nil, log),
		Client:        nil,
		Order:         appsvcs.NewOrderService(store.orders, store.orderItems),
		OrderWorkflow: appsvcs.NewOrderWorkflow(&passthroughUOW{store: store}, nil, log),
	}

	orders := NewOrderHandler(svcs)
	addItem := NewAddItemToOrderHandler(svcs)
	items := NewItemHandler(svcs)

	r := chi.NewRouter()
	r.Route("/orders", func(r chi.Router) {
		r.Post("/", orders.Create)
		r.Get("/{id}", orders.Get)
		r.Post("/{id}/items", addItem.Execute)
	})
	r.Route("/items", func(r chi.Router) {
		r.Post("/", items.Create)
		r.Get("/{id}", items.Get)
	})

	return &testEnv{router: r, orders: store.orders, items: store.items, lines: store.orderItems}
}

func (e *testEnv) seed(t *testing.T) {
	t.Helper()
	item, err := models.NewItem("Widget", 10, decimal.RequireFromString("2.50"), nil)
	if err != nil {
		t.Fatalf("NewItem: %v", err)
	}
	item.ID = 100
	e.items.items[item.ID] = item

	order := models.NewOrder(1)
	order.ID = 500
	e.orders.orders[order.ID] = order
}

func (e *testEnv) do(method, path, body string) *httptest.ResponseRecorder {
	var r *http.Request
	if body == "" {
		r = httptest.NewRequest(method, path, nil)
	} else {
		r = httptest.NewRequest(method, path, strings.NewReader(body))
		r.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, r)
	return w
}

// --- tests -------------------------------------------------------------------

func TestAddItemToOrder_Created(t *testing.T) {
	env := newTestEnv(t)
	env.seed(t)

	w := env.do(http.MethodPost, "/orders/500/items", `{"order_id":500,"item_id":100,"quantity":3}`)

	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}

	var resp AddItemToOrderResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !resp.Success {
		t.Error("expected success=true")
	}
	if resp.Message != "Item successfully added to order" {
		t.Errorf("unexpected message: %q", resp.Message)
	}
	if resp.OrderItemID == 0 {
		t.Error("expected non-zero order_item_id")
	}

	if got := env.items.items[100].Quantity; got != 7 {
		t.Errorf("stock = %d, want 7", got)
	}
	if got := env.orders.orders[500].TotalAmount; !got.Equal(decimal.RequireFromString("7.50")) {
		t.Errorf("order total = %s, want 7.50", got)
	}
}

func TestAddItemToOrder_PathBodyMismatch(t *testing.T) {
	env := newTestEnv(t)
	env.seed(t)

	w := env.do(http.MethodPost, "/orders/500/items", `{"order_id":501,"item_id":100,"quantity":3}`)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", w.Code, w.Body.String())
	}
	if !strings.Contains(w.Body.String(), "order ID mismatch") {
		t.Errorf("unexpected body: %s", w.Body.String())
	}
}

func TestAddItemToOrder_OrderNotFound(t *testing.T) {
	env := newTestEnv(t)
	env.seed(t)

	w := env.do(http.MethodPost, "/orders/999/items", `{"order_id":999,"item_id":100,"quantity":1}`)

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d: %s", w.Code, w.Body.String())
	}
}

func TestAddItemToOrder_ItemNotFound(t *testing.T) {
	env := newTestEnv(t)
	env.seed(t)

	w := env.do(http.MethodPost, "/orders/500/items", `{"order_id":500,"item_id":999,"quantity":1}`)

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d: %s", w.Code, w.Body.String())
	}
}

func TestAddItemToOrder_InsufficientStock(t *testing.T) {
	env := newTestEnv(t)
	env.seed(t)

	w := env.do(http.MethodPost, "/orders/500/items", `{"order_id":500,"item_id":100,"quantity":11}`)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", w.Code, w.Body.String())
	}
	if !strings.Contains(w.Body.String(), "insufficient stock") {
		t.Errorf("unexpected body: %s", w.Body.String())
	}
	// Stock untouched on failure.
	if got := env.items.items[100].Quantity; got != 10 {
		t.Errorf("stock = %d, want 10", got)
	}
}

func TestAddItemToOrder_ValidationFailures(t *testing.T) {
	tests := []struct {
		name       string
		path       string
		body       string
		wantStatus int
	}{
		{"zero quantity", "/orders/500/items", `{"order_id":500,"item_id":100,"quantity":0}`, http.StatusUnprocessableEntity},
		{"negative quantity", "/orders/500/items", `{"order_id":500,"item_id":100,"quantity":-1}`, http.StatusUnprocessableEntity},
		{"quantity above limit", "/orders/500/items", `{"order_id":500,"item_id":100,"quantity":1001}`, http.StatusUnprocessableEntity},
		{"missing item_id", "/orders/500/items", `{"order_id":500,"quantity":1}`, http.StatusUnprocessableEntity},
		{"malformed JSON", "/orders/500/items", `{not json`, http.StatusBadRequest},
		{"non-numeric path id", "/orders/abc/items", `{"order_id":500,"item_id":100,"quantity":1}`, http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t)
			env.seed(t)

			w := env.do(http.MethodPost, tt.path, tt.body)
			if w.Code != tt.wantStatus {
				t.Fatalf("expected %d, got %d: %s", tt.wantStatus, w.Code, w.Body.String())
			}
		})
	}
}

func TestAddItemToOrder_RepeatedAddAccumulates(t *testing.T) {
	env := newTestEnv(t)
	env.seed(t)

	first := env.do(http.MethodPost, "/orders/500/items", `{"order_id":500,"item_id":100,"quantity":2}`)
	if first.Code != http.StatusCreated {
		t.Fatalf("first add: expected 201, got %d", first.Code)
	}
	second := env.do(http.MethodPost, "/orders/500/items", `{"order_id":500,"item_id":100,"quantity":3}`)
	if second.Code != http.StatusCreated {
		t.Fatalf("second add: expected 201, got %d", second.Code)
	}

	var r1, r2 AddItemToOrderResponse
	_ = json.Unmarshal(first.Body.Bytes(), &r1)
	_ = json.Unmarshal(second.Body.Bytes(), &r2)
	if r1.OrderItemID != r2.OrderItemID {
		t.Errorf("line identity changed: %d then %d", r1.OrderItemID, r2.OrderItemID)
	}
	if len(env.lines.lines) != 1 {
		t.Errorf("line count = %d, want 1", len(env.lines.lines))
	}
	if got := env.lines.lines[r1.OrderItemID].Quantity; got != 5 {
		t.Errorf("accumulated quantity = %d, want 5", got)
	}
}

func TestGetOrder_IncludesLines(t *testing.T) {
	env := newTestEnv(t)
	env.seed(t)

	if w := env.do(http.MethodPost, "/orders/500/items", `{"order_id":500,"item_id":100,"quantity":2}`); w.Code != http.StatusCreated {
		t.Fatalf("seed add failed: %d", w.Code)
	}

	w := env.do(http.MethodGet, "/orders/500", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp OrderDetailResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(resp.Items) != 1 {
		t.Fatalf("expected 1 line, got %d", len(resp.Items))
	}
	if resp.Items[0].Quantity != 2 {
		t.Errorf("line quantity = %d, want 2", resp.Items[0].Quantity)
	}
	if !resp.TotalAmount.Equal(decimal.RequireFromString("5.00")) {
		t.Errorf("total = %s, want 5.00", resp.TotalAmount)
	}
}

func TestCreateItem_Created(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(http.MethodPost, "/items", `{"name":"Widget","quantity":5,"price":"2.50"}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}

	var resp ItemResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Name != "Widget" || resp.Quantity != 5 {
		t.Errorf("unexpected response: %+v", resp)
	}
}

func TestGetItem_NotFound(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(http.MethodGet, "/items/42", "")
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d: %s", w.Code, w.Body.String())
	}
}
