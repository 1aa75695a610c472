package services

import (
	"context"
	"errors"
	"testing"

	invdomain "github.com/ghuser/stockery/services/inventory/domain"
	"github.com/ghuser/stockery/services/inventory/domain/models"
)

type memCategories struct {
	byID   map[int64]*models.Category
	nextID int64
}

func newMemCategories() *memCategories {
	return &memCategories{byID: make(map[int64]*models.Category)}
}

func (r *memCategories) Create(_ context.Context, c *models.Category) error {
	r.nextID++
	c.ID = r.nextID
	r.byID[c.ID] = c
	return nil
}

func (r *memCategories) GetByID(_ context.Context, id int64) (*models.Category, error) {
	c, ok := r.byID[id]
	if !ok {
		return nil, invdomain.ErrCategoryNotFound
	}
	return c, nil
}

func (r *memCategories) List(context.Context) ([]*models.Category, error) {
	out := make([]*models.Category, 0, len(r.byID))
	for _, c := range r.byID {
		out = append(out, c)
	}
	return out, nil
}

func (r *memCategories) ListChildren(_ context.Context, parentID int64) ([]*models.Category, error) {
	var out []*models.Category
	for _, c := range r.byID {
		if c.ParentID != nil && *c.ParentID == parentID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (r *memCategories) Update(_ context.Context, c *models.Category) error {
	if _, ok := r.byID[c.ID]; !ok {
		return invdomain.ErrCategoryNotFound
	}
	r.byID[c.ID] = c
	return nil
}

func (r *memCategories) Delete(_ context.Context, id int64) error {
	if _, ok := r.byID[id]; !ok {
		return invdomain.ErrCategoryNotFound
	}
	delete(r.byID, id)
	return nil
}

func TestCategoryService_CreateRoot(t *testing.T) {
	svc := NewCategoryService(newMemCategories())

	root, err := svc.Create(context.Background(), "Electronics", nil)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if root.Level != 0 {
		t.Errorf("root level = %d, want 0", root.Level)
	}
	if root.Path != "/" {
		t.Errorf("root path = %q, want /", root.Path)
	}
	if root.ParentID != nil {
		t.Errorf("root parent = %v, want nil", *root.ParentID)
	}
}

func TestCategoryService_CreateNested(t *testing.T) {
	svc := NewCategoryService(newMemCategories())
	ctx := context.Background()

	root, err := svc.Create(ctx, "Electronics", nil)
	if err != nil {
		t.Fatalf("create root: %v", err)
	}
	child, err := svc.Create(ctx, "Phones", &root.ID)
	if err != nil {
		t.Fatalf("create child: %v", err)
	}
	grandchild, err := svc.Create(ctx, "Smartphones", &child.ID)
	if err != nil {
		t.Fatalf("create grandchild: %v", err)
	}

	if child.Level != 1 || grandchild.Level != 2 {
		t.Errorf("levels = %d, %d; want 1, 2", child.Level, grandchild.Level)
	}
	if child.Path != "/1/" {
		t.Errorf("child path = %q, want /1/", child.Path)
	}
	if grandchild.Path != "/1/2/" {
		t.Errorf("grandchild path = %q, want /1/2/", grandchild.Path)
	}
}

func TestCategoryService_CreateUnderMissingParent(t *testing.T) {
	svc := NewCategoryService(newMemCategories())

	missing := int64(99)
	_, err := svc.Create(context.Background(), "Phones", &missing)
	if !errors.Is(err, invdomain.ErrCategoryNotFound) {
		t.Fatalf("expected ErrCategoryNotFound, got %v", err)
	}
}

func TestCategoryService_InvalidName(t *testing.T) {
	svc := NewCategoryService(newMemCategories())

	_, err := svc.Create(context.Background(), "", nil)
	if !errors.Is(err, invdomain.ErrInvalidName) {
		t.Fatalf("expected ErrInvalidName, got %v", err)
	}
}

func TestCategoryService_ListChildren(t *testing.T) {
	svc := NewCategoryService(newMemCategories())
	ctx := context.Background()

	root, err := svc.Create(ctx, "Electronics", nil)
	if err != nil {
		t.Fatalf("create root: %v", err)
	}
	for _, name := range []string{"Phones", "Laptops"} {
		if _, err := svc.Create(ctx, name, &root.ID); err != nil {
			t.Fatalf("create %s: %v", name, err)
		}
	}

	children, err := svc.ListChildren(ctx, root.ID)
	if err != nil {
		t.Fatalf("ListChildren: %v", err)
	}
	if len(children) != 2 {
		t.Errorf("children = %d, want 2", len(children))
	}

	t.Run("leaf has no children", func(t *testing.T) {
		leaf := children[0]
		got, err := svc.ListChildren(ctx, leaf.ID)
		if err != nil {
			t.Fatalf("ListChildren on leaf: %v", err)
		}
		if len(got) != 0 {
			t.Errorf("leaf children = %d, want 0", len(got))
		}
	})

	t.Run("missing parent", func(t *testing.T) {
		_, err := svc.ListChildren(ctx, 99)
		if !errors.Is(err, invdomain.ErrCategoryNotFound) {
			t.Fatalf("expected ErrCategoryNotFound, got %v", err)
		}
	})
}

func TestCategoryService_ReparentRederivesPath(t *testing.T) {
	svc := NewCategoryService(newMemCategories())
	ctx := context.Background()

	a, err := svc.Create(ctx, "Electronics", nil)
	if err != nil {
		t.Fatalf("create a: %v", err)
	}
	b, err := svc.Create(ctx, "Appliances", nil)
	if err != nil {
		t.Fatalf("create b: %v", err)
	}
	child, err := svc.Create(ctx, "Phones", &a.ID)
	if err != nil {
		t.Fatalf("create child: %v", err)
	}

	moved, err := svc.Update(ctx, child.ID, "Phones", &b.ID)
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if moved.ParentID == nil || *moved.ParentID != b.ID {
		t.Errorf("parent = %v, want %d", moved.ParentID, b.ID)
	}
	if moved.Path != "/2/" {
		t.Errorf("path = %q, want /2/", moved.Path)
	}

	t.Run("detach to root", func(t *testing.T) {
		detached, err := svc.Update(ctx, child.ID, "Phones", nil)
		if err != nil {
			t.Fatalf("Update: %v", err)
		}
		if detached.ParentID != nil || detached.Level != 0 || detached.Path != "/" {
			t.Errorf("detached = parent %v level %d path %q, want nil 0 /", detached.ParentID, detached.Level, detached.Path)
		}
	})
}
