package models

import "testing"

func TestNewCategory(t *testing.T) {
	c := NewCategory("Electronics")

	if c.ParentID != nil {
		t.Fatalf("expected nil parent, got %v", *c.ParentID)
	}
	if c.Level != 0 {
		t.Fatalf("expected level 0, got %d", c.Level)
	}
	if c.Path != "/" {
		t.Fatalf("expected root path %q, got %q", "/", c.Path)
	}
}

func TestCategory_AttachTo(t *testing.T) {
	root := NewCategory("Electronics")
	root.ID = 1

	child := NewCategory("Phones")
	child.ID = 4
	child.AttachTo(root)

	if child.ParentID == nil || *child.ParentID != 1 {
		t.Fatalf("expected parent 1, got %v", child.ParentID)
	}
	if child.Level != 1 {
		t.Fatalf("expected level 1, got %d", child.Level)
	}
	if child.Path != "/1/" {
		t.Fatalf("expected path %q, got %q", "/1/", child.Path)
	}
}

func TestCategory_AttachTo_Nested(t *testing.T) {
	root := NewCategory("Electronics")
	root.ID = 1

	mid := NewCategory("Phones")
	mid.ID = 4
	mid.AttachTo(root)

	leaf := NewCategory("Smartphones")
	leaf.ID = 9
	leaf.AttachTo(mid)

	if leaf.Level != 2 {
		t.Fatalf("expected level 2, got %d", leaf.Level)
	}
	if leaf.Path != "/1/4/" {
		t.Fatalf("expected path %q, got %q", "/1/4/", leaf.Path)
	}
}
