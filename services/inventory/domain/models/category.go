package models

import (
	"fmt"
	"time"
)

// Category is a node in the hierarchical product tree. The tree shape is kept
// denormalized: Level is the depth (0 for roots) and Path is the materialized
// path of ancestor IDs, e.g. "/1/4/".
type Category struct {
	ID        int64
	Name      Name
	ParentID  *int64 // nil for root categories
	Level     int
	Path      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewCategory constructs a root category. Level and Path for child categories
// are derived from the parent via AttachTo.
func NewCategory(name Name) *Category {
	return &Category{
		Name:  name,
		Level: 0,
		Path:  "/",
	}
}

// AttachTo places the category under the given parent, deriving Level and Path.
func (c *Category) AttachTo(parent *Category) {
	c.ParentID = &parent.ID
	c.Level = parent.Level + 1
	c.Path = fmt.Sprintf("%s%d/", parent.Path, parent.ID)
}
