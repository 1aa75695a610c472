package services

import (
	"context"
	"fmt"

	invdomain "github.com/ghuser/stockery/services/inventory/domain"
	"github.com/ghuser/stockery/services/inventory/domain/models"
	"github.com/ghuser/stockery/services/inventory/domain/repositories"
	domainsvcs "github.com/ghuser/stockery/services/inventory/domain/services"
)

// CategoryService orchestrates CRUD on the hierarchical category tree.
// Level and materialized path are derived from the parent on create and
// re-derived on reparenting.
type CategoryService struct {
	repo repositories.CategoryRepository
}

// NewCategoryService returns a CategoryService wired with the given repository.
func NewCategoryService(repo repositories.CategoryRepository) *CategoryService {
	return &CategoryService{repo: repo}
}

// Create validates and persists a category, placing it under parentID when given.
func (s *CategoryService) Create(ctx context.Context, name string, parentID *int64) (*models.Category, error) {
	catName, err := newValidName(name)
	if err != nil {
		return nil, err
	}

	category := models.NewCategory(catName)
	if parentID != nil {
		parent, err := s.repo.GetByID(ctx, *parentID)
		if err != nil {
			return nil, fmt.Errorf("get parent category: %w", err)
		}
		category.AttachTo(parent)
	}

	if err := s.repo.Create(ctx, category); err != nil {
		return nil, fmt.Errorf("save category: %w", err)
	}
	return category, nil
}

// GetByID retrieves a category.
func (s *CategoryService) GetByID(ctx context.Context, id int64) (*models.Category, error) {
	category, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get category: %w", err)
	}
	return category, nil
}

// List returns the full category tree in path order.
func (s *CategoryService) List(ctx context.Context) ([]*models.Category, error) {
	categories, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	return categories, nil
}

// ListChildren returns the direct children of a category. The parent must
// exist; an empty result on a real category is a leaf, not an error.
func (s *CategoryService) ListChildren(ctx context.Context, parentID int64) ([]*models.Category, error) {
	if _, err := s.repo.GetByID(ctx, parentID); err != nil {
		return nil, fmt.Errorf("get category: %w", err)
	}

	children, err := s.repo.ListChildren(ctx, parentID)
	if err != nil {
		return nil, fmt.Errorf("list category children: %w", err)
	}
	return children, nil
}

// Update renames and/or reparents a category. Reparenting re-derives level
// and path from the new parent.
func (s *CategoryService) Update(ctx context.Context, id int64, name string, parentID *int64) (*models.Category, error) {
	catName, err := newValidName(name)
	if err != nil {
		return nil, err
	}

	category, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get category: %w", err)
	}

	category.Name = catName
	if parentID != nil {
		parent, err := s.repo.GetByID(ctx, *parentID)
		if err != nil {
			return nil, fmt.Errorf("get parent category: %w", err)
		}
		category.AttachTo(parent)
	} else {
		category.ParentID = nil
		category.Level = 0
		category.Path = "/"
	}

	if err := s.repo.Update(ctx, category); err != nil {
		return nil, fmt.Errorf("update category: %w", err)
	}
	return category, nil
}

// Delete removes a category by ID.
func (s *CategoryService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete category: %w", err)
	}
	return nil
}

// newValidName applies both structural and business name rules, tagging
// failures with the domain sentinel so the boundary maps them consistently.
func newValidName(s string) (models.Name, error) {
	name, err := models.NewName(s)
	if err != nil {
		return "", fmt.Errorf("%w: %w", invdomain.ErrInvalidName, err)
	}
	if err := domainsvcs.ValidateName(name); err != nil {
		return "", fmt.Errorf("%w: %w", invdomain.ErrInvalidName, err)
	}
	return name, nil
}
