package repository

import (
	"errors"

	"tool-rental-checkout/internal/domain"
)

// ErrNotFound is returned by lookups with no matching entry
var ErrNotFound = errors.New("not found")

type ToolRepository interface {
	GetByCode(code string) (*domain.Tool, error)
	List() []domain.Tool
}

type CategoryPolicyRepository interface {
	GetByCategory(category string) (*domain.CategoryPolicy, error)
	List() []domain.CategoryPolicy
}
