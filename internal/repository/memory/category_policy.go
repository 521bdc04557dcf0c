package memory

import (
	"fmt"
	"sort"

	"tool-rental-checkout/internal/domain"
	"tool-rental-checkout/internal/repository"
)

type categoryPolicyRepository struct {
	byCategory map[string]domain.CategoryPolicy
}

func NewCategoryPolicyRepository(policies []domain.CategoryPolicy) (repository.CategoryPolicyRepository, error) {
	byCategory := make(map[string]domain.CategoryPolicy, len(policies))
	for _, p := range policies {
		if p.Category == "" {
			return nil, fmt.Errorf("category name is required")
		}
		if p.DailyChargeCents < 0 {
			return nil, fmt.Errorf("category %s: daily charge must not be negative", p.Category)
		}
		if _, dup := byCategory[p.Category]; dup {
			return nil, fmt.Errorf("duplicate category %s", p.Category)
		}
		byCategory[p.Category] = p
	}
	return &categoryPolicyRepository{byCategory: byCategory}, nil
}

func (r *categoryPolicyRepository) GetByCategory(category string) (*domain.CategoryPolicy, error) {
	p, ok := r.byCategory[category]
	if !ok {
		return nil, fmt.Errorf("category %q: %w", category, repository.ErrNotFound)
	}
	return &p, nil
}

func (r *categoryPolicyRepository) List() []domain.CategoryPolicy {
	policies := make([]domain.CategoryPolicy, 0, len(r.byCategory))
	for _, p := range r.byCategory {
		policies = append(policies, p)
	}
	sort.Slice(policies, func(i, j int) bool { return policies[i].Category < policies[j].Category })
	return policies
}
