package memory

import (
	"fmt"

	"tool-rental-checkout/internal/domain"
	"tool-rental-checkout/internal/repository"
)

// Store bundles the read-only catalog repositories. It is built once and
// never mutated, so it can be shared freely.
type Store struct {
	repository.ToolRepository
	repository.CategoryPolicyRepository
}

// NewStore validates the reference data and builds the repositories.
// Every tool must reference a known category.
func NewStore(tools []domain.Tool, policies []domain.CategoryPolicy) (*Store, error) {
	policyRepo, err := NewCategoryPolicyRepository(policies)
	if err != nil {
		return nil, err
	}
	toolRepo, err := NewToolRepository(tools)
	if err != nil {
		return nil, err
	}
	for _, t := range toolRepo.List() {
		if _, err := policyRepo.GetByCategory(t.Category); err != nil {
			return nil, fmt.Errorf("tool %s references unknown category %q: %w", t.Code, t.Category, err)
		}
	}
	return &Store{
		ToolRepository:           toolRepo,
		CategoryPolicyRepository: policyRepo,
	}, nil
}

// DefaultTools is the standard tool catalog
func DefaultTools() []domain.Tool {
	return []domain.Tool{
		{Code: "CHNS", Category: "Chainsaw", Brand: "Stihl"},
		{Code: "LADW", Category: "Ladder", Brand: "Werner"},
		{Code: "JAKD", Category: "Jackhammer", Brand: "DeWalt"},
		{Code: "JAKR", Category: "Jackhammer", Brand: "Ridgid"},
	}
}

// DefaultPolicies is the standard category pricing
func DefaultPolicies() []domain.CategoryPolicy {
	return []domain.CategoryPolicy{
		{Category: "Ladder", DailyChargeCents: 199, ChargeOnWeekday: true, ChargeOnWeekend: true, ChargeOnHoliday: false},
		{Category: "Chainsaw", DailyChargeCents: 149, ChargeOnWeekday: true, ChargeOnWeekend: false, ChargeOnHoliday: true},
		{Category: "Jackhammer", DailyChargeCents: 299, ChargeOnWeekday: true, ChargeOnWeekend: false, ChargeOnHoliday: false},
	}
}

// NewDefaultStore returns the store holding the standard catalog
func NewDefaultStore() *Store {
	s, err := NewStore(DefaultTools(), DefaultPolicies())
	if err != nil {
		panic(fmt.Sprintf("default catalog is inconsistent: %v", err))
	}
	return s
}
