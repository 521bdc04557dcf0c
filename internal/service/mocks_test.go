package service

import (
	"tool-rental-checkout/internal/domain"

	"github.com/stretchr/testify/mock"
)

// MockToolRepo
type MockToolRepo struct {
	mock.Mock
}

func (m *MockToolRepo) GetByCode(code string) (*domain.Tool, error) {
	args := m.Called(code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Tool), args.Error(1)
}
func (m *MockToolRepo) List() []domain.Tool {
	args := m.Called()
	return args.Get(0).([]domain.Tool)
}

// MockCategoryPolicyRepo
type MockCategoryPolicyRepo struct {
	mock.Mock
}

func (m *MockCategoryPolicyRepo) GetByCategory(category string) (*domain.CategoryPolicy, error) {
	args := m.Called(category)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CategoryPolicy), args.Error(1)
}
func (m *MockCategoryPolicyRepo) List() []domain.CategoryPolicy {
	args := m.Called()
	return args.Get(0).([]domain.CategoryPolicy)
}
