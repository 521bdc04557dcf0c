package service

import (
	"context"

	"tool-rental-checkout/internal/domain"
)

type CheckoutService interface {
	Checkout(ctx context.Context, req domain.RentalRequest) (*domain.RentalAgreement, error)
	ListTools(ctx context.Context) ([]domain.Tool, error)
	GetPolicy(ctx context.Context, category string) (*domain.CategoryPolicy, error)
}
