package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"tool-rental-checkout/internal/domain"
	"tool-rental-checkout/internal/logger"
	"tool-rental-checkout/internal/pricing"
	"tool-rental-checkout/internal/repository"
)

type checkoutService struct {
	toolRepo   repository.ToolRepository
	policyRepo repository.CategoryPolicyRepository
	calculator *pricing.Calculator
}

func NewCheckoutService(
	toolRepo repository.ToolRepository,
	policyRepo repository.CategoryPolicyRepository,
	calendar *pricing.Calendar,
) CheckoutService {
	return &checkoutService{
		toolRepo:   toolRepo,
		policyRepo: policyRepo,
		calculator: pricing.NewCalculator(toolRepo, policyRepo, calendar),
	}
}

func (s *checkoutService) Checkout(ctx context.Context, req domain.RentalRequest) (*domain.RentalAgreement, error) {
	logger.EnterMethod("checkoutService.Checkout",
		"tool_code", req.ToolCode,
		"rental_days", req.RentalDays,
		"checkout_date", req.CheckoutDate.String(),
		"discount_percent", req.DiscountPercent)

	agreement, breakdown, err := s.calculator.ComputeWithBreakdown(req)
	if err != nil {
		level := slog.LevelError
		if errors.Is(err, domain.ErrInvalidArgument) {
			level = slog.LevelWarn
		}
		logger.ExitMethodWithError("checkoutService.Checkout", err, level)
		return nil, err
	}

	logger.DebugContext(ctx, "Charge days counted",
		"weekdays", breakdown.Weekdays,
		"weekends", breakdown.Weekends,
		"holidays", breakdown.Holidays,
		"charge_days", breakdown.Total())
	logger.InfoContext(ctx, "Rental agreement computed",
		"tool_code", agreement.ToolCode,
		"due_date", agreement.DueDate.String(),
		"final_charge_cents", agreement.FinalChargeCents)

	logger.ExitMethod("checkoutService.Checkout")
	return &agreement, nil
}

func (s *checkoutService) ListTools(ctx context.Context) ([]domain.Tool, error) {
	return s.toolRepo.List(), nil
}

func (s *checkoutService) GetPolicy(ctx context.Context, category string) (*domain.CategoryPolicy, error) {
	policy, err := s.policyRepo.GetByCategory(category)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("%w: no pricing policy for category %q", domain.ErrInvalidArgument, category)
		}
		return nil, err
	}
	return policy, nil
}
