package pricing

import (
	"errors"
	"fmt"

	"tool-rental-checkout/internal/domain"
	"tool-rental-checkout/internal/repository"
)

// Calculator turns rental requests into agreements. It holds only
// read-only collaborators and is safe for concurrent use.
type Calculator struct {
	tools    repository.ToolRepository
	policies repository.CategoryPolicyRepository
	calendar *Calendar
}

func NewCalculator(tools repository.ToolRepository, policies repository.CategoryPolicyRepository, calendar *Calendar) *Calculator {
	if calendar == nil {
		calendar = DefaultCalendar()
	}
	return &Calculator{tools: tools, policies: policies, calendar: calendar}
}

// Validate checks the request and resolves its tool and pricing policy
func (c *Calculator) Validate(req domain.RentalRequest) (*domain.Tool, *domain.CategoryPolicy, error) {
	if req.RentalDays < 1 {
		return nil, nil, fmt.Errorf("%w: rentalDays must be >= 1", domain.ErrInvalidArgument)
	}
	if req.DiscountPercent < 0 || req.DiscountPercent > 100 {
		return nil, nil, fmt.Errorf("%w: discountPercent must be in [0,100]", domain.ErrInvalidArgument)
	}
	if req.CheckoutDate.IsZero() {
		return nil, nil, fmt.Errorf("%w: checkoutDate is required", domain.ErrInvalidArgument)
	}

	tool, err := c.tools.GetByCode(req.ToolCode)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, nil, fmt.Errorf("%w: unknown tool code %q", domain.ErrInvalidArgument, req.ToolCode)
		}
		return nil, nil, err
	}
	policy, err := c.policies.GetByCategory(tool.Category)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, nil, fmt.Errorf("%w: no pricing policy for category %q", domain.ErrInvalidArgument, tool.Category)
		}
		return nil, nil, err
	}
	return tool, policy, nil
}

// Compute builds the rental agreement for req
func (c *Calculator) Compute(req domain.RentalRequest) (domain.RentalAgreement, error) {
	agreement, _, err := c.ComputeWithBreakdown(req)
	return agreement, err
}

// ComputeWithBreakdown is Compute plus the per-day-type counts behind ChargeDays
func (c *Calculator) ComputeWithBreakdown(req domain.RentalRequest) (domain.RentalAgreement, ChargeBreakdown, error) {
	tool, policy, err := c.Validate(req)
	if err != nil {
		return domain.RentalAgreement{}, ChargeBreakdown{}, err
	}

	breakdown := CountChargeDays(req.CheckoutDate, req.RentalDays, *policy, c.calendar)
	chargeDays := breakdown.Total()
	preDiscount := int64(chargeDays) * policy.DailyChargeCents
	discount := DiscountCents(preDiscount, req.DiscountPercent)

	return domain.RentalAgreement{
		ToolCode:               tool.Code,
		Category:               tool.Category,
		Brand:                  tool.Brand,
		RentalDays:             req.RentalDays,
		CheckoutDate:           req.CheckoutDate,
		DueDate:                req.CheckoutDate.AddDays(req.RentalDays),
		DailyChargeCents:       policy.DailyChargeCents,
		ChargeDays:             chargeDays,
		PreDiscountChargeCents: preDiscount,
		DiscountPercent:        req.DiscountPercent,
		DiscountAmountCents:    discount,
		FinalChargeCents:       preDiscount - discount,
	}, breakdown, nil
}
