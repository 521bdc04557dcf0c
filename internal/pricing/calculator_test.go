package pricing

import (
	"errors"
	"testing"
	"time"

	"tool-rental-checkout/internal/domain"
	"tool-rental-checkout/internal/repository"
	"tool-rental-checkout/internal/repository/memory"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDefaultCalculator() *Calculator {
	store := memory.NewDefaultStore()
	return NewCalculator(store.ToolRepository, store.CategoryPolicyRepository, DefaultCalendar())
}

func TestCalculator_Validation(t *testing.T) {
	calc := newDefaultCalculator()
	checkout := domain.NewDate(2015, time.September, 3)

	tests := []struct {
		name    string
		req     domain.RentalRequest
		message string
	}{
		{"Zero rental days", domain.RentalRequest{ToolCode: "JAKR", RentalDays: 0, CheckoutDate: checkout}, "rentalDays must be >= 1"},
		{"Negative rental days", domain.RentalRequest{ToolCode: "JAKR", RentalDays: -3, CheckoutDate: checkout}, "rentalDays must be >= 1"},
		{"Discount above 100", domain.RentalRequest{ToolCode: "JAKR", RentalDays: 5, CheckoutDate: checkout, DiscountPercent: 101}, "discountPercent must be in [0,100]"},
		{"Negative discount", domain.RentalRequest{ToolCode: "JAKR", RentalDays: 5, CheckoutDate: checkout, DiscountPercent: -1}, "discountPercent must be in [0,100]"},
		{"Unknown tool", domain.RentalRequest{ToolCode: "NOTVALID", RentalDays: 5, CheckoutDate: checkout}, "unknown tool code"},
		{"Missing checkout date", domain.RentalRequest{ToolCode: "JAKR", RentalDays: 5}, "checkoutDate is required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			agreement, err := calc.Compute(tt.req)
			require.Error(t, err)
			assert.True(t, errors.Is(err, domain.ErrInvalidArgument))
			assert.Contains(t, err.Error(), tt.message)
			assert.Equal(t, domain.RentalAgreement{}, agreement)
		})
	}

	t.Run("Rental days checked before tool code", func(t *testing.T) {
		_, err := calc.Compute(domain.RentalRequest{ToolCode: "NOTVALID", RentalDays: 0, CheckoutDate: checkout})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "rentalDays must be >= 1")
	})

	t.Run("Category without policy", func(t *testing.T) {
		tools, err := memory.NewToolRepository([]domain.Tool{{Code: "SAW1", Category: "Saw", Brand: "Bosch"}})
		require.NoError(t, err)
		policies, err := memory.NewCategoryPolicyRepository(nil)
		require.NoError(t, err)

		_, err = NewCalculator(tools, policies, nil).Compute(domain.RentalRequest{ToolCode: "SAW1", RentalDays: 1, CheckoutDate: checkout})
		require.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrInvalidArgument))
		assert.False(t, errors.Is(err, repository.ErrNotFound))
		assert.Contains(t, err.Error(), "no pricing policy")
	})
}

func TestCalculator_Compute(t *testing.T) {
	calc := newDefaultCalculator()

	tests := []struct {
		name        string
		req         domain.RentalRequest
		dueDate     domain.Date
		chargeDays  int
		preDiscount int64
		discount    int64
		final       int64
	}{
		{
			name:        "Ladder over July 4th 2020",
			req:         domain.RentalRequest{ToolCode: "LADW", RentalDays: 3, CheckoutDate: domain.NewDate(2020, time.July, 2), DiscountPercent: 10},
			dueDate:     domain.NewDate(2020, time.July, 5),
			chargeDays:  2,
			preDiscount: 398,
			discount:    40,
			final:       358,
		},
		{
			name:        "Chainsaw over July 4th 2015",
			req:         domain.RentalRequest{ToolCode: "CHNS", RentalDays: 5, CheckoutDate: domain.NewDate(2015, time.July, 2), DiscountPercent: 25},
			dueDate:     domain.NewDate(2015, time.July, 7),
			chargeDays:  3,
			preDiscount: 447,
			discount:    112,
			final:       335,
		},
		{
			name:        "DeWalt jackhammer over Labor Day",
			req:         domain.RentalRequest{ToolCode: "JAKD", RentalDays: 6, CheckoutDate: domain.NewDate(2015, time.September, 3), DiscountPercent: 0},
			dueDate:     domain.NewDate(2015, time.September, 9),
			chargeDays:  3,
			preDiscount: 897,
			discount:    0,
			final:       897,
		},
		{
			name:        "Ridgid jackhammer nine days",
			req:         domain.RentalRequest{ToolCode: "JAKR", RentalDays: 9, CheckoutDate: domain.NewDate(2015, time.July, 2), DiscountPercent: 0},
			dueDate:     domain.NewDate(2015, time.July, 11),
			chargeDays:  5,
			preDiscount: 1495,
			discount:    0,
			final:       1495,
		},
		{
			name:        "Ridgid jackhammer half off",
			req:         domain.RentalRequest{ToolCode: "JAKR", RentalDays: 4, CheckoutDate: domain.NewDate(2020, time.July, 2), DiscountPercent: 50},
			dueDate:     domain.NewDate(2020, time.July, 6),
			chargeDays:  1,
			preDiscount: 299,
			discount:    150,
			final:       149,
		},
		{
			name:        "Ridgid jackhammer for a year",
			req:         domain.RentalRequest{ToolCode: "JAKR", RentalDays: 365, CheckoutDate: domain.NewDate(2020, time.July, 2), DiscountPercent: 10},
			dueDate:     domain.NewDate(2021, time.July, 2),
			chargeDays:  259,
			preDiscount: 77441,
			discount:    7744,
			final:       69697,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, err := calc.Compute(tt.req)
			require.NoError(t, err)
			assert.Equal(t, tt.req.ToolCode, a.ToolCode)
			assert.Equal(t, tt.req.RentalDays, a.RentalDays)
			assert.Equal(t, tt.req.CheckoutDate, a.CheckoutDate)
			assert.Equal(t, tt.dueDate, a.DueDate)
			assert.Equal(t, tt.chargeDays, a.ChargeDays)
			assert.Equal(t, tt.preDiscount, a.PreDiscountChargeCents)
			assert.Equal(t, tt.discount, a.DiscountAmountCents)
			assert.Equal(t, tt.final, a.FinalChargeCents)
		})
	}
}

func TestCalculator_Agreement(t *testing.T) {
	calc := newDefaultCalculator()
	req := domain.RentalRequest{ToolCode: "JAKD", RentalDays: 6, CheckoutDate: domain.NewDate(2015, time.September, 3)}

	a, err := calc.Compute(req)
	require.NoError(t, err)
	assert.Equal(t, "Jackhammer", a.Category)
	assert.Equal(t, "DeWalt", a.Brand)
	assert.Equal(t, int64(299), a.DailyChargeCents)

	t.Run("Idempotent", func(t *testing.T) {
		again, err := calc.Compute(req)
		require.NoError(t, err)
		assert.Equal(t, a, again)
	})

	t.Run("Breakdown matches charge days", func(t *testing.T) {
		withBreakdown, b, err := calc.ComputeWithBreakdown(req)
		require.NoError(t, err)
		assert.Equal(t, a, withBreakdown)
		assert.Equal(t, a.ChargeDays, b.Total())
		assert.Equal(t, 1, b.Holidays)
	})
}

func TestCalculator_Invariants(t *testing.T) {
	calc := newDefaultCalculator()
	start := domain.NewDate(2019, time.June, 20)

	for _, code := range []string{"CHNS", "LADW", "JAKD", "JAKR"} {
		for _, days := range []int{1, 2, 3, 7, 13, 31, 90} {
			for _, percent := range []int{0, 1, 15, 33, 50, 99, 100} {
				for offset := 0; offset < 100; offset += 11 {
					req := domain.RentalRequest{ToolCode: code, RentalDays: days, CheckoutDate: start.AddDays(offset), DiscountPercent: percent}
					a, err := calc.Compute(req)
					require.NoError(t, err)

					assert.Equal(t, req.CheckoutDate.AddDays(days), a.DueDate)
					assert.GreaterOrEqual(t, a.ChargeDays, 0)
					assert.LessOrEqual(t, a.ChargeDays, days)
					assert.Equal(t, int64(a.ChargeDays)*a.DailyChargeCents, a.PreDiscountChargeCents)
					assert.GreaterOrEqual(t, a.DiscountAmountCents, int64(0))
					assert.LessOrEqual(t, a.DiscountAmountCents, a.PreDiscountChargeCents)
					assert.Equal(t, a.PreDiscountChargeCents-a.DiscountAmountCents, a.FinalChargeCents)
				}
			}
		}
	}
}
