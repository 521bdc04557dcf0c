package domain

// RentalRequest is the caller input for a checkout
type RentalRequest struct {
	ToolCode        string `json:"tool_code"`
	RentalDays      int    `json:"rental_days"`
	CheckoutDate    Date   `json:"checkout_date"`
	DiscountPercent int    `json:"discount_percent"`
}

// RentalAgreement is the computed result of a checkout.
// All money fields are in cents.
type RentalAgreement struct {
	ToolCode               string `json:"tool_code"`
	Category               string `json:"category"`
	Brand                  string `json:"brand"`
	RentalDays             int    `json:"rental_days"`
	CheckoutDate           Date   `json:"checkout_date"`
	DueDate                Date   `json:"due_date"`
	DailyChargeCents       int64  `json:"daily_charge_cents"`
	ChargeDays             int    `json:"charge_days"`
	PreDiscountChargeCents int64  `json:"pre_discount_charge_cents"`
	DiscountPercent        int    `json:"discount_percent"`
	DiscountAmountCents    int64  `json:"discount_amount_cents"`
	FinalChargeCents       int64  `json:"final_charge_cents"`
}
