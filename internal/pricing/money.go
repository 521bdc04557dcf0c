package pricing

// DiscountCents applies percent to amountCents and rounds half up to the
// nearest cent. Both operands must be non-negative.
func DiscountCents(amountCents int64, percent int) int64 {
	return (amountCents*int64(percent) + 50) / 100
}
