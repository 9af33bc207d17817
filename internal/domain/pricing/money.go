package pricing

import "math"

// Monetary amounts are int64 minor units (cents/øre). Fractional results
// from percentage and multiplier math round half away from zero before
// re-entering the running total, so every stage hands the next stage an
// exact integer amount.

func roundCents(v float64) int64 {
	return int64(math.Round(v))
}

// percentOf returns p percent of amount in cents.
func percentOf(amount int64, p float64) int64 {
	return roundCents(float64(amount) * p / 100.0)
}

// scaled returns amount multiplied by factor.
func scaled(amount int64, factor float64) int64 {
	return roundCents(float64(amount) * factor)
}

func clampNonNegative(amount int64) int64 {
	if amount < 0 {
		return 0
	}
	return amount
}
