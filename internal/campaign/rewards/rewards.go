// Package rewards holds the Start Zatching campaign parameters and the pure
// arithmetic that decides discounts and order allowances.
package rewards

import (
	"math/rand"
	"time"
)

// Campaign parameters. Discounts are whole percentages.
const (
	// BaseDiscount is the floor every participant is guaranteed.
	BaseDiscount = 10

	// MaxDiscount caps the discount regardless of boosts.
	MaxDiscount = 100

	// MaxOrders caps the order allowance per participant.
	MaxOrders = 5

	// ReferralThreshold is the referral count a participant must pass to
	// unlock the one-time extra order.
	ReferralThreshold = 10

	// BoostMin and BoostMax bound the discount boost drawn for referrals
	// and social shares.
	BoostMin = 1
	BoostMax = 5

	// ShareOrderBonusChance is the probability a social share grants +1 order.
	ShareOrderBonusChance = 0.3
)

// TargetDate is the campaign launch date the countdown runs to.
var TargetDate = time.Date(2026, time.March, 31, 0, 0, 0, 0, time.FixedZone("IST", 5*3600+1800))

// weightedDiscount pairs a candidate discount with its draw weight.
// Weights sum to 100; higher discounts are rarer.
var discountWeights = []struct {
	discount int
	weight   int
}{
	{discount: 25, weight: 5},
	{discount: 20, weight: 15},
	{discount: 18, weight: 20},
	{discount: 15, weight: 30},
	{discount: 12, weight: 20},
	{discount: 10, weight: 10},
}

// Source is the subset of math/rand used by the calculator. *rand.Rand
// satisfies it; tests substitute a deterministic implementation.
type Source interface {
	Intn(n int) int
	Float64() float64
}

// Calculator draws randomized rewards from an injected random source.
type Calculator struct {
	rnd Source
}

// NewCalculator returns a Calculator seeded from the current time.
func NewCalculator() Calculator {
	return Calculator{rnd: rand.New(rand.NewSource(time.Now().UnixNano()))}
}

// NewCalculatorWithSource returns a Calculator over the given source.
func NewCalculatorWithSource(src Source) Calculator {
	return Calculator{rnd: src}
}

// WeightedInitialDiscount draws a starting discount from the weighted table.
func (c Calculator) WeightedInitialDiscount() int {
	total := 0
	for _, w := range discountWeights {
		total += w.weight
	}

	remaining := c.rnd.Float64() * float64(total)
	for _, w := range discountWeights {
		remaining -= float64(w.weight)
		if remaining <= 0 {
			return w.discount
		}
	}

	// Unreachable while the weights sum to the total.
	return BaseDiscount
}

// InitialOrders draws the starting order allowance: 1 with probability 0.7,
// otherwise 2.
func (c Calculator) InitialOrders() int {
	if c.rnd.Float64() < 0.7 {
		return 1
	}
	return 2
}

// Boost draws a discount boost in [BoostMin, BoostMax].
func (c Calculator) Boost() int {
	return c.rnd.Intn(BoostMax-BoostMin+1) + BoostMin
}

// ShareOrdersBonus reports whether a social share grants an extra order.
// The chance is drawn regardless of the cap and then gated by it.
func (c Calculator) ShareOrdersBonus(currentOrders int) bool {
	hit := c.rnd.Float64() < ShareOrderBonusChance
	return hit && currentOrders < MaxOrders
}

// ReferralOrdersBonus reports whether this referral grants the one-time
// extra order. The bonus is edge-triggered: only the referral that pushes
// the count past the threshold grants it.
func ReferralOrdersBonus(priorReferrals, newReferrals, currentOrders int) bool {
	crossed := priorReferrals <= ReferralThreshold && newReferrals > ReferralThreshold
	return crossed && currentOrders < MaxOrders
}

// ClampDiscount clamps a discount to [BaseDiscount, MaxDiscount].
func ClampDiscount(value int) int {
	if value < BaseDiscount {
		return BaseDiscount
	}
	if value > MaxDiscount {
		return MaxDiscount
	}
	return value
}

// ClampOrders clamps an order allowance to [1, MaxOrders].
func ClampOrders(value int) int {
	if value < 1 {
		return 1
	}
	if value > MaxOrders {
		return MaxOrders
	}
	return value
}
