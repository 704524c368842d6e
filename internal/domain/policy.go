package domain

import "github.com/shopspring/decimal"

// Policy thresholds are whole currency units expressed in cents. They apply
// in the currency of the amount being checked.
const (
	flatRateFeeCents      int64 = 50_00
	flatRateMaxCents      int64 = 100_000_00
	tierOneCeilingCents   int64 = 10_000_00
	tierTwoCeilingCents   int64 = 100_000_00
	tieredMaxCents        int64 = 1_000_000_00
	pymeDailyCents        int64 = 50_000_00
	pymeMonthlyCents      int64 = 500_000_00
	corporateDailyCents   int64 = 1_000_000_00
	corporateMonthlyCents int64 = 10_000_000_00
)

var (
	tierOneRate   = decimal.RequireFromString("0.001")
	tierTwoRate   = decimal.RequireFromString("0.005")
	tierThreeRate = decimal.RequireFromString("0.01")
)

// FlatRatePolicy charges the same fee for every transfer.
type FlatRatePolicy struct{}

func (FlatRatePolicy) CalculateTransferFee(amount Money) (Money, error) {
	if amount.IsZero() {
		return Money{}, NewInvalidAmountError("transfer amount must be positive")
	}
	return Money{cents: flatRateFeeCents, currency: amount.currency}, nil
}

func (FlatRatePolicy) MaxTransferAmount(cur Currency) Money {
	return Money{cents: flatRateMaxCents, currency: cur}
}

// TieredPolicy charges a percentage that grows with the transfer size:
// 0.1% up to 10,000, 0.5% up to 100,000 and 1% above that.
type TieredPolicy struct{}

func (TieredPolicy) CalculateTransferFee(amount Money) (Money, error) {
	if amount.IsZero() {
		return Money{}, NewInvalidAmountError("transfer amount must be positive")
	}

	rate := tierThreeRate
	switch {
	case amount.cents <= tierOneCeilingCents:
		rate = tierOneRate
	case amount.cents <= tierTwoCeilingCents:
		rate = tierTwoRate
	}
	return amount.Multiply(rate, RoundBankers)
}

func (TieredPolicy) MaxTransferAmount(cur Currency) Money {
	return Money{cents: tieredMaxCents, currency: cur}
}

// PymeLimitPolicy caps usage at 50,000 a day and 500,000 a month.
type PymeLimitPolicy struct{}

func (PymeLimitPolicy) DailyLimit(cur Currency) Money {
	return Money{cents: pymeDailyCents, currency: cur}
}

func (PymeLimitPolicy) MonthlyLimit(cur Currency) Money {
	return Money{cents: pymeMonthlyCents, currency: cur}
}

func (PymeLimitPolicy) IsTransferAllowed(amount, dailyUsed, monthlyUsed Money) bool {
	return withinLimits(amount, dailyUsed, monthlyUsed, pymeDailyCents, pymeMonthlyCents)
}

// CorporateLimitPolicy caps usage at 1,000,000 a day and 10,000,000 a month.
type CorporateLimitPolicy struct{}

func (CorporateLimitPolicy) DailyLimit(cur Currency) Money {
	return Money{cents: corporateDailyCents, currency: cur}
}

func (CorporateLimitPolicy) MonthlyLimit(cur Currency) Money {
	return Money{cents: corporateMonthlyCents, currency: cur}
}

func (CorporateLimitPolicy) IsTransferAllowed(amount, dailyUsed, monthlyUsed Money) bool {
	return withinLimits(amount, dailyUsed, monthlyUsed, corporateDailyCents, corporateMonthlyCents)
}

// withinLimits is inclusive: a running total equal to the cap is allowed.
// Usage in another currency, or a sum that overflows, is never allowed.
func withinLimits(amount, dailyUsed, monthlyUsed Money, dailyCap, monthlyCap int64) bool {
	daily, err := dailyUsed.Add(amount)
	if err != nil {
		return false
	}
	monthly, err := monthlyUsed.Add(amount)
	if err != nil {
		return false
	}
	return daily.cents <= dailyCap && monthly.cents <= monthlyCap
}

// FeePolicyKind selects one of the fee policies.
type FeePolicyKind string

const (
	FeePolicyFlatRate FeePolicyKind = "FLAT_RATE"
	FeePolicyTiered   FeePolicyKind = "TIERED"
)

func (k FeePolicyKind) CalculateTransferFee(amount Money) (Money, error) {
	switch k {
	case FeePolicyFlatRate:
		return FlatRatePolicy{}.CalculateTransferFee(amount)
	case FeePolicyTiered:
		return TieredPolicy{}.CalculateTransferFee(amount)
	}
	return Money{}, NewUnknownVariantError("fee policy", string(k))
}

func (k FeePolicyKind) MaxTransferAmount(cur Currency) Money {
	switch k {
	case FeePolicyFlatRate:
		return FlatRatePolicy{}.MaxTransferAmount(cur)
	case FeePolicyTiered:
		return TieredPolicy{}.MaxTransferAmount(cur)
	}
	return Money{currency: cur}
}

// LimitPolicyKind selects one of the limit policies.
type LimitPolicyKind string

const (
	LimitPolicyPyme      LimitPolicyKind = "PYME_LIMITS"
	LimitPolicyCorporate LimitPolicyKind = "CORPORATE_LIMITS"
)

func (k LimitPolicyKind) DailyLimit(cur Currency) Money {
	switch k {
	case LimitPolicyPyme:
		return PymeLimitPolicy{}.DailyLimit(cur)
	case LimitPolicyCorporate:
		return CorporateLimitPolicy{}.DailyLimit(cur)
	}
	return Money{currency: cur}
}

func (k LimitPolicyKind) MonthlyLimit(cur Currency) Money {
	switch k {
	case LimitPolicyPyme:
		return PymeLimitPolicy{}.MonthlyLimit(cur)
	case LimitPolicyCorporate:
		return CorporateLimitPolicy{}.MonthlyLimit(cur)
	}
	return Money{currency: cur}
}

func (k LimitPolicyKind) IsTransferAllowed(amount, dailyUsed, monthlyUsed Money) bool {
	switch k {
	case LimitPolicyPyme:
		return PymeLimitPolicy{}.IsTransferAllowed(amount, dailyUsed, monthlyUsed)
	case LimitPolicyCorporate:
		return CorporateLimitPolicy{}.IsTransferAllowed(amount, dailyUsed, monthlyUsed)
	}
	return false
}

// PoliciesFor returns the fee and limit policy pair bound to a company type.
func PoliciesFor(t CompanyType) (FeePolicyKind, LimitPolicyKind, error) {
	switch t {
	case CompanyTypePyme:
		return FeePolicyFlatRate, LimitPolicyPyme, nil
	case CompanyTypeCorporate:
		return FeePolicyTiered, LimitPolicyCorporate, nil
	}
	return "", "", NewUnknownVariantError("company type", string(t))
}
