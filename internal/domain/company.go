package domain

import (
	"log/slog"
	"slices"
	"strings"
	"time"
	"unicode/utf8"
)

// CompanyType is the explicit discriminant that selects a company's fee and
// limit policies.
type CompanyType string

const (
	CompanyTypePyme      CompanyType = "PYME"
	CompanyTypeCorporate CompanyType = "CORPORATE"
)

const maxBusinessNameLen = 255

var (
	pymeDocuments = []string{
		"CUIT Certificate",
		"AFIP Registration",
		"Bank Account Statement",
		"PYME Certificate",
	}
	corporateDocuments = []string{
		"CUIT Certificate",
		"AFIP Registration",
		"Bank Account Statement",
		"Corporate Articles",
		"Board Resolution",
		"Audited Financial Statements",
	}
)

func ParseCompanyType(s string) (CompanyType, error) {
	switch t := CompanyType(strings.ToUpper(strings.TrimSpace(s))); t {
	case CompanyTypePyme, CompanyTypeCorporate:
		return t, nil
	}
	return "", NewUnknownVariantError("company type", s)
}

func (t CompanyType) String() string {
	return string(t)
}

// IsEligibleForGovernmentSupport reports whether the type qualifies for SME
// support programs. Only PYMEs do.
func (t CompanyType) IsEligibleForGovernmentSupport() bool {
	return t == CompanyTypePyme
}

// RequiredDocuments lists the onboarding documents for the type. The returned
// slice is a copy.
func (t CompanyType) RequiredDocuments() []string {
	switch t {
	case CompanyTypePyme:
		return slices.Clone(pymeDocuments)
	case CompanyTypeCorporate:
		return slices.Clone(corporateDocuments)
	}
	return nil
}

func (t CompanyType) RequiresComplianceReporting() bool {
	return t == CompanyTypeCorporate
}

// Company is a registered business. Its behavior is fully determined by its
// type, which binds a fee policy and a limit policy at construction.
type Company struct {
	id           string
	cuit         Cuit
	businessName string
	joinedAt     time.Time
	companyType  CompanyType
	feePolicy    FeePolicyKind
	limitPolicy  LimitPolicyKind
}

func NewCompany(
	companyType CompanyType,
	id string,
	cuit Cuit,
	businessName string,
	joinedAt time.Time,
) (*Company, error) {
	feePolicy, limitPolicy, err := PoliciesFor(companyType)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(id) == "" {
		return nil, NewMissingRequiredFieldError("company ID")
	}
	if cuit.IsZero() {
		return nil, NewMissingRequiredFieldError("CUIT")
	}

	name := strings.TrimSpace(businessName)
	if name == "" {
		return nil, NewMissingRequiredFieldError("business name")
	}
	if utf8.RuneCountInString(name) > maxBusinessNameLen {
		return nil, NewFormatError("business name cannot exceed 255 characters")
	}
	if joinedAt.IsZero() {
		return nil, NewMissingRequiredFieldError("joined at")
	}

	return &Company{
		id:           id,
		cuit:         cuit,
		businessName: name,
		joinedAt:     joinedAt,
		companyType:  companyType,
		feePolicy:    feePolicy,
		limitPolicy:  limitPolicy,
	}, nil
}

// ReconstituteCompany rebuilds a company from stored primitives. The CUIT and
// type discriminant are validated again.
func ReconstituteCompany(id, cuit, businessName, companyType string, joinedAt time.Time) (*Company, error) {
	t, err := ParseCompanyType(companyType)
	if err != nil {
		return nil, err
	}
	c, err := NewCuit(cuit)
	if err != nil {
		return nil, err
	}
	return NewCompany(t, id, c, businessName, joinedAt)
}

func (c *Company) ID() string { return c.id }

func (c *Company) Cuit() Cuit { return c.cuit }

func (c *Company) BusinessName() string { return c.businessName }

func (c *Company) JoinedAt() time.Time { return c.joinedAt }

func (c *Company) Type() CompanyType { return c.companyType }

func (c *Company) FeePolicy() FeePolicyKind { return c.feePolicy }

func (c *Company) LimitPolicy() LimitPolicyKind { return c.limitPolicy }

func (c *Company) CalculateTransferFee(amount Money) (Money, error) {
	return c.feePolicy.CalculateTransferFee(amount)
}

func (c *Company) MaxTransferAmount(cur Currency) Money {
	return c.feePolicy.MaxTransferAmount(cur)
}

func (c *Company) DailyLimit(cur Currency) Money {
	return c.limitPolicy.DailyLimit(cur)
}

func (c *Company) MonthlyLimit(cur Currency) Money {
	return c.limitPolicy.MonthlyLimit(cur)
}

// CanTransfer rejects amounts above the fee policy's per-transfer maximum and
// otherwise defers to the limit policy.
func (c *Company) CanTransfer(amount, dailyUsed, monthlyUsed Money) bool {
	if amount.cents > c.feePolicy.MaxTransferAmount(amount.currency).cents {
		return false
	}
	return c.limitPolicy.IsTransferAllowed(amount, dailyUsed, monthlyUsed)
}

func (c *Company) IsEligibleForGovernmentSupport() bool {
	return c.companyType.IsEligibleForGovernmentSupport()
}

func (c *Company) RequiredDocuments() []string {
	return c.companyType.RequiredDocuments()
}

func (c *Company) RequiresComplianceReporting() bool {
	return c.companyType.RequiresComplianceReporting()
}

func (c *Company) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("id", c.id),
		slog.Any("cuit", c.cuit),
		slog.String("type", string(c.companyType)),
	)
}
