package postgres

import (
	"fmt"

	"github.com/DanielPopoola/transfer-core/internal/domain"
)

// Column transforms. Every value read back goes through the domain
// constructors again, so a corrupted row surfaces as an error instead of an
// invalid value.

func cuitToColumn(c domain.Cuit) string {
	return c.Normalized()
}

func cuitFromColumn(s string) (domain.Cuit, error) {
	return domain.NewCuit(s)
}

func moneyToColumn(m domain.Money) (int64, string) {
	return m.Cents(), string(m.Currency())
}

func moneyFromColumn(cents int64, currency string) (domain.Money, error) {
	return domain.MoneyFromCents(cents, domain.Currency(currency))
}

func accountToColumn(a domain.Account) (string, string) {
	return a.Kind().String(), domain.AccountToString(a)
}

func accountFromColumn(kind, value string) (domain.Account, error) {
	k, err := domain.ParseAccountKind(kind)
	if err != nil {
		return nil, err
	}
	return domain.ParseAccountOfKind(k, value)
}

func toCompanyModel(c *domain.Company) CompanyModel {
	return CompanyModel{
		ID:           c.ID(),
		Cuit:         cuitToColumn(c.Cuit()),
		BusinessName: c.BusinessName(),
		Type:         c.Type().String(),
		JoinedAt:     c.JoinedAt(),
	}
}

func toCompanyDomain(m CompanyModel) (*domain.Company, error) {
	cuit, err := cuitFromColumn(m.Cuit)
	if err != nil {
		return nil, fmt.Errorf("company %s: %w", m.ID, err)
	}
	company, err := domain.ReconstituteCompany(m.ID, cuit.Normalized(), m.BusinessName, m.Type, m.JoinedAt)
	if err != nil {
		return nil, fmt.Errorf("company %s: %w", m.ID, err)
	}
	return company, nil
}

func toTransferModel(t *domain.Transfer) TransferModel {
	amount, currency := moneyToColumn(t.Amount())
	fee, _ := moneyToColumn(t.Fee())
	debitKind, debit := accountToColumn(t.DebitAccount())
	creditKind, credit := accountToColumn(t.CreditAccount())

	return TransferModel{
		ID:                t.ID(),
		CompanyID:         t.CompanyID(),
		AmountCents:       amount,
		FeeCents:          fee,
		Currency:          currency,
		DebitAccountKind:  debitKind,
		DebitAccount:      debit,
		CreditAccountKind: creditKind,
		CreditAccount:     credit,
		CreatedAt:         t.CreatedAt(),
	}
}

func toTransferDomain(m TransferModel) (*domain.Transfer, error) {
	amount, err := moneyFromColumn(m.AmountCents, m.Currency)
	if err != nil {
		return nil, fmt.Errorf("transfer %s amount: %w", m.ID, err)
	}
	fee, err := moneyFromColumn(m.FeeCents, m.Currency)
	if err != nil {
		return nil, fmt.Errorf("transfer %s fee: %w", m.ID, err)
	}
	debit, err := accountFromColumn(m.DebitAccountKind, m.DebitAccount)
	if err != nil {
		return nil, fmt.Errorf("transfer %s debit account: %w", m.ID, err)
	}
	credit, err := accountFromColumn(m.CreditAccountKind, m.CreditAccount)
	if err != nil {
		return nil, fmt.Errorf("transfer %s credit account: %w", m.ID, err)
	}

	transfer, err := domain.NewTransfer(m.ID, m.CompanyID, amount, fee, debit, credit, m.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("transfer %s: %w", m.ID, err)
	}
	return transfer, nil
}
