package domain

import (
	"log/slog"
	"strings"
	"time"
)

// Transfer is a single movement of funds between two accounts, charged to a
// company and carrying the fee computed at creation.
type Transfer struct {
	id        string
	companyID string
	amount    Money
	fee       Money
	debit     Account
	credit    Account
	createdAt time.Time
}

func NewTransfer(
	id string,
	companyID string,
	amount Money,
	fee Money,
	debit Account,
	credit Account,
	createdAt time.Time,
) (*Transfer, error) {
	if strings.TrimSpace(id) == "" {
		return nil, NewMissingRequiredFieldError("transfer ID")
	}
	if strings.TrimSpace(companyID) == "" {
		return nil, NewMissingRequiredFieldError("company ID")
	}
	if amount.IsZero() {
		return nil, NewInvalidAmountError("transfer amount must be greater than zero")
	}
	if fee.currency != amount.currency {
		return nil, NewCurrencyMismatchError(amount.currency, fee.currency)
	}
	if debit == nil {
		return nil, NewMissingRequiredFieldError("debit account")
	}
	if credit == nil {
		return nil, NewMissingRequiredFieldError("credit account")
	}
	if AccountsEqual(debit, credit) {
		return nil, &DomainError{Code: ErrCodeSameAccount, Message: "debit and credit accounts must differ"}
	}
	if createdAt.IsZero() {
		return nil, NewMissingRequiredFieldError("created at")
	}

	return &Transfer{
		id:        id,
		companyID: companyID,
		amount:    amount,
		fee:       fee,
		debit:     debit,
		credit:    credit,
		createdAt: createdAt,
	}, nil
}

func (t *Transfer) ID() string { return t.id }

func (t *Transfer) CompanyID() string { return t.companyID }

func (t *Transfer) Amount() Money { return t.amount }

func (t *Transfer) Fee() Money { return t.fee }

func (t *Transfer) DebitAccount() Account { return t.debit }

func (t *Transfer) CreditAccount() Account { return t.credit }

func (t *Transfer) CreatedAt() time.Time { return t.createdAt }

// Total is the amount plus the fee.
func (t *Transfer) Total() (Money, error) {
	return t.amount.Add(t.fee)
}

func (t *Transfer) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("id", t.id),
		slog.String("company_id", t.companyID),
		slog.String("amount", t.amount.String()),
		slog.String("fee", t.fee.String()),
		slog.String("currency", string(t.amount.currency)),
		slog.String("debit", AccountToMaskedString(t.debit)),
		slog.String("credit", AccountToMaskedString(t.credit)),
	)
}
