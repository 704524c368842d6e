package postgres

import (
	"time"
)

// CompanyModel mirrors a row of the companies table.
type CompanyModel struct {
	ID           string
	Cuit         string
	BusinessName string
	Type         string
	JoinedAt     time.Time
}

// TransferModel mirrors a row of the transfers table. Accounts are stored as
// a kind discriminant plus their canonical string.
type TransferModel struct {
	ID                string
	CompanyID         string
	AmountCents       int64
	FeeCents          int64
	Currency          string
	DebitAccountKind  string
	DebitAccount      string
	CreditAccountKind string
	CreditAccount     string
	CreatedAt         time.Time
}
