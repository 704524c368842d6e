package services

type RegisterCompanyCommand struct {
	Cuit         string `validate:"required"`
	BusinessName string `validate:"required,max=255"`
	Type         string `validate:"required"`
}

type CreateTransferCommand struct {
	CompanyID     string `validate:"required"`
	Amount        string `validate:"required"`
	Currency      string
	DebitAccount  string `validate:"required"`
	CreditAccount string `validate:"required"`
}
