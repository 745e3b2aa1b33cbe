package loan

// Parameters describes the loan being evaluated. APR is a decimal
// fraction (0.029 for 2.9%) and Term is measured in months.
type Parameters struct {
	Balance float64 `validate:"gte=0,lte=1000000000"`
	APR     float64 `validate:"gte=0"`
	Term    int     `validate:"gt=0,lte=1200"`
}

// PaymentRow is one line of the term comparison: the cost of paying
// off the balance over TermMonths months.
type PaymentRow struct {
	TotalPaid      float64 `json:"totalPaid" yaml:"totalPaid"`
	InterestPaid   float64 `json:"interestPaid" yaml:"interestPaid"`
	MonthlyPayment float64 `json:"monthlyPayment" yaml:"monthlyPayment"`
	TermMonths     int     `json:"termMonths" yaml:"termMonths"`
}
