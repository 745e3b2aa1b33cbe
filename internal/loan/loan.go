// Package loan computes fixed monthly payments for amortized loans
// and the comparison rows shown by autoloanc.
package loan

import (
	"errors"
	"fmt"
	"math"

	"github.com/go-playground/validator/v10"
)

// DefaultStep is the number of months between consecutive rows of a
// schedule.
const DefaultStep = 12

// Upper bounds accepted by Validate and Schedule.
const (
	MaxBalance = 1_000_000_000
	MaxTerm    = 1200 // 100 years
)

var (
	ErrNonPositiveTerm = errors.New("term must be greater than zero")
	ErrTermTooLong     = fmt.Errorf("term must be at most %d months", MaxTerm)
	ErrNonPositiveStep = errors.New("step must be greater than zero")

	// ErrPaymentOverflow is returned when compounding the rate over the
	// term exceeds what a float64 can represent.
	ErrPaymentOverflow = errors.New("monthly payment overflows")
)

var validate = validator.New()

// Validate checks that the parameters are usable by Schedule.
func (p Parameters) Validate() error {
	return validate.Struct(p)
}

// MonthlyPayment returns the fixed payment that pays off balance over
// term months at the given annual rate. A zero rate (or one so small
// that compounding is lost to rounding) divides the balance evenly.
func MonthlyPayment(balance, apr float64, term int) (float64, error) {
	if term <= 0 {
		return 0, ErrNonPositiveTerm
	}

	n := float64(term)
	rate := apr / 12
	if rate == 0 {
		return balance / n, nil
	}

	growth := math.Pow(1+rate, n)
	if growth == 1 {
		return balance / n, nil
	}
	payment := balance * rate * growth / (growth - 1)
	if math.IsNaN(payment) || math.IsInf(payment, 0) {
		return 0, ErrPaymentOverflow
	}
	return payment, nil
}

// Schedule evaluates the loan at p.Term months and then at every
// term step months shorter, stopping before the term reaches zero.
// Rows are returned longest term first.
func Schedule(p Parameters, step int) ([]PaymentRow, error) {
	if step <= 0 {
		return nil, ErrNonPositiveStep
	}
	if p.Term <= 0 {
		return nil, ErrNonPositiveTerm
	}
	if p.Term > MaxTerm {
		return nil, ErrTermTooLong
	}

	rows := make([]PaymentRow, 0, p.Term/step+1)
	for term := p.Term; term > 0; term -= step {
		monthly, err := MonthlyPayment(p.Balance, p.APR, term)
		if err != nil {
			return nil, fmt.Errorf("term %d: %w", term, err)
		}
		total := monthly * float64(term)
		rows = append(rows, PaymentRow{
			TotalPaid:      total,
			InterestPaid:   total - p.Balance,
			MonthlyPayment: monthly,
			TermMonths:     term,
		})
	}
	return rows, nil
}
