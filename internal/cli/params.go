package cli

import (
	"errors"
	"fmt"
	"math"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/replit/autoloanc/internal/loan"
)

// parameterNames are the positional arguments in command-line order.
var parameterNames = [...]string{"balance", "apr", "term"}

// parameterFields maps loan.Parameters field names back to positions.
var parameterFields = map[string]int{
	"Balance": 0,
	"APR":     1,
	"Term":    2,
}

// parseNumber parses a float argument, rejecting NaN and infinities.
func parseNumber(raw string) (float64, error) {
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		var numErr *strconv.NumError
		if errors.As(err, &numErr) {
			return 0, numErr.Err
		}
		return 0, err
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, errors.New("not a finite number")
	}
	return v, nil
}

// setParameter stores raw into the positional parameter at index i.
func setParameter(p *loan.Parameters, i int, raw string) error {
	var err error
	switch i {
	case 0:
		p.Balance, err = parseNumber(raw)
	case 1:
		p.APR, err = parseNumber(raw)
	case 2:
		p.Term, err = strconv.Atoi(raw)
		var numErr *strconv.NumError
		if errors.As(err, &numErr) {
			err = fmt.Errorf("%w (expected a whole number of months)", numErr.Err)
		}
	default:
		return fmt.Errorf("no parameter at position %d", i)
	}
	if err != nil {
		return &ParseError{Name: parameterNames[i], Value: raw, Err: err}
	}
	return nil
}

// describeRule turns a failed validator tag into a short phrase.
func describeRule(fe validator.FieldError) string {
	switch fe.Tag() {
	case "gt":
		return "must be greater than " + fe.Param()
	case "gte":
		return "must be at least " + fe.Param()
	case "lte":
		return "must be at most " + fe.Param()
	default:
		return "failed " + fe.Tag() + " check"
	}
}

// parseParameters converts the three positional arguments into loan
// parameters and checks their ranges.
func parseParameters(args []string) (loan.Parameters, error) {
	var p loan.Parameters
	if len(args) != len(parameterNames) {
		return p, &UsageError{Reason: fmt.Sprintf(
			"expected %d arguments, got %d", len(parameterNames), len(args),
		)}
	}

	for i, raw := range args {
		if err := setParameter(&p, i, raw); err != nil {
			return p, err
		}
	}

	if err := p.Validate(); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			i := parameterFields[verrs[0].Field()]
			return p, &ParseError{
				Name:  parameterNames[i],
				Value: args[i],
				Err:   errors.New(describeRule(verrs[0])),
			}
		}
		return p, err
	}
	return p, nil
}
