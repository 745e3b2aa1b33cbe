package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"

	"github.com/replit/autoloanc/internal/config"
	"github.com/replit/autoloanc/internal/loan"
	"github.com/replit/autoloanc/internal/table"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v2"
)

// scheduleLine represents one line in the table emitted by autoloanc.
type scheduleLine struct {
	TotalPaid      string `pretty:"Amount Financed"`
	InterestPaid   string `pretty:"Interest Paid"`
	MonthlyPayment string `pretty:"Monthly Payment"`
	TermLength     string `pretty:"Term Length"`
}

// report is the document written by --format=json and --format=yaml.
type report struct {
	Balance float64           `json:"balance" yaml:"balance"`
	APR     float64           `json:"apr" yaml:"apr"`
	Term    int               `json:"term" yaml:"term"`
	Step    int               `json:"step" yaml:"step"`
	Rows    []loan.PaymentRow `json:"rows" yaml:"rows"`
}

// money formats v with exactly two decimal places. Ties round away
// from zero on the shortest decimal form of v, so 2.675 prints 2.68.
func money(v float64) string {
	return decimal.NewFromFloat(v).StringFixed(2)
}

// cents rounds v to two decimal places.
func cents(v float64) float64 {
	return decimal.NewFromFloat(v).Round(2).InexactFloat64()
}

// scheduleTable converts payment rows into display cells.
func scheduleTable(rows []loan.PaymentRow) (table.Table, error) {
	lines := make([]scheduleLine, 0, len(rows))
	for _, row := range rows {
		lines = append(lines, scheduleLine{
			TotalPaid:      money(row.TotalPaid),
			InterestPaid:   money(row.InterestPaid),
			MonthlyPayment: money(row.MonthlyPayment),
			TermLength:     strconv.Itoa(row.TermMonths),
		})
	}
	return table.FromStructs(lines)
}

// writeSummary prints the loan parameters above the table.
func writeSummary(w io.Writer, params loan.Parameters) error {
	percent := decimal.NewFromFloat(params.APR).Shift(2)
	_, err := fmt.Fprintf(w,
		"Loan Amount: $%s\nAnnual Percentage Rate: %s%%\n",
		money(params.Balance), percent.StringFixed(2),
	)
	return err
}

// runSchedule implements 'autoloanc BALANCE APR TERM'.
func runSchedule(cfg config.Config, params loan.Parameters, stdout io.Writer, log *slog.Logger) error {
	rows, err := loan.Schedule(params, cfg.Step)
	if errors.Is(err, loan.ErrPaymentOverflow) {
		return &ParseError{
			Name:  "apr",
			Value: strconv.FormatFloat(params.APR, 'g', -1, 64),
			Err:   fmt.Errorf("%w; give the rate as a decimal fraction (0.029 for 2.9%%)", err),
		}
	}
	if err != nil {
		return err
	}
	log.Info("computed schedule", "rows", len(rows), "step", cfg.Step)
	for _, row := range rows {
		log.Debug("schedule row",
			"term", row.TermMonths,
			"monthly", row.MonthlyPayment,
			"total", row.TotalPaid,
			"interest", row.InterestPaid,
		)
	}

	switch cfg.Format {
	case config.FormatTable:
		t, err := scheduleTable(rows)
		if err != nil {
			return err
		}
		if cfg.Summary {
			if err := writeSummary(stdout, params); err != nil {
				return err
			}
		}
		return t.Print(stdout, cfg.Pager, log)

	case config.FormatJSON, config.FormatYAML:
		doc := report{
			Balance: params.Balance,
			APR:     params.APR,
			Term:    params.Term,
			Step:    cfg.Step,
			Rows:    make([]loan.PaymentRow, 0, len(rows)),
		}
		for _, row := range rows {
			doc.Rows = append(doc.Rows, loan.PaymentRow{
				TotalPaid:      cents(row.TotalPaid),
				InterestPaid:   cents(row.InterestPaid),
				MonthlyPayment: cents(row.MonthlyPayment),
				TermMonths:     row.TermMonths,
			})
		}

		var out []byte
		if cfg.Format == config.FormatJSON {
			out, err = json.MarshalIndent(doc, "", "  ")
			out = append(out, '\n')
		} else {
			out, err = yaml.Marshal(doc)
		}
		if err != nil {
			return fmt.Errorf("encoding %s report: %w", cfg.Format, err)
		}
		_, err = stdout.Write(out)
		return err

	default:
		return fmt.Errorf("unknown output format %q", cfg.Format)
	}
}
