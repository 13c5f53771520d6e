// Package export writes list-shaped calculator results as CSV tables.
package export

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/google/uuid"

	"founder_calculators/pkg/core/burnrate"
	"founder_calculators/pkg/core/captable"
	"founder_calculators/pkg/core/catalog"
	"founder_calculators/pkg/core/market"
	"founder_calculators/pkg/core/unitecon"
	"founder_calculators/pkg/core/valuation"
)

// ErrNotTabular is returned by TableFor for results with no table form.
var ErrNotTabular = errors.New("result has no tabular form")

// commentPrefix marks the metadata row; csv.Reader{Comment: '#'} skips it.
const commentPrefix = "#"

// Table is a header row plus data rows.
type Table struct {
	Title   string
	Headers []string
	Rows    [][]string
}

// Report is a written table and its ID.
type Report struct {
	ID    string
	Title string
	Rows  int
}

// WriteCSV writes t to w behind a metadata row carrying a fresh report ID.
func WriteCSV(w io.Writer, t Table) (Report, error) {
	id := uuid.NewString()

	cw := csv.NewWriter(w)
	if err := cw.Write([]string{commentPrefix + " report_id=" + id, t.Title}); err != nil {
		return Report{}, fmt.Errorf("write metadata: %w", err)
	}
	if err := cw.Write(t.Headers); err != nil {
		return Report{}, fmt.Errorf("write header: %w", err)
	}
	for i, row := range t.Rows {
		if len(row) != len(t.Headers) {
			return Report{}, fmt.Errorf("row %d has %d cells, want %d", i+1, len(row), len(t.Headers))
		}
		if err := cw.Write(row); err != nil {
			return Report{}, fmt.Errorf("write row %d: %w", i+1, err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return Report{}, fmt.Errorf("flush csv: %w", err)
	}

	return Report{ID: id, Title: t.Title, Rows: len(t.Rows)}, nil
}

// TableFor converts a calculator result into a table.
func TableFor(result any) (Table, error) {
	switch r := result.(type) {
	case []unitecon.SensitivityPoint:
		return SensitivityTable(r), nil
	case []market.RevenueProjection:
		return ProjectionTable(r), nil
	case []burnrate.CashPoint:
		return RunwayTable(r), nil
	case catalog.RunwayReport:
		return RunwayTable(r.Months), nil
	case []captable.RoundResult:
		return RoundsTable(r), nil
	case catalog.CapTableReport:
		return RoundsTable(r.Rounds), nil
	case []valuation.LineItem:
		return ValuationTable(r), nil
	}
	return Table{}, fmt.Errorf("%w: %T", ErrNotTabular, result)
}

// SensitivityTable: one row per churn rate.
func SensitivityTable(points []unitecon.SensitivityPoint) Table {
	t := Table{
		Title:   "Churn sensitivity",
		Headers: []string{"churn_rate_percent", "ltv", "ltv_cac_ratio"},
	}
	for _, p := range points {
		t.Rows = append(t.Rows, []string{num(p.ChurnRate), num(p.LTV), num(p.LTVCACRatio)})
	}
	return t
}

// ProjectionTable: one row per projected year.
func ProjectionTable(rows []market.RevenueProjection) Table {
	t := Table{
		Title:   "Revenue projection",
		Headers: []string{"year", "market_share_percent", "revenue", "gross_margin", "opex", "profit"},
	}
	for _, p := range rows {
		t.Rows = append(t.Rows, []string{
			strconv.Itoa(p.Year), num(p.MarketShare), num(p.Revenue),
			num(p.GrossMargin), num(p.Opex), num(p.Profit),
		})
	}
	return t
}

// RunwayTable: one row per projected month.
func RunwayTable(points []burnrate.CashPoint) Table {
	t := Table{
		Title:   "Runway projection",
		Headers: []string{"month", "revenue", "expenses", "net_burn", "ending_cash"},
	}
	for _, p := range points {
		t.Rows = append(t.Rows, []string{
			strconv.Itoa(p.Month), num(p.Revenue), num(p.Expenses), num(p.NetBurn), num(p.EndingCash),
		})
	}
	return t
}

// RoundsTable flattens every round's post-money table, one row per holder.
func RoundsTable(rounds []captable.RoundResult) Table {
	t := Table{
		Title:   "Cap table by round",
		Headers: []string{"round", "price_per_share", "holder", "class", "shares", "percent"},
	}
	for _, r := range rounds {
		for _, o := range r.Table {
			t.Rows = append(t.Rows, []string{
				r.Round, num(r.PricePerShare), o.Holder, string(o.Class), num(o.Shares), num(o.Percent),
			})
		}
	}
	return t
}

// ValuationTable is the football field.
func ValuationTable(items []valuation.LineItem) Table {
	t := Table{
		Title:   "Valuation summary",
		Headers: []string{"model", "low", "high"},
	}
	for _, it := range items {
		t.Rows = append(t.Rows, []string{it.ModelName, num(it.Low), num(it.High)})
	}
	return t
}

func num(f float64) string {
	return strconv.FormatFloat(f, 'f', 2, 64)
}
