package domain

import (
	"fmt"
	"math"
)

// Statement is a time-ordered financial statement table: named line items
// across fiscal periods, most recent period first. Gaps (missing line items
// or missing values within a row) are expected and stored as NaN.
type Statement struct {
	periods []string
	lines   map[string][]float64
}

// NewStatement builds a statement table. Every row must have exactly one
// value per period; a ragged table is a contract violation, not a data
// condition, and returns an error.
func NewStatement(periods []string, lines map[string][]float64) (*Statement, error) {
	for name, row := range lines {
		if len(row) != len(periods) {
			return nil, fmt.Errorf("statement row %q has %d values for %d periods", name, len(row), len(periods))
		}
	}

	p := make([]string, len(periods))
	copy(p, periods)
	l := make(map[string][]float64, len(lines))
	for name, row := range lines {
		r := make([]float64, len(row))
		copy(r, row)
		l[name] = r
	}

	return &Statement{periods: p, lines: l}, nil
}

// Periods returns the fiscal period labels, most recent first.
func (s *Statement) Periods() []string {
	if s == nil {
		return nil
	}
	return s.periods
}

// NumPeriods returns the number of fiscal periods in the table.
func (s *Statement) NumPeriods() int {
	if s == nil {
		return 0
	}
	return len(s.periods)
}

// Empty reports whether the statement holds no usable data.
func (s *Statement) Empty() bool {
	return s == nil || len(s.periods) == 0 || len(s.lines) == 0
}

// Value probes the given candidate row labels in priority order and returns
// the first present, non-NaN, non-zero value at the given period index
// (0 = most recent). Returns nil when nothing matches.
//
// Data providers label the same line item differently ("Total Debt",
// "Long Term Debt", ...), so lookups always go through an ordered
// candidate list rather than a single key.
func (s *Statement) Value(keys []string, period int) *float64 {
	if s.Empty() || period < 0 || period >= len(s.periods) {
		return nil
	}

	for _, key := range keys {
		row, ok := s.lines[key]
		if !ok {
			continue
		}
		v := row[period]
		if !math.IsNaN(v) && v != 0 {
			return &v
		}
	}
	return nil
}

// Row returns the values of the first matching candidate row label, most
// recent period first. Returns nil when no candidate is present.
func (s *Statement) Row(keys []string) []float64 {
	if s.Empty() {
		return nil
	}
	for _, key := range keys {
		if row, ok := s.lines[key]; ok {
			out := make([]float64, len(row))
			copy(out, row)
			return out
		}
	}
	return nil
}

// Statements bundles the three statement variants for one company. Any of
// the three may be nil when the provider could not supply it.
type Statements struct {
	Income   *Statement
	Balance  *Statement
	CashFlow *Statement
}

// Candidate row labels per line item, probed in priority order.
var (
	KeysOperatingIncome = []string{"Operating Income", "EBIT", "Operating Revenue"}
	KeysTaxProvision    = []string{"Tax Provision", "Income Tax Expense", "Tax Effect Of Unusual Items"}
	KeysPretaxIncome    = []string{"Pretax Income", "Income Before Tax"}
	KeysTotalDebt       = []string{"Total Debt", "Long Term Debt", "Net Debt"}
	KeysTotalEquity     = []string{"Stockholders Equity", "Total Equity Gross Minority Interest", "Total Stockholder Equity"}
	KeysCash            = []string{"Cash And Cash Equivalents", "Cash", "Cash Cash Equivalents And Short Term Investments"}
	KeysTotalAssets     = []string{"Total Assets"}
	KeysCurrentLiab     = []string{"Current Liabilities", "Total Current Liabilities"}
	KeysFreeCashFlow    = []string{"Free Cash Flow", "FreeCashFlow"}
	KeysNetIncome       = []string{"Net Income", "Net Income Common Stockholders"}
	KeysOperatingCF     = []string{"Operating Cash Flow", "Cash Flow From Continuing Operating Activities", "Total Cash From Operating Activities"}
	KeysRevenue         = []string{"Total Revenue", "Operating Revenue", "Revenue"}
	KeysReceivables     = []string{"Accounts Receivable", "Receivables", "Net Receivables"}
	KeysInterestExpense = []string{"Interest Expense", "Interest Expense Non Operating"}
)
