package screening

import (
	"fmt"

	"github.com/IamAdiPra/Stock-Project/internal/domain"
)

// Summary describes one screening run for presentation: counts, pass rate
// and a human-readable list of the filters that were active.
type Summary struct {
	TotalScreened  int
	Passed         int
	PassRatePct    float64
	FiltersApplied []string
}

// Summarize builds the run summary from a universe and the options that
// produced it.
func Summarize(u domain.ScreenedUniverse, opts Options) Summary {
	filters := []string{
		fmt.Sprintf("ROIC > %.0f%%", opts.MinROIC*100),
		fmt.Sprintf("Debt/Equity < %.2f", opts.MaxDebtEquity),
		fmt.Sprintf("Price within %.0f%% of 52-week low", opts.NearLowThresholdPct),
	}
	if opts.RequireFCF3y {
		filters = append(filters, "Positive FCF for 3 consecutive years")
	}
	if opts.MinEarningsQuality != nil {
		filters = append(filters, fmt.Sprintf("Earnings quality >= %.0f", *opts.MinEarningsQuality))
	}
	if opts.WithMomentum {
		filters = append(filters, "Hybrid value/momentum scoring")
	}

	return Summary{
		TotalScreened:  u.TotalScreened,
		Passed:         u.Passed,
		PassRatePct:    u.PassRatePct(),
		FiltersApplied: filters,
	}
}
