package screening

import (
	"sort"

	"github.com/IamAdiPra/Stock-Project/internal/domain"
)

// percentileRanks computes a fractional percentile rank in (0, 1] for each
// stock's extracted value, over the defined values only. Ties receive the
// average of their ordinal ranks. Stocks whose value is undefined get nil
// and do not influence the ranks of the others.
func percentileRanks(stocks []domain.ScreenedStock, value func(domain.ScreenedStock) *float64) []*float64 {
	type entry struct {
		idx int
		v   float64
	}

	defined := make([]entry, 0, len(stocks))
	for i, s := range stocks {
		if v := value(s); v != nil {
			defined = append(defined, entry{idx: i, v: *v})
		}
	}

	out := make([]*float64, len(stocks))
	if len(defined) == 0 {
		return out
	}

	sort.SliceStable(defined, func(i, j int) bool {
		return defined[i].v < defined[j].v
	})

	n := float64(len(defined))
	for i := 0; i < len(defined); {
		j := i
		for j < len(defined) && defined[j].v == defined[i].v {
			j++
		}
		// Ordinal ranks are 1-based; ties share the mean of their span.
		avg := (float64(i+1) + float64(j)) / 2
		pct := avg / n
		for k := i; k < j; k++ {
			p := pct
			out[defined[k].idx] = &p
		}
		i = j
	}

	return out
}
