package evaluation

import "github.com/dmitrymomot/uabench/pkg/harmonize"

// UserAgentEvaluation summarizes all parsers' values for one field of one user agent.
type UserAgentEvaluation struct {
	// FoundCount is the number of contributing parsers, empty values included.
	FoundCount int `json:"found_count"`
	// FoundCountUnique is the number of distinct raw values.
	FoundCountUnique int `json:"found_count_unique"`
	// MaxSameResultCount is the frequency of the most common raw value.
	MaxSameResultCount int `json:"max_same_result_count"`
	// HarmonizedFoundUnique is the number of distinct harmonized values.
	HarmonizedFoundUnique int `json:"harmonized_found_unique"`
	// HarmonizedMaxSameResultCount is the frequency of the most common harmonized value.
	HarmonizedMaxSameResultCount int `json:"harmonized_max_same_result_count"`
	// Values are the raw values in input order.
	Values []string `json:"values"`
	// UniqueHarmonizedValues are the distinct harmonized values in order of first occurrence.
	UniqueHarmonizedValues []string `json:"unique_harmonized_values"`
}

// aggregate holds the inputs of one user agent evaluation. Harmonized values
// are computed on first use and shared by the harmonized metrics.
type aggregate struct {
	harmonizer harmonize.Harmonizer
	values     []string
	harmonized []string
}

func newAggregate(h harmonize.Harmonizer, values []string) *aggregate {
	return &aggregate{harmonizer: h, values: values}
}

func (a *aggregate) harmonizedValues() []string {
	if a.harmonized == nil {
		a.harmonized = a.harmonizer.Values(a.values)
	}
	return a.harmonized
}

func (a *aggregate) evaluate() UserAgentEvaluation {
	raw := tally(a.values)
	harmonized := tally(a.harmonizedValues())

	return UserAgentEvaluation{
		FoundCount:                   len(a.values),
		FoundCountUnique:             len(raw.order),
		MaxSameResultCount:           raw.max,
		HarmonizedFoundUnique:        len(harmonized.order),
		HarmonizedMaxSameResultCount: harmonized.max,
		Values:                       append([]string{}, a.values...),
		UniqueHarmonizedValues:       harmonized.order,
	}
}

type frequencies struct {
	// order lists distinct values by first occurrence.
	order []string
	max   int
}

func tally(values []string) frequencies {
	counts := make(map[string]int, len(values))
	f := frequencies{order: []string{}}
	for _, v := range values {
		if counts[v] == 0 {
			f.order = append(f.order, v)
		}
		counts[v]++
		if counts[v] > f.max {
			f.max = counts[v]
		}
	}
	return f
}
