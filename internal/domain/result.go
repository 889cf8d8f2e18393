package domain

import "math"

// RegionResult is the aggregated outcome for one region: every count column
// summed over the region's joined rows.
type RegionResult struct {
	CodeReg     string `db:"code_reg" json:"code_reg"`
	NameReg     string `db:"name_reg" json:"name_reg"`
	Registered  int64  `db:"registered" json:"registered"`
	Abstentions int64  `db:"abstentions" json:"abstentions"`
	Null        int64  `db:"null_votes" json:"null"`
	ChoiceA     int64  `db:"choice_a" json:"choice_a"`
	ChoiceB     int64  `db:"choice_b" json:"choice_b"`
}

// Ratio returns the Choice A share of expressed votes, NaN when the region
// recorded none.
func (r RegionResult) Ratio() float64 {
	expressed := r.ChoiceA + r.ChoiceB
	if expressed == 0 {
		return math.NaN()
	}
	return float64(r.ChoiceA) / float64(expressed)
}
