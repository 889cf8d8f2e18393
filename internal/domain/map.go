package domain

// MapFeature is one row of the geographic merge: a region shape joined to
// its aggregated result. Ratio is the Choice A share of expressed votes,
// NaN when the region recorded none. Carries no wire tags; the API layer
// shapes its own response.
type MapFeature struct {
	CodeReg     string
	NameReg     string
	Registered  int64
	Abstentions int64
	Null        int64
	ChoiceA     int64
	ChoiceB     int64
	Ratio       float64
}
