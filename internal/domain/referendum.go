package domain

// ReferendumRow is one town-level line of the referendum results file.
// Counts are pointers so a missing cell survives loading as nil; the join
// step drops rows that still carry nils. DepartmentCode is raw: it may be
// empty, unpadded ("1") or an overseas/abroad marker containing 'Z'.
type ReferendumRow struct {
	DepartmentCode string
	DepartmentName string
	TownCode       string
	TownName       string
	Registered     *int64
	Abstentions    *int64
	Null           *int64
	ChoiceA        *int64
	ChoiceB        *int64
}

// ReferendumAreaRow is a referendum row joined to its area. It only exists
// past the null-drop, so codes are normalized, area fields are resolved and
// counts are plain values.
type ReferendumAreaRow struct {
	CodeDep        string
	NameDep        string
	CodeReg        string
	NameReg        string
	DepartmentCode string
	DepartmentName string
	TownCode       string
	TownName       string
	Registered     int64
	Abstentions    int64
	Null           int64
	ChoiceA        int64
	ChoiceB        int64
}
