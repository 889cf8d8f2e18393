package domain

// Region is a top-level administrative area from the reference table.
type Region struct {
	CodeReg string `json:"code_reg"`
	NameReg string `json:"name_reg"`
}

// Department is a sub-region administrative area belonging to exactly one
// region via CodeReg.
type Department struct {
	CodeDep string `json:"code_dep"`
	NameDep string `json:"name_dep"`
	CodeReg string `json:"code_reg"`
}

// AreaRecord is one department resolved against the region table. Region
// fields stay empty when the department's CodeReg has no match.
type AreaRecord struct {
	CodeReg string `json:"code_reg"`
	NameReg string `json:"name_reg"`
	CodeDep string `json:"code_dep"`
	NameDep string `json:"name_dep"`
}
