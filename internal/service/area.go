package service

import (
	"github.com/referendum-atlas/backend/internal/domain"
)

// MergeRegionsAndDepartments left-joins the department table against the
// region table on CodeReg and projects the four area columns. Output has one
// record per department, in department order; departments whose CodeReg has
// no region keep an empty NameReg. Region codes are assumed unique in the
// reference table.
func MergeRegionsAndDepartments(regions []domain.Region, departments []domain.Department) []domain.AreaRecord {
	regionsByCode := make(map[string]domain.Region, len(regions))
	for _, r := range regions {
		regionsByCode[r.CodeReg] = r
	}

	records := make([]domain.AreaRecord, 0, len(departments))
	for _, d := range departments {
		rec := domain.AreaRecord{
			CodeReg: d.CodeReg,
			CodeDep: d.CodeDep,
			NameDep: d.NameDep,
		}
		if r, ok := regionsByCode[d.CodeReg]; ok {
			rec.NameReg = r.NameReg
		}
		records = append(records, rec)
	}
	return records
}
