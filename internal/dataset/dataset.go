package dataset

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/referendum-atlas/backend/internal/config"
	"github.com/referendum-atlas/backend/internal/domain"
)

// Source column names. Loading maps them onto the canonical code_reg /
// name_reg / code_dep / name_dep fields, which is the only renaming the
// pipeline ever does.
const (
	colCode       = "code"
	colName       = "name"
	colRegionCode = "region_code"

	colDepartmentCode = "Department code"
	colDepartmentName = "Department name"
	colTownCode       = "Town code"
	colTownName       = "Town name"
	colRegistered     = "Registered"
	colAbstentions    = "Abstentions"
	colNull           = "Null"
	colChoiceA        = "Choice A"
	colChoiceB        = "Choice B"
)

// Loader reads the input files into memory. Each call re-reads its file;
// nothing is cached between calls.
type Loader struct {
	cfg config.Data
}

func NewLoader(cfg config.Data) *Loader {
	return &Loader{cfg: cfg}
}

// Regions loads the comma-delimited region reference table.
func (l *Loader) Regions() ([]domain.Region, error) {
	t, err := readTable(l.cfg.Regions, ',')
	if err != nil {
		return nil, err
	}
	idx, err := t.columns(colCode, colName)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", l.cfg.Regions, err)
	}

	regions := make([]domain.Region, 0, len(t.rows))
	for _, row := range t.rows {
		regions = append(regions, domain.Region{
			CodeReg: row[idx[0]],
			NameReg: row[idx[1]],
		})
	}
	return regions, nil
}

// Departments loads the comma-delimited department reference table.
func (l *Loader) Departments() ([]domain.Department, error) {
	t, err := readTable(l.cfg.Departments, ',')
	if err != nil {
		return nil, err
	}
	idx, err := t.columns(colRegionCode, colCode, colName)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", l.cfg.Departments, err)
	}

	departments := make([]domain.Department, 0, len(t.rows))
	for _, row := range t.rows {
		departments = append(departments, domain.Department{
			CodeReg: row[idx[0]],
			CodeDep: row[idx[1]],
			NameDep: row[idx[2]],
		})
	}
	return departments, nil
}

// Referendum loads the semicolon-delimited results table. Count cells that
// are empty or unparseable load as nil; the join's null-drop owns those rows,
// loading never fails because of them.
func (l *Loader) Referendum() ([]domain.ReferendumRow, error) {
	t, err := readTable(l.cfg.Referendum, ';')
	if err != nil {
		return nil, err
	}
	idx, err := t.columns(
		colDepartmentCode, colDepartmentName, colTownCode, colTownName,
		colRegistered, colAbstentions, colNull, colChoiceA, colChoiceB,
	)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", l.cfg.Referendum, err)
	}

	rows := make([]domain.ReferendumRow, 0, len(t.rows))
	for _, row := range t.rows {
		rows = append(rows, domain.ReferendumRow{
			DepartmentCode: row[idx[0]],
			DepartmentName: row[idx[1]],
			TownCode:       row[idx[2]],
			TownName:       row[idx[3]],
			Registered:     parseCount(row[idx[4]]),
			Abstentions:    parseCount(row[idx[5]]),
			Null:           parseCount(row[idx[6]]),
			ChoiceA:        parseCount(row[idx[7]]),
			ChoiceB:        parseCount(row[idx[8]]),
		})
	}
	return rows, nil
}

func parseCount(s string) *int64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return nil
	}
	return &v
}

// table is one parsed CSV file: a header index plus the data rows.
type table struct {
	index map[string]int
	rows  [][]string
}

func readTable(path string, comma rune) (*table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.Comma = comma
	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("%s: no header row", path)
	}

	index := make(map[string]int, len(records[0]))
	for i, name := range records[0] {
		index[strings.TrimSpace(name)] = i
	}
	return &table{index: index, rows: records[1:]}, nil
}

// columns resolves header names to indexes; a missing header is an error
// since every downstream join depends on it.
func (t *table) columns(names ...string) ([]int, error) {
	out := make([]int, len(names))
	for i, name := range names {
		idx, ok := t.index[name]
		if !ok {
			return nil, fmt.Errorf("missing column %q", name)
		}
		out[i] = idx
	}
	return out, nil
}
