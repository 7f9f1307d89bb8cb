package pathsep

import (
	"bufio"
	"fmt"
	"os"
	"slices"
	"strconv"
	"strings"

	"github.com/lanl/highs"
)

// Instance is a sparse MIP read from the plain-text instance format:
//
//	numRows numCols
//	numCols lines: lower upper integer(0/1) objCoef
//	numRows lines: lower upper nnz  col val  col val ...
//
// Bounds may be "-inf"/"+inf". Column indices are zero-based.
type Instance struct {
	NumRows int
	NumCols int

	ColLower []float64
	ColUpper []float64
	ObjCosts []float64
	Integer  []bool

	RowLower []float64
	RowUpper []float64
	Entries  []highs.Nonzero
}

func errorCoalesce(args ...error) error {
	for _, e := range args {
		if e != nil {
			return e
		}
	}
	return nil
}

func (inst *Instance) parseHeader(scanner *bufio.Scanner) error {
	scanner.Scan()
	line := strings.Fields(scanner.Text())
	if len(line) < 2 {
		return fmt.Errorf("Error while parsing header: expected 2 fields, got %d", len(line))
	}
	numRows, err := strconv.Atoi(line[0])
	if err != nil {
		return fmt.Errorf("Error while parsing header: %v", err)
	}
	numCols, err := strconv.Atoi(line[1])
	if err != nil {
		return fmt.Errorf("Error while parsing header: %v", err)
	}

	inst.NumRows = numRows
	inst.NumCols = numCols
	inst.ColLower = make([]float64, numCols)
	inst.ColUpper = make([]float64, numCols)
	inst.ObjCosts = make([]float64, numCols)
	inst.Integer = make([]bool, numCols)
	inst.RowLower = make([]float64, 0, numRows)
	inst.RowUpper = make([]float64, 0, numRows)

	return nil
}

func (inst *Instance) parseColumns(scanner *bufio.Scanner) error {
	for j := range inst.NumCols {
		scanner.Scan()
		line := strings.Fields(scanner.Text())
		if len(line) < 4 {
			return fmt.Errorf("Error while parsing column %d: expected 4 fields, got %d", j, len(line))
		}
		lower, err1 := strconv.ParseFloat(line[0], 64)
		upper, err2 := strconv.ParseFloat(line[1], 64)
		isInt, err3 := strconv.Atoi(line[2])
		obj, err4 := strconv.ParseFloat(line[3], 64)
		if err := errorCoalesce(err1, err2, err3, err4); err != nil {
			return fmt.Errorf("Error while parsing column %d: %v", j, err)
		}

		inst.ColLower[j] = lower
		inst.ColUpper[j] = upper
		inst.Integer[j] = isInt != 0
		inst.ObjCosts[j] = obj
	}
	return nil
}

func (inst *Instance) parseRows(scanner *bufio.Scanner) error {
	for i := range inst.NumRows {
		scanner.Scan()
		line := strings.Fields(scanner.Text())
		if len(line) < 3 {
			return fmt.Errorf("Error while parsing row %d: expected at least 3 fields, got %d", i, len(line))
		}
		lower, err1 := strconv.ParseFloat(line[0], 64)
		upper, err2 := strconv.ParseFloat(line[1], 64)
		nnz, err3 := strconv.Atoi(line[2])
		if err := errorCoalesce(err1, err2, err3); err != nil {
			return fmt.Errorf("Error while parsing row %d: %v", i, err)
		}
		if len(line) < 3+2*nnz {
			return fmt.Errorf("Error while parsing row %d: expected %d entries, got %d fields", i, nnz, len(line)-3)
		}

		inst.RowLower = append(inst.RowLower, lower)
		inst.RowUpper = append(inst.RowUpper, upper)
		for k := range nnz {
			col, err1 := strconv.Atoi(line[3+2*k])
			val, err2 := strconv.ParseFloat(line[4+2*k], 64)
			if err := errorCoalesce(err1, err2); err != nil {
				return fmt.Errorf("Error while parsing row %d entry %d: %v", i, k, err)
			}
			if col < 0 || col >= inst.NumCols {
				return fmt.Errorf("Error while parsing row %d entry %d: column %d out of range", i, k, col)
			}
			inst.Entries = append(inst.Entries, highs.Nonzero{Row: i, Col: col, Val: val})
		}
	}
	return nil
}

func LoadInstance(filename string) (*Instance, error) {
	inst := new(Instance)
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 1<<20), 1<<20)
	err = errorCoalesce(
		inst.parseHeader(scanner),
		inst.parseColumns(scanner),
		inst.parseRows(scanner),
	)
	if err != nil {
		return nil, err
	}
	return inst, nil
}

// Model builds the HiGHS model of the instance with its declared var types.
func (inst *Instance) Model() *highs.Model {
	lp := new(highs.Model)
	lp.ColCosts = slices.Clone(inst.ObjCosts)
	lp.ColLower = slices.Clone(inst.ColLower)
	lp.ColUpper = slices.Clone(inst.ColUpper)
	lp.RowLower = slices.Clone(inst.RowLower)
	lp.RowUpper = slices.Clone(inst.RowUpper)
	lp.ConstMatrix = slices.Clone(inst.Entries)

	lp.VarTypes = make([]highs.VariableType, inst.NumCols)
	for j := range inst.NumCols {
		if inst.Integer[j] {
			lp.VarTypes[j] = highs.IntegerType
		} else {
			lp.VarTypes[j] = highs.ContinuousType
		}
	}
	return lp
}

// RelaxedModel builds the LP relaxation: every column continuous.
func (inst *Instance) RelaxedModel() *highs.Model {
	lp := inst.Model()
	for j := range lp.VarTypes {
		lp.VarTypes[j] = highs.ContinuousType
	}
	return lp
}

func (inst *Instance) String() string {
	s := new(strings.Builder)
	s.WriteString(fmt.Sprintf("N. rows: %d\n", inst.NumRows))
	s.WriteString(fmt.Sprintf("N. cols: %d (", inst.NumCols))
	numInteger := 0
	for _, isInt := range inst.Integer {
		if isInt {
			numInteger++
		}
	}
	s.WriteString(fmt.Sprintf("%d integer)\n", numInteger))
	s.WriteString(fmt.Sprintf("N. nonzeros: %d\n", len(inst.Entries)))
	return s.String()
}
