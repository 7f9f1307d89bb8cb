package pathsep

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/lanl/highs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleInstance = `2 3
0 10 1 3
0 1 1 5
0 4 0 1
-inf 5 2 0 1 1 1
1.5 1.5 2 1 1 2 -1
`

func writeInstance(t *testing.T, text string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "inst.txt")
	require.NoError(t, os.WriteFile(path, []byte(text), 0666))
	return path
}

func TestLoadInstance(t *testing.T) {
	inst, err := LoadInstance(writeInstance(t, sampleInstance))
	require.NoError(t, err)

	assert.Equal(t, 2, inst.NumRows)
	assert.Equal(t, 3, inst.NumCols)
	assert.Equal(t, []float64{0, 0, 0}, inst.ColLower)
	assert.Equal(t, []float64{10, 1, 4}, inst.ColUpper)
	assert.Equal(t, []bool{true, true, false}, inst.Integer)
	assert.Equal(t, []float64{3, 5, 1}, inst.ObjCosts)

	assert.True(t, math.IsInf(inst.RowLower[0], -1))
	assert.Equal(t, 5.0, inst.RowUpper[0])
	assert.Equal(t, 1.5, inst.RowLower[1])
	assert.Equal(t, 1.5, inst.RowUpper[1])

	require.Len(t, inst.Entries, 4)
	assert.Equal(t, highs.Nonzero{Row: 1, Col: 2, Val: -1}, inst.Entries[3])
}

func TestLoadInstanceErrors(t *testing.T) {
	cases := []struct {
		name string
		text string
	}{
		{"empty header", "\n"},
		{"bad column line", "1 1\n0 1 x 1\n-inf 1 1 0 1\n"},
		{"short row line", "1 1\n0 1 1 1\n-inf 1\n"},
		{"column out of range", "1 1\n0 1 1 1\n-inf 1 1 3 1\n"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := LoadInstance(writeInstance(t, tc.text))
			assert.Error(t, err)
		})
	}
}

func TestInstanceModels(t *testing.T) {
	inst, err := LoadInstance(writeInstance(t, sampleInstance))
	require.NoError(t, err)

	lp := inst.Model()
	assert.Equal(t, []highs.VariableType{highs.IntegerType, highs.IntegerType, highs.ContinuousType}, lp.VarTypes)
	assert.Equal(t, inst.ObjCosts, lp.ColCosts)

	relaxed := inst.RelaxedModel()
	for _, vt := range relaxed.VarTypes {
		assert.Equal(t, highs.ContinuousType, vt)
	}
	assert.Equal(t, []highs.VariableType{highs.IntegerType, highs.IntegerType, highs.ContinuousType}, lp.VarTypes,
		"relaxing must not touch the original model")
}
