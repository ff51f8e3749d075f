package point

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	input := "0,0,S\n10,0,S\n5,0,A\n"

	truths, err := Parse(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, truths, 3)

	assert.Equal(t, Anchor, truths[0].Type())
	assert.Equal(t, Anchor, truths[1].Type())
	assert.Equal(t, Agent, truths[2].Type())

	for i, tr := range truths {
		assert.Equal(t, i, tr.ID())
		assert.Equal(t, 2, tr.Dim())
	}

	coords, ok := truths[1].Restricted().Coords()
	require.True(t, ok)
	assert.Equal(t, []float64{10, 0}, coords)
}

func TestParseDefaultsToAgent(t *testing.T) {
	truths, err := Parse(strings.NewReader("1.5,2.5\n"))
	require.NoError(t, err)
	require.Len(t, truths, 1)
	assert.Equal(t, Agent, truths[0].Type())
}

func TestParseWhitespace(t *testing.T) {
	truths, err := Parse(strings.NewReader("0, 0, S\n 5 ,1 , A\n"))
	require.NoError(t, err)
	require.Len(t, truths, 2)
	assert.Equal(t, Anchor, truths[0].Type())
	assert.Equal(t, Agent, truths[1].Type())
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"UnknownTag", "1,2,X\n"},
		{"BadCoordinate", "1,abc,2,A\n"},
		{"FieldAfterTag", "1,2,S,3\n"},
		{"DimensionMismatch", "1,2,S\n1,2,3,A\n"},
		{"NoCoordinates", "S\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(strings.NewReader(tt.input))
			require.Error(t, err)
		})
	}
}

func TestParseDimensionMismatchDetails(t *testing.T) {
	_, err := Parse(strings.NewReader("1,2,S\n1,2,3,A\n"))

	var dm *ErrDimensionMismatch
	require.ErrorAs(t, err, &dm)
	assert.Equal(t, 2, dm.Line)
	assert.Equal(t, 2, dm.Expected)
	assert.Equal(t, 3, dm.Actual)
}

func TestParseEmptyInput(t *testing.T) {
	_, err := Parse(strings.NewReader(""))
	assert.ErrorIs(t, err, ErrNoPoints)
}

func TestReadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sample.csv")
	require.NoError(t, os.WriteFile(path, []byte("0,0,S\n3,4,A\n"), 0o600))

	truths, err := ReadFile(path)
	require.NoError(t, err)
	assert.Len(t, truths, 2)

	_, err = ReadFile(filepath.Join(t.TempDir(), "missing.csv"))
	assert.Error(t, err)
}
