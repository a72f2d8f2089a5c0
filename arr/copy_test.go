package arr_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hasbyte1/go-array-utils/arr"
)

func TestCopy(t *testing.T) {
	tests := []struct {
		name   string
		bounds []int
		want   []int
	}{
		{"whole", nil, []int{1, 2, 3, 4}},
		{"from index", []int{2}, []int{3, 4}},
		{"from index with length", []int{1, 2}, []int{2, 3}},
		{"length clamped", []int{2, 10}, []int{3, 4}},
		{"at end", []int{4}, []int{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := []int{1, 2, 3, 4}
			got, err := arr.Copy(src, tt.bounds...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCopyIsIndependent(t *testing.T) {
	src := []int{1, 2, 3}
	got, err := arr.Copy(src)
	require.NoError(t, err)
	got[0] = 99
	assert.Equal(t, []int{1, 2, 3}, src)
}

func TestCopyNil(t *testing.T) {
	got, err := arr.Copy([]int(nil))
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestCopyRejectsInvalidBounds(t *testing.T) {
	src := []int{1, 2, 3}
	for _, bounds := range [][]int{{-1}, {4}, {0, -1}} {
		_, err := arr.Copy(src, bounds...)
		require.ErrorIs(t, err, arr.ErrOutOfRange, "bounds %v", bounds)
	}
	_, err := arr.Copy(src, 0, 1, 2)
	require.ErrorIs(t, err, arr.ErrInvalidArgument)
}

func TestCopyTo(t *testing.T) {
	dest := []int{0, 0, 0, 0}
	require.NoError(t, arr.CopyTo([]int{1, 2, 3}, &dest, 1, 1, arr.Unbounded))
	assert.Equal(t, []int{0, 2, 3, 0}, dest)
}

func TestCopyToGrowsDestination(t *testing.T) {
	dest := []string{"a"}
	require.NoError(t, arr.CopyTo([]string{"x", "y", "z"}, &dest, 0, 1, 2))
	assert.Equal(t, []string{"a", "x", "y"}, dest)
}

func TestCopyToEmptyDestination(t *testing.T) {
	var dest []int
	require.NoError(t, arr.CopyTo([]int{7, 8}, &dest, 0, 0, arr.Unbounded))
	assert.Equal(t, []int{7, 8}, dest)
}

func TestCopyToRejectsInvalidInputs(t *testing.T) {
	src := []int{1, 2}
	dest := []int{0}

	require.ErrorIs(t, arr.CopyTo(src, nil, 0, 0, 1), arr.ErrNullArgument)
	require.ErrorIs(t, arr.CopyTo(src, &dest, -1, 0, 1), arr.ErrOutOfRange)
	require.ErrorIs(t, arr.CopyTo(src, &dest, 3, 0, 1), arr.ErrOutOfRange)
	require.ErrorIs(t, arr.CopyTo(src, &dest, 0, -1, 1), arr.ErrOutOfRange)
	require.ErrorIs(t, arr.CopyTo(src, &dest, 0, 2, 1), arr.ErrOutOfRange)
	require.ErrorIs(t, arr.CopyTo(src, &dest, 0, 0, -1), arr.ErrOutOfRange)
	assert.Equal(t, []int{0}, dest)
}
