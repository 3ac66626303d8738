package textutil

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLines(t *testing.T) {
	require.Equal(t, []string{"a", "  b", "c"}, Lines("\na \r\n  b\n\n   \nc"))
	require.Empty(t, Lines(""))
}

func TestInts(t *testing.T) {
	got, err := Ints(" 1  -2 30 ")
	require.NoError(t, err)
	require.Equal(t, []int64{1, -2, 30}, got)

	_, err = Ints("1 two")
	require.Error(t, err)

	got, err = Ints("")
	require.NoError(t, err)
	require.Empty(t, got)
}
